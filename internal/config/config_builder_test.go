package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one, while zero fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{APIURL: "https://env.example.com"}},
		&StructuredConfig{Adapter: Adapter{APIURL: "https://json.example.com", AddonURL: "https://addon.example.com"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Adapter.APIURL)
	assert.Equal(t, "https://addon.example.com", cfg.Adapter.AddonURL)
}

func TestBuild_RejectsNegativeDuration(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_AUTH_KEY": "from-env"})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.AuthKey)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, `{"adapter": {"api_url": "https://json.example.com"}}`)
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].Adapter.APIURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesHighestPriorityPath verifies that the env path wins over
// the flag path.
func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, `{"app": {"collection": "from-env-file"}}`)
	flagPath := writeTempJSONConfig(t, `{"app": {"collection": "from-flag-file"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-env-file", b.configs[2].App.Collection)
}

func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:80"}})

	cfg, err := b.withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:80", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "libraryItem", cfg.App.Collection)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// ── views ─────────────────────────────────────────────────────────────────────

func validClientStructured() *StructuredConfig {
	return &StructuredConfig{
		App:     App{AuthKey: "session", Collection: "libraryItem"},
		Adapter: Adapter{APIURL: "https://api.example.com", RequestTimeout: time.Second},
	}
}

func TestClientConfig_DefaultDSN(t *testing.T) {
	cfg := newClientConfig(validClientStructured())

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIURL)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"missing api url", func(cfg *StructuredConfig) { cfg.Adapter.APIURL = "" }, ErrInvalidAdapterConfigs},
		{"api url without scheme", func(cfg *StructuredConfig) { cfg.Adapter.APIURL = "api.example.com" }, ErrInvalidAdapterConfigs},
		{"bad addon url", func(cfg *StructuredConfig) { cfg.Adapter.AddonURL = "ftp://addon" }, ErrInvalidAdapterConfigs},
		{"missing auth key", func(cfg *StructuredConfig) { cfg.App.AuthKey = "" }, ErrInvalidAppConfigs},
		{"missing collection", func(cfg *StructuredConfig) { cfg.App.Collection = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structured := validClientStructured()
			tt.mutate(structured)

			err := newClientConfig(structured).validate()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				TokenSignKey:  "secret",
				TokenIssuer:   "datastore",
				TokenDuration: time.Hour,
			},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/library"}},
			Server:  Server{HTTPAddress: "localhost:8080"},
		}
	}

	require.NoError(t, newServerConfig(valid()).validate())

	noKey := valid()
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, newServerConfig(noKey).validate(), ErrInvalidAppConfigs)

	noDSN := valid()
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, newServerConfig(noDSN).validate(), ErrInvalidStorageConfigs)

	issueOnly := valid()
	issueOnly.Storage.DB.DSN = ""
	issueOnly.Server.HTTPAddress = ""
	issueOnly.App.IssueKeyFor = "alice"
	assert.NoError(t, newServerConfig(issueOnly).validate())

	noAddr := valid()
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, newServerConfig(noAddr).validate(), ErrInvalidServerConfigs)
}

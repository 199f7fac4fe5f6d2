package adapter

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-library-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddonURL = "http://addon.test"

// payloadOf достаёт и декодирует параметр b из построенного URL.
func payloadOf(t *testing.T, url string) string {
	t.Helper()
	_, encoded, found := strings.Cut(url, "?b=")
	require.True(t, found, "no b parameter in %s", url)

	raw, err := LegacyParamEncoding.DecodeString(encoded)
	require.NoError(t, err)
	return string(raw)
}

// Фиксированные входы: любая смена алфавита или паддинга ломает эти строки.
func TestLegacyParamEncoding_Pinned(t *testing.T) {
	assert.Equal(t, "+/+/", encodeLegacyParam([]byte{0xfb, 0xff, 0xbf}))
	assert.Equal(t, "+/8=", encodeLegacyParam([]byte{0xfb, 0xff}))
	assert.Equal(t, "e30=", encodeLegacyParam([]byte("{}")))
}

func TestLegacyParamEncoding_NotURLSafe(t *testing.T) {
	encoded := encodeLegacyParam([]byte{0xfb, 0xff, 0xbf})

	_, err := base64.URLEncoding.DecodeString(encoded)
	assert.Error(t, err)

	raw, err := LegacyParamEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff, 0xbf}, raw)
}

func TestBuildLegacyRequest_Catalog(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ResourceRequest
		wantURL string
		wantRaw string
	}{
		{
			name:    "top without extras",
			req:     models.NewCatalogRequest(testAddonURL, "movie", "top"),
			wantURL: testAddonURL + "/q.json?b=eyJqc29ucnBjIjoiMi4wIiwibWV0aG9kIjoic3RyZWFtLmZpbmQiLCJwYXJhbXMiOltudWxsLHsibGltaXQiOjEwMCwicXVlcnkiOnsiZ2VucmUiOm51bGx9LCJza2lwIjpudWxsLCJzb3J0IjpudWxsfV19",
			wantRaw: `{"jsonrpc":"2.0","method":"stream.find","params":[null,{"limit":100,"query":{"genre":null},"skip":null,"sort":null}]}`,
		},
		{
			name: "id doubles as sort field",
			req: models.NewCatalogRequest(testAddonURL, "movie", "imdbRating",
				models.ExtraProp{Name: "genre", Value: "Drama"},
				models.ExtraProp{Name: "skip", Value: "100"},
				models.ExtraProp{Name: "genre", Value: "Comedy"},
			),
			wantURL: testAddonURL + "/q.json?b=eyJqc29ucnBjIjoiMi4wIiwibWV0aG9kIjoic3RyZWFtLmZpbmQiLCJwYXJhbXMiOltudWxsLHsibGltaXQiOjEwMCwicXVlcnkiOnsiZ2VucmUiOiJEcmFtYSJ9LCJza2lwIjoiMTAwIiwic29ydCI6eyJpbWRiUmF0aW5nIjotMSwicG9wdWxhcml0eSI6LTF9fV19",
			wantRaw: `{"jsonrpc":"2.0","method":"stream.find","params":[null,{"limit":100,"query":{"genre":"Drama"},"skip":"100","sort":{"imdbRating":-1,"popularity":-1}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildLegacyRequest(tt.req)
			require.NoError(t, err)

			assert.Equal(t, http.MethodGet, got.Method)
			assert.Equal(t, tt.wantURL, got.URL)
			assert.JSONEq(t, tt.wantRaw, payloadOf(t, got.URL))
		})
	}
}

// Байты payload сравниваются как есть: '&', '<' и '>' не экранируются.
func TestBuildLegacyRequest_CatalogNotHTMLEscaped(t *testing.T) {
	req := models.NewCatalogRequest(testAddonURL, "movie", "top",
		models.ExtraProp{Name: "genre", Value: "Sci-Fi & Fantasy"},
		models.ExtraProp{Name: "skip", Value: "<100>"},
	)
	wantRaw := `{"jsonrpc":"2.0","method":"stream.find","params":[null,{"limit":100,"query":{"genre":"Sci-Fi & Fantasy"},"skip":"<100>","sort":null}]}`

	got, err := BuildLegacyRequest(req)
	require.NoError(t, err)

	assert.Equal(t, wantRaw, payloadOf(t, got.URL))
	assert.Equal(t, testAddonURL+"/q.json?b="+LegacyParamEncoding.EncodeToString([]byte(wantRaw)), got.URL)
	assert.NotContains(t, payloadOf(t, got.URL), `\u0026`)
}

func TestBuildLegacyRequest_MetaAndStreamsSendEmptyObject(t *testing.T) {
	for _, kind := range []models.ResourceKind{models.ResourceMeta, models.ResourceStreams} {
		t.Run(kind.String(), func(t *testing.T) {
			req := models.ResourceRequest{
				TransportURL: testAddonURL,
				ResourceRef:  models.ResourceRef{Resource: kind, TypeName: "series", ID: "tt0944947"},
			}

			got, err := BuildLegacyRequest(req)
			require.NoError(t, err)
			assert.Equal(t, testAddonURL+"/q.json?b=e30=", got.URL)
		})
	}
}

func TestBuildLegacyRequest_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		ref     models.ResourceRef
		wantErr error
	}{
		{"unknown kind", models.ResourceRef{Resource: models.ResourceUnknown, ID: "x"}, ErrUnsupportedResource},
		{"kind out of range", models.ResourceRef{Resource: models.ResourceKind(42), ID: "x"}, ErrUnsupportedResource},
		{"empty id", models.ResourceRef{Resource: models.ResourceCatalog}, ErrRequestBuildFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLegacyRequest(models.ResourceRequest{TransportURL: testAddonURL, ResourceRef: tt.ref})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLegacySupportSets(t *testing.T) {
	assert.True(t, legacyBuildable(models.ResourceStreams))
	assert.False(t, legacyInterpretable(models.ResourceStreams))

	for _, kind := range []models.ResourceKind{models.ResourceCatalog, models.ResourceMeta} {
		assert.True(t, legacyBuildable(kind), kind.String())
		assert.True(t, legacyInterpretable(kind), kind.String())
	}
	assert.False(t, legacyBuildable(models.ResourceUnknown))
}

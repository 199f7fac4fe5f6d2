package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side session settings.
type ClientApp struct {
	// AuthKey is the session key sent with every datastore command.
	AuthKey string
	// Collection is the datastore collection being synchronized.
	Collection string
}

// ClientAdapter holds the remote endpoints used by the client adapters.
type ClientAdapter struct {
	// APIURL is the base URL of the datastore API.
	APIURL string
	// AddonURL is the transport URL of the legacy addon.
	AddonURL string
	// RequestTimeout is the timeout for outbound requests. Zero disables it.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the local library index.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Log     Log
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			AuthKey:    cfg.App.AuthKey,
			Collection: cfg.App.Collection,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			AddonURL:       cfg.Adapter.AddonURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Log: cfg.Log,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the datastore server. It is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings. The client stores its local
	// library index in SQLite, the server stores collections in PostgreSQL.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the datastore server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote endpoints the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values.
type App struct {
	// AuthKey is the session key the client presents to the datastore API.
	// Env: APP_AUTH_KEY
	AuthKey string `env:"AUTH_KEY"`

	// Collection is the datastore collection the client synchronizes.
	// Env: APP_COLLECTION
	Collection string `env:"COLLECTION"`

	// TokenSignKey is the HMAC key used by the server to sign and verify
	// session keys. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session key.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued session key stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// IssueKeyFor makes the server print a session key for the given owner
	// and exit instead of serving.
	IssueKeyFor string `env:"ISSUE_KEY_FOR"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the datastore API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC health service listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is a PostgreSQL connection string on the server and a SQLite file
	// path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the outbound endpoints of the client.
type Adapter struct {
	// APIURL is the base URL of the datastore API (e.g. "https://api.example.com").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// AddonURL is the transport URL of the legacy addon browsed by the client.
	// Env: ADAPTER_ADDON_URL
	AddonURL string `env:"ADDON_URL"`

	// RequestTimeout bounds every outbound request. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the client log file. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources. Sources are merged in priority order (the first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// Package config provides configuration loading, merging, and validation
// for the library sync client and the datastore server.
//
// Configuration is assembled from multiple sources in priority order (the
// first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config

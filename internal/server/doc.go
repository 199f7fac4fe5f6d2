// Package server runs the datastore server's transports.
//
// The HTTP server carries the datastore API, the gRPC server carries only
// health checks. Both are stopped gracefully on SIGTERM, SIGINT or SIGQUIT.
package server

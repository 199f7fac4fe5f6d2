// Package http implements the HTTP transport of the reference datastore
// server.
//
// It exposes the datastore command protocol (POST /api/datastoreMeta,
// /api/datastoreGet and /api/datastorePut) and GET /api/version/. Tracing,
// access logging and session key authentication are handled by middleware in
// this package before requests are delegated to the service layer. Every
// datastore answer is wrapped in a {"result"} or {"error"} envelope.
package http

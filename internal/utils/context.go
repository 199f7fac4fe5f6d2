// Package utils provides general-purpose helpers shared by the client and
// the datastore server: typed context keys, JSON response writers, the
// resty-backed HTTP client, session key generation and validation, and
// trace ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key under which the authenticated owner of a
// datastore request is stored.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, "alice")
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the owner identifier from the context.
// ok is false when the value is missing, empty or not a string.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if ownerID == "" {
		return "", false
	}
	return ownerID, ok
}

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

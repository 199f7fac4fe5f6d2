// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request decoding done by this package.
var (
	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("cannot read request body")

	// ErrBodyTooLarge is returned when the body exceeds maxRequestBodySize.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrDecodingBody is returned when the body is not a JSON datastore
	// request.
	ErrDecodingBody = errors.New("cannot decode request body")

	// ErrNoOwnerInContext is returned when a datastore handler runs without
	// the auth middleware in front of it.
	ErrNoOwnerInContext = errors.New("no owner in request context")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings and error codes of the datastore
// API. The server writes them into {"error": {"message", "code"}} envelopes
// and the client maps them back to service errors, so both sides share one
// source of wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestTooLarge is returned when the request body exceeds the size
	// limit of the server.
	MsgRequestTooLarge = "request body too large"

	// MsgSessionNotFound is returned when the authKey is missing, expired or
	// cannot be verified.
	MsgSessionNotFound = "session does not exist"

	// MsgUnknownCollection is returned for a collection the server does not
	// store.
	MsgUnknownCollection = "unknown collection"

	// MsgNoIDsProvided is returned by datastoreGet when neither ids nor
	// all=true were given.
	MsgNoIDsProvided = "no ids provided"

	// MsgNoChangesProvided is returned by datastorePut with an empty change list.
	MsgNoChangesProvided = "no changes provided"

	// MsgInvalidLibItem is returned when a put change has an empty _id or no
	// _mtime.
	MsgInvalidLibItem = "invalid library item"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the database rejected the call
	// with a retryable error.
	MsgStorageUnavailable = "storage temporarily unavailable"
)

// Error codes carried next to the messages above.
const (
	CodeSessionNotFound    = 1
	CodeInvalidRequest     = 2
	CodeUnknownCollection  = 3
	CodeStorageUnavailable = 4
	CodeInternal           = 5
)

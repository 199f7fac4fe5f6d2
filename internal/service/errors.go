package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotImplemented is returned by the single-item sync operations.
	ErrNotImplemented = errors.New("not implemented")

	ErrSessionInvalid     = errors.New("session key is expired or invalid")
	ErrSessionKeyCreation = errors.New("session key creation failed")
	ErrUnknownCollection  = errors.New("unknown collection")

	ErrRemoteUnavailable = errors.New("remote datastore temporarily unavailable")
	ErrRemoteInternal    = errors.New("remote datastore internal error")

	ErrUnexpectedResponse = errors.New("unexpected addon response")
	ErrNoAddonConfigured  = errors.New("no addon url configured")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/app"
)

// mapAdapterError translates an error envelope of the datastore API into a
// service business error. The adapter error stays in the chain, so callers
// can match both.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	var mapped error
	switch apiErr.Code {
	case app.CodeSessionNotFound:
		mapped = ErrSessionInvalid
	case app.CodeInvalidRequest:
		mapped = ErrInvalidDataProvided
	case app.CodeUnknownCollection:
		mapped = ErrUnknownCollection
	case app.CodeStorageUnavailable:
		mapped = ErrRemoteUnavailable
	case app.CodeInternal:
		mapped = ErrRemoteInternal
	default:
		// codes of other datastore implementations; fall back to the message
		mapped = mapAPIMessage(apiErr.Message)
	}
	if mapped == nil {
		return err
	}

	return fmt.Errorf("%w: %w", mapped, err)
}

func mapAPIMessage(msg string) error {
	switch msg {
	case app.MsgSessionNotFound:
		return ErrSessionInvalid
	case app.MsgUnknownCollection:
		return ErrUnknownCollection
	case app.MsgInvalidDataProvided, app.MsgNoIDsProvided, app.MsgNoChangesProvided, app.MsgInvalidLibItem:
		return ErrInvalidDataProvided
	case app.MsgStorageUnavailable:
		return ErrRemoteUnavailable
	case app.MsgInternalServerError:
		return ErrRemoteInternal
	}
	return nil
}

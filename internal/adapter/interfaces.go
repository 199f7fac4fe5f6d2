// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the client: the legacy
// addon protocol used to fetch catalogs and metas, and the datastore API used
// to synchronize the user's library.
//
// Both transports are exposed as interfaces ([AddonTransport] and
// [DatastoreAdapter]) that are passed to the service layer at construction,
// so they can be replaced with mocks in tests.
//
// Error values defined in errors.go classify every failure as unsupported,
// build, network, decode or datastore failure; callers match them with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AddonTransport fetches a resource from an addon.
type AddonTransport interface {
	// Get issues exactly one request for req and returns the typed response.
	// The variant of the response always matches req.ResourceRef.Resource.
	// No retries are made and no timeout is imposed beyond the one the
	// transport was configured with.
	Get(ctx context.Context, req models.ResourceRequest) (models.ResourceResponse, error)
}

// DatastoreAdapter sends datastore commands to the remote API. Requests are
// built with [models.DatastoreReqBuilder]; the adapter only routes them by
// their Method and decodes the results.
type DatastoreAdapter interface {
	// Meta returns the modification time of every item of the collection.
	Meta(ctx context.Context, req models.DatastoreRequest) ([]models.LibMTime, error)

	// Get returns the full items requested by req.
	Get(ctx context.Context, req models.DatastoreRequest) ([]models.LibItem, error)

	// Put upserts req.Changes.
	Put(ctx context.Context, req models.DatastoreRequest) error
}

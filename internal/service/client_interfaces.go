package service

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

// LibrarySyncPlanner compares a local library index with the remote
// modification times fetched at the start of a sync pass.
type LibrarySyncPlanner interface {
	// BuildLibrarySyncPlan returns the IDs to pull and the items to push.
	// Timestamps are compared at millisecond resolution, the precision of the
	// datastore API; equal timestamps are considered converged. Both lists are
	// sorted by ID.
	BuildLibrarySyncPlan(ctx context.Context, local models.LibraryIndex, remote []models.LibMTime) (models.LibrarySyncPlan, error)
}

// ClientLibrarySyncService reconciles the caller's library index with the
// remote datastore.
type ClientLibrarySyncService interface {
	// Sync runs one pass: datastoreMeta, then datastoreGet for the items that
	// are newer remotely and datastorePut for the items that are newer
	// locally, concurrently. Both must succeed. The pulled items are returned
	// for the caller to merge; local is never modified.
	Sync(ctx context.Context, local models.LibraryIndex, session models.Session) ([]models.LibItem, error)

	// PushItem is reserved for single-item upload. It returns ErrNotImplemented.
	PushItem(ctx context.Context, item models.LibItem, session models.Session) error

	// PullItem is reserved for single-item download. It returns ErrNotImplemented.
	PullItem(ctx context.Context, id string, session models.Session) (models.LibItem, error)
}

// ClientAddonService browses the configured addon through the legacy
// transport.
type ClientAddonService interface {
	// Catalog returns the metas of the catalog id for typeName.
	Catalog(ctx context.Context, typeName, id string, extra ...models.ExtraProp) ([]models.MetaPreview, error)

	// Meta returns the detailed meta item id for typeName.
	Meta(ctx context.Context, typeName, id string) (models.MetaItem, error)
}

// ClientLibraryService owns the locally persisted library index and runs
// user-triggered sync passes against it.
type ClientLibraryService interface {
	// Index returns a snapshot of the local library.
	Index(ctx context.Context) (models.LibraryIndex, error)

	// SyncNow loads the local library, runs one sync pass, merges the pulled
	// items into the index and persists them. It returns the pulled items.
	SyncNow(ctx context.Context) ([]models.LibItem, error)
}

package store

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DatastoreRepository persists library collections per owner on the
// datastore server.
type DatastoreRepository interface {
	// MTimes returns the modification time of every item of the collection.
	MTimes(ctx context.Context, ownerID, collection string) ([]models.LibMTime, error)
	// Get returns the items with the given IDs. Unknown IDs are skipped.
	Get(ctx context.Context, ownerID, collection string, ids []string) ([]models.LibItem, error)
	// GetAll returns every item of the collection.
	GetAll(ctx context.Context, ownerID, collection string) ([]models.LibItem, error)
	// Put upserts items in one transaction. A stored item is only replaced by
	// a change with a newer mtime.
	Put(ctx context.Context, ownerID, collection string, items []models.LibItem) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

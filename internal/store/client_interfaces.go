package store

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalLibraryRepository persists the client's library index.
type LocalLibraryRepository interface {
	// LoadIndex reads every stored item.
	LoadIndex(ctx context.Context) (models.LibraryIndex, error)
	// SaveItems inserts or replaces the given items.
	SaveItems(ctx context.Context, items ...models.LibItem) error
}

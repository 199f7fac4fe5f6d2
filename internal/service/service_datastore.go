package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

type datastoreService struct {
	repository  store.DatastoreRepository
	collections map[string]struct{}

	logger *logger.Logger
}

// NewDatastoreService returns a DatastoreService storing the given
// collections. With no collections it serves only [models.LibraryCollection].
func NewDatastoreService(repository store.DatastoreRepository, logger *logger.Logger, collections ...string) DatastoreService {
	if len(collections) == 0 {
		collections = []string{models.LibraryCollection}
	}

	known := make(map[string]struct{}, len(collections))
	for _, c := range collections {
		known[c] = struct{}{}
	}

	return &datastoreService{
		repository:  repository,
		collections: known,
		logger:      logger,
	}
}

func (d *datastoreService) Meta(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibMTime, error) {
	if err := d.checkCollection(req.Collection); err != nil {
		return nil, err
	}

	mtimes, err := d.repository.MTimes(ctx, ownerID, req.Collection)
	if err != nil {
		return nil, fmt.Errorf("datastoreMeta: %w", err)
	}
	return mtimes, nil
}

// Get returns the whole collection when req.All is set and the items named
// by req.IDs otherwise. Unknown IDs are skipped.
func (d *datastoreService) Get(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibItem, error) {
	if err := d.checkCollection(req.Collection); err != nil {
		return nil, err
	}

	var (
		items []models.LibItem
		err   error
	)
	if req.All {
		items, err = d.repository.GetAll(ctx, ownerID, req.Collection)
	} else {
		items, err = d.repository.Get(ctx, ownerID, req.Collection, req.IDs)
	}
	if err != nil {
		return nil, fmt.Errorf("datastoreGet: %w", err)
	}
	return items, nil
}

// Put upserts req.Changes. A change older than the stored copy is ignored.
func (d *datastoreService) Put(ctx context.Context, ownerID string, req models.DatastoreRequest) error {
	if err := d.checkCollection(req.Collection); err != nil {
		return err
	}

	if err := d.repository.Put(ctx, ownerID, req.Collection, req.Changes); err != nil {
		return fmt.Errorf("datastorePut: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("owner_id", ownerID).
		Str("collection", req.Collection).
		Int("changes", len(req.Changes)).
		Msg("changes stored")
	return nil
}

func (d *datastoreService) checkCollection(collection string) error {
	if _, ok := d.collections[collection]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return nil
}

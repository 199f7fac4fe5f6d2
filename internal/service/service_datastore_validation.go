package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/validators"
	"github.com/MKhiriev/go-library-sync/models"
)

// DatastoreValidationService rejects malformed commands before they reach
// the wrapped DatastoreService.
type DatastoreValidationService struct {
	inner     DatastoreService
	validator validators.Validator
}

func NewDatastoreValidationService() DatastoreServiceWrapper {
	return &DatastoreValidationService{
		validator: validators.NewDatastoreValidator(),
	}
}

func (v *DatastoreValidationService) Meta(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibMTime, error) {
	req.Method = models.MethodDatastoreMeta
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.Meta(ctx, ownerID, req)
}

func (v *DatastoreValidationService) Get(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibItem, error) {
	req.Method = models.MethodDatastoreGet
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.Get(ctx, ownerID, req)
}

func (v *DatastoreValidationService) Put(ctx context.Context, ownerID string, req models.DatastoreRequest) error {
	req.Method = models.MethodDatastorePut
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.Put(ctx, ownerID, req)
}

func (v *DatastoreValidationService) validate(ctx context.Context, req models.DatastoreRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *DatastoreValidationService) Wrap(wrapped DatastoreService) DatastoreService {
	v.inner = wrapped
	return v
}

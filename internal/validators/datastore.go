package validators

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAuthKey targets the session key of a datastore request.
	FieldAuthKey = "auth_key"

	// FieldCollection targets the collection name of a datastore request.
	FieldCollection = "collection"

	// FieldMethod targets the datastore method a request is sent to.
	FieldMethod = "method"

	// FieldIDs targets the ids/all pair of a datastoreGet request.
	FieldIDs = "ids"

	// FieldChanges targets the change list of a datastorePut request.
	FieldChanges = "changes"

	// FieldID targets the _id of a library item.
	FieldID = "_id"

	// FieldMTime targets the _mtime of a library item.
	FieldMTime = "_mtime"
)

// DatastoreValidator implements [Validator] for models.DatastoreRequest and
// models.LibItem, in value and pointer form.
type DatastoreValidator struct {
}

// NewDatastoreValidator constructs a new DatastoreValidator.
func NewDatastoreValidator() Validator {
	return &DatastoreValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given,
// the default set for the request's method (or for the item) is checked.
func (v *DatastoreValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DatastoreRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.DatastoreRequest:
		return v.validateRequest(ctx, *value, fields...)

	case models.LibItem:
		return v.validateLibItem(ctx, value, fields...)
	case *models.LibItem:
		return v.validateLibItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func defaultRequestFields(method string) []string {
	switch method {
	case models.MethodDatastoreGet:
		return []string{FieldAuthKey, FieldCollection, FieldIDs}
	case models.MethodDatastorePut:
		return []string{FieldAuthKey, FieldCollection, FieldChanges}
	default:
		return []string{FieldAuthKey, FieldCollection, FieldMethod}
	}
}

func (v *DatastoreValidator) validateRequest(ctx context.Context, req models.DatastoreRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRequestFields(req.Method)
	}

	for _, f := range fields {
		switch f {
		case FieldAuthKey:
			if req.AuthKey == "" {
				return ErrEmptyAuthKey
			}
		case FieldCollection:
			if req.Collection == "" {
				return ErrEmptyCollection
			}
		case FieldMethod:
			switch req.Method {
			case models.MethodDatastoreMeta, models.MethodDatastoreGet, models.MethodDatastorePut:
			default:
				return ErrUnknownMethod
			}
		case FieldIDs:
			if req.All {
				continue
			}
			if len(req.IDs) == 0 {
				return ErrEmptyIDs
			}
			for _, id := range req.IDs {
				if id == "" {
					return ErrEmptyID
				}
			}
		case FieldChanges:
			if len(req.Changes) == 0 {
				return ErrEmptyChanges
			}
			seen := make(map[string]struct{}, len(req.Changes))
			for _, item := range req.Changes {
				if err := v.validateLibItem(ctx, item); err != nil {
					return err
				}
				if _, dup := seen[item.ID]; dup {
					return ErrDuplicateLibItem
				}
				seen[item.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DatastoreValidator) validateLibItem(_ context.Context, item models.LibItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldMTime}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrInvalidLibItemID
			}
		case FieldMTime:
			if item.MTime.IsZero() {
				return ErrInvalidLibItemMTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

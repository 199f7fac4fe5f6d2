package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAuthKey        = errors.New("auth key is required")
	ErrEmptyCollection     = errors.New("collection is required")
	ErrUnknownMethod       = errors.New("unknown datastore method")
	ErrEmptyIDs            = errors.New("IDs list cannot be empty unless all is set")
	ErrEmptyID             = errors.New("IDs list contains an empty ID")
	ErrEmptyChanges        = errors.New("changes list cannot be empty")
	ErrInvalidLibItemID    = errors.New("invalid library item id")
	ErrInvalidLibItemMTime = errors.New("library item mtime is required")
	ErrDuplicateLibItem    = errors.New("duplicate library item id in changes")
)

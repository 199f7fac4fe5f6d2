package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-library-sync/internal/app"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apiError
	}{
		{"too large", ErrBodyTooLarge, apiError{http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge, app.CodeInvalidRequest}},
		{"decode", fmt.Errorf("%w: eof", ErrDecodingBody), apiError{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeInvalidRequest}},
		{"no owner", ErrNoOwnerInContext, apiError{http.StatusUnauthorized, app.MsgSessionNotFound, app.CodeSessionNotFound}},
		{"session", fmt.Errorf("%w: token expired", service.ErrSessionInvalid), apiError{http.StatusUnauthorized, app.MsgSessionNotFound, app.CodeSessionNotFound}},
		{"empty ids", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyIDs), apiError{http.StatusBadRequest, app.MsgNoIDsProvided, app.CodeInvalidRequest}},
		{"bad item", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLibItemMTime), apiError{http.StatusBadRequest, app.MsgInvalidLibItem, app.CodeInvalidRequest}},
		{"duplicate", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrDuplicateLibItem), apiError{http.StatusBadRequest, app.MsgInvalidLibItem, app.CodeInvalidRequest}},
		{"empty collection", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyCollection), apiError{http.StatusBadRequest, app.MsgUnknownCollection, app.CodeUnknownCollection}},
		{"other validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyID), apiError{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeInvalidRequest}},
		{"storage", fmt.Errorf("%w: %w", store.ErrStorageUnavailable, store.ErrExecutingQuery), apiError{http.StatusServiceUnavailable, app.MsgStorageUnavailable, app.CodeStorageUnavailable}},
		{"query failed", store.ErrExecutingQuery, internalAPIError},
		{"cancelled", context.Canceled, internalAPIError},
		{"anything", errors.New("boom"), internalAPIError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apiErrorFromError(tt.err))
		})
	}
}

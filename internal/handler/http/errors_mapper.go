package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library-sync/internal/app"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/validators"
)

// apiError is what a failed datastore command answers with.
type apiError struct {
	status  int
	message string
	code    int
}

// errorRules are checked in order; the first match wins. Validation causes
// come before service.ErrInvalidDataProvided so the message names the
// offending part of the request.
var errorRules = []struct {
	target error
	apiError
}{
	{ErrBodyTooLarge, apiError{http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge, app.CodeInvalidRequest}},
	{ErrReadingBody, apiError{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeInvalidRequest}},
	{ErrDecodingBody, apiError{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeInvalidRequest}},

	{validators.ErrEmptyAuthKey, apiError{http.StatusUnauthorized, app.MsgSessionNotFound, app.CodeSessionNotFound}},
	{service.ErrSessionInvalid, apiError{http.StatusUnauthorized, app.MsgSessionNotFound, app.CodeSessionNotFound}},
	{ErrNoOwnerInContext, apiError{http.StatusUnauthorized, app.MsgSessionNotFound, app.CodeSessionNotFound}},

	{validators.ErrEmptyIDs, apiError{http.StatusBadRequest, app.MsgNoIDsProvided, app.CodeInvalidRequest}},
	{validators.ErrEmptyChanges, apiError{http.StatusBadRequest, app.MsgNoChangesProvided, app.CodeInvalidRequest}},
	{validators.ErrInvalidLibItemID, apiError{http.StatusBadRequest, app.MsgInvalidLibItem, app.CodeInvalidRequest}},
	{validators.ErrInvalidLibItemMTime, apiError{http.StatusBadRequest, app.MsgInvalidLibItem, app.CodeInvalidRequest}},
	{validators.ErrDuplicateLibItem, apiError{http.StatusBadRequest, app.MsgInvalidLibItem, app.CodeInvalidRequest}},
	{validators.ErrEmptyCollection, apiError{http.StatusBadRequest, app.MsgUnknownCollection, app.CodeUnknownCollection}},
	{service.ErrUnknownCollection, apiError{http.StatusBadRequest, app.MsgUnknownCollection, app.CodeUnknownCollection}},
	{service.ErrInvalidDataProvided, apiError{http.StatusBadRequest, app.MsgInvalidDataProvided, app.CodeInvalidRequest}},

	{store.ErrStorageUnavailable, apiError{http.StatusServiceUnavailable, app.MsgStorageUnavailable, app.CodeStorageUnavailable}},
}

var internalAPIError = apiError{http.StatusInternalServerError, app.MsgInternalServerError, app.CodeInternal}

func apiErrorFromError(err error) apiError {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.apiError
		}
	}
	return internalAPIError
}

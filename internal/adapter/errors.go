package adapter

import (
	"errors"
	"fmt"
)

// Failure classes of the outbound transports.
var (
	// ErrUnsupportedResource is returned when the legacy protocol cannot
	// handle the requested resource kind. No request is sent.
	ErrUnsupportedResource = errors.New("legacy transport: unsupported resource")

	// ErrRequestBuildFailure is returned when the request could not be
	// serialized. No request is sent.
	ErrRequestBuildFailure = errors.New("request build failure")

	// ErrNetworkFailure covers connection errors and non-2xx responses.
	// Retrying may succeed.
	ErrNetworkFailure = errors.New("network failure")

	// ErrDecodeFailure is returned when a response body does not have the
	// expected shape. Retrying the same request will fail the same way.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrDatastoreFailure is returned when the datastore API answers with an
	// error envelope.
	ErrDatastoreFailure = errors.New("datastore failure")
)

// APIError is the error reported by the datastore API inside its response
// envelope. It matches [ErrDatastoreFailure] with [errors.Is].
type APIError struct {
	Message string
	Code    int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", ErrDatastoreFailure, e.Message, e.Code)
}

// Unwrap makes APIError match [ErrDatastoreFailure].
func (e *APIError) Unwrap() error {
	return ErrDatastoreFailure
}

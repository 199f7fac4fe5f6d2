package utils

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAPIResult wraps result into the {"result": ...} envelope of the
// datastore API and writes it with 200 OK.
func WriteAPIResult[T any](w http.ResponseWriter, result T) (int, error) {
	return WriteJSON(w, models.APIResult[T]{Result: &result}, http.StatusOK)
}

// WriteAPIError writes the {"error": {"message", "code"}} envelope of the
// datastore API with the given HTTP status.
func WriteAPIError(w http.ResponseWriter, message string, code int, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResult[struct{}]{
		Error: &models.APIErrorBody{Message: message, Code: code},
	}, statusCode)
}

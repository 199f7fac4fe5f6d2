// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

func (h *Handler) datastoreMeta(w http.ResponseWriter, r *http.Request) {
	ownerID, req, err := decodeDatastoreRequest(r, models.MethodDatastoreMeta)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	mtimes, err := h.services.DatastoreService.Meta(r.Context(), ownerID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if mtimes == nil {
		mtimes = []models.LibMTime{}
	}

	utils.WriteAPIResult(w, mtimes)
}

func (h *Handler) datastoreGet(w http.ResponseWriter, r *http.Request) {
	ownerID, req, err := decodeDatastoreRequest(r, models.MethodDatastoreGet)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items, err := h.services.DatastoreService.Get(r.Context(), ownerID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.LibItem{}
	}

	utils.WriteAPIResult(w, items)
}

func (h *Handler) datastorePut(w http.ResponseWriter, r *http.Request) {
	ownerID, req, err := decodeDatastoreRequest(r, models.MethodDatastorePut)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.DatastoreService.Put(r.Context(), ownerID, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteAPIResult(w, models.SuccessResponse{Success: true})
}

// decodeDatastoreRequest returns the owner set by the auth middleware and the
// command in the body, tagged with method.
func decodeDatastoreRequest(r *http.Request, method string) (string, models.DatastoreRequest, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		return "", models.DatastoreRequest{}, ErrNoOwnerInContext
	}

	var req models.DatastoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", models.DatastoreRequest{}, fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}
	req.Method = method

	return ownerID, req, nil
}

// writeError answers with the error envelope matching err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrorFromError(err)

	event := logger.FromRequest(r).Error()
	if apiErr.status < http.StatusInternalServerError {
		event = logger.FromRequest(r).Warn()
	}
	event.Err(err).
		Int("status", apiErr.status).
		Int("code", apiErr.code).
		Msg(apiErr.message)

	utils.WriteAPIError(w, apiErr.message, apiErr.code, apiErr.status)
}

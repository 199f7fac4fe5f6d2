// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

type httpDatastoreAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDatastoreAdapter constructs the HTTP implementation of
// [DatastoreAdapter]. It normalises and validates the base URL from
// adapterCfg.APIURL and applies adapterCfg.RequestTimeout when positive.
//
// Returns an error if adapterCfg.APIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPDatastoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DatastoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpDatastoreAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Meta implements [DatastoreAdapter]. It POSTs to /api/datastoreMeta.
func (h *httpDatastoreAdapter) Meta(ctx context.Context, req models.DatastoreRequest) ([]models.LibMTime, error) {
	req.Method = models.MethodDatastoreMeta
	return apiFetch[[]models.LibMTime](ctx, h, req)
}

// Get implements [DatastoreAdapter]. It POSTs to /api/datastoreGet.
func (h *httpDatastoreAdapter) Get(ctx context.Context, req models.DatastoreRequest) ([]models.LibItem, error) {
	req.Method = models.MethodDatastoreGet
	return apiFetch[[]models.LibItem](ctx, h, req)
}

// Put implements [DatastoreAdapter]. It POSTs to /api/datastorePut and
// requires a {"success": true} acknowledgement.
func (h *httpDatastoreAdapter) Put(ctx context.Context, req models.DatastoreRequest) error {
	req.Method = models.MethodDatastorePut

	ack, err := apiFetch[models.SuccessResponse](ctx, h, req)
	if err != nil {
		return err
	}
	if !ack.Success {
		return fmt.Errorf("%w: put was not acknowledged", ErrDatastoreFailure)
	}
	return nil
}

// apiFetch sends req to /api/{req.Method} and unwraps the {result}/{error}
// envelope of the answer.
func apiFetch[T any](ctx context.Context, h *httpDatastoreAdapter, req models.DatastoreRequest) (T, error) {
	var zero T

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/" + req.Method)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpDatastoreAdapter.apiFetch").
			Str("method", req.Method).
			Msg("datastore request failed")
		return zero, fmt.Errorf("%w: %s request: %w", ErrNetworkFailure, req.Method, err)
	}

	var envelope models.APIResult[T]
	decodeErr := json.Unmarshal(resp.Body(), &envelope)

	// the API reports its own errors in the envelope, whatever the status
	if decodeErr == nil && envelope.Error != nil {
		return zero, &APIError{Message: envelope.Error.Message, Code: envelope.Error.Code}
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("%w: decode %s response: %w", ErrDecodeFailure, req.Method, decodeErr)
	}
	if envelope.Result == nil {
		return zero, fmt.Errorf("%w: %s response has neither result nor error", ErrDecodeFailure, req.Method)
	}

	return *envelope.Result, nil
}

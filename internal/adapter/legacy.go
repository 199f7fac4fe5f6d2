// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

type legacyTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewLegacyTransport constructs the [AddonTransport] for addons that only
// speak the legacy JSON-RPC-over-GET protocol.
//
// The transport is stateless and never retries. A request timeout is applied
// only when adapterCfg.RequestTimeout is positive.
func NewLegacyTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) AddonTransport {
	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &legacyTransport{client: client, logger: logger}
}

// Get implements [AddonTransport]. The request is built first, so unsupported
// kinds and build failures never reach the network. The response is mapped by
// the kind of the request, never by the shape of the body: a catalog expects
// a JSON array of metas, a meta expects a single JSON object. Streams
// requests are rejected with [ErrUnsupportedResource] before sending.
func (l *legacyTransport) Get(ctx context.Context, req models.ResourceRequest) (models.ResourceResponse, error) {
	kind := req.ResourceRef.Resource

	fetchReq, err := BuildLegacyRequest(req)
	if err != nil {
		l.logger.Err(err).
			Str("func", "legacyTransport.Get").
			Str("kind", kind.String()).
			Str("transport_url", req.TransportURL).
			Msg("failed to build legacy request")
		return models.ResourceResponse{}, err
	}

	if !legacyInterpretable(kind) {
		return models.ResourceResponse{}, fmt.Errorf("%w: no response mapping for %s", ErrUnsupportedResource, kind)
	}

	resp, err := l.client.R().
		SetContext(ctx).
		Execute(fetchReq.Method, fetchReq.URL)
	if err != nil {
		l.logger.Err(err).
			Str("func", "legacyTransport.Get").
			Str("kind", kind.String()).
			Str("transport_url", req.TransportURL).
			Msg("legacy request failed")
		return models.ResourceResponse{}, fmt.Errorf("%w: legacy %s request: %w", ErrNetworkFailure, kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResourceResponse{}, err
	}

	return interpretLegacyResponse(kind, resp.Body())
}

func interpretLegacyResponse(kind models.ResourceKind, body []byte) (models.ResourceResponse, error) {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return models.ResourceResponse{}, fmt.Errorf("%w: %s response is null", ErrDecodeFailure, kind)
	}

	switch kind {
	case models.ResourceCatalog:
		var metas []models.MetaPreview
		if err := json.Unmarshal(body, &metas); err != nil {
			return models.ResourceResponse{}, fmt.Errorf("%w: decode catalog response: %w", ErrDecodeFailure, err)
		}
		return models.NewMetasResponse(metas), nil

	case models.ResourceMeta:
		var meta models.MetaItem
		if err := json.Unmarshal(body, &meta); err != nil {
			return models.ResourceResponse{}, fmt.Errorf("%w: decode meta response: %w", ErrDecodeFailure, err)
		}
		return models.NewMetaResponse(meta), nil

	default:
		return models.ResourceResponse{}, fmt.Errorf("%w: no response mapping for %s", ErrUnsupportedResource, kind)
	}
}

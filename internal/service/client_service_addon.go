package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/models"
)

type clientAddonService struct {
	transport    adapter.AddonTransport
	transportURL string

	logger *logger.Logger
}

// NewClientAddonService returns a ClientAddonService fetching from the addon
// at transportURL. A trailing slash is dropped.
func NewClientAddonService(transport adapter.AddonTransport, transportURL string, logger *logger.Logger) ClientAddonService {
	return &clientAddonService{
		transport:    transport,
		transportURL: strings.TrimRight(transportURL, "/"),
		logger:       logger,
	}
}

func (s *clientAddonService) Catalog(ctx context.Context, typeName, id string, extra ...models.ExtraProp) ([]models.MetaPreview, error) {
	if s.transportURL == "" {
		return nil, ErrNoAddonConfigured
	}

	resp, err := s.transport.Get(ctx, models.NewCatalogRequest(s.transportURL, typeName, id, extra...))
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientAddonService.Catalog").
			Str("type", typeName).
			Str("id", id).
			Msg("catalog request failed")
		return nil, fmt.Errorf("fetch catalog %s/%s: %w", typeName, id, err)
	}
	if resp.Kind != models.ResponseMetas {
		return nil, fmt.Errorf("%w: catalog answered with kind %d", ErrUnexpectedResponse, resp.Kind)
	}

	return resp.Metas, nil
}

func (s *clientAddonService) Meta(ctx context.Context, typeName, id string) (models.MetaItem, error) {
	if s.transportURL == "" {
		return models.MetaItem{}, ErrNoAddonConfigured
	}

	resp, err := s.transport.Get(ctx, models.NewMetaRequest(s.transportURL, typeName, id))
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientAddonService.Meta").
			Str("type", typeName).
			Str("id", id).
			Msg("meta request failed")
		return models.MetaItem{}, fmt.Errorf("fetch meta %s/%s: %w", typeName, id, err)
	}
	if resp.Kind != models.ResponseMeta || resp.Meta == nil {
		return models.MetaItem{}, fmt.Errorf("%w: meta answered with kind %d", ErrUnexpectedResponse, resp.Kind)
	}

	return *resp.Meta, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

type clientLibraryService struct {
	repository store.LocalLibraryRepository
	syncer     ClientLibrarySyncService
	session    models.Session

	logger *logger.Logger
}

// NewClientLibraryService binds the local library repository to the sync
// engine for the given session.
func NewClientLibraryService(repository store.LocalLibraryRepository, syncer ClientLibrarySyncService, session models.Session, logger *logger.Logger) ClientLibraryService {
	return &clientLibraryService{
		repository: repository,
		syncer:     syncer,
		session:    session,
		logger:     logger,
	}
}

func (s *clientLibraryService) Index(ctx context.Context) (models.LibraryIndex, error) {
	index, err := s.repository.LoadIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load local library: %w", err)
	}
	return index, nil
}

func (s *clientLibraryService) SyncNow(ctx context.Context) ([]models.LibItem, error) {
	index, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	pulled, err := s.syncer.Sync(ctx, index.Clone(), s.session)
	if err != nil {
		return nil, fmt.Errorf("sync library: %w", err)
	}

	if len(pulled) > 0 {
		index.Update(pulled)
		if err = s.repository.SaveItems(ctx, pulled...); err != nil {
			return nil, fmt.Errorf("save pulled items: %w", err)
		}
	}

	s.logger.Info().
		Str("func", "clientLibraryService.SyncNow").
		Int("pulled", len(pulled)).
		Int("library_size", len(index)).
		Msg("library synchronized")

	return pulled, nil
}

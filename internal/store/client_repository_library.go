package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

type localLibraryRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalLibraryRepository returns the SQLite implementation of
// [LocalLibraryRepository].
func NewLocalLibraryRepository(db *DB, logger *logger.Logger) LocalLibraryRepository {
	return &localLibraryRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localLibraryRepository) LoadIndex(ctx context.Context) (models.LibraryIndex, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, loadLocalLibraryItems)
	if err != nil {
		log.Err(err).
			Str("func", "localLibraryRepository.LoadIndex").
			Msg("failed to execute query for loading library items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items, err := scanLibItems(rows)
	if err != nil {
		log.Err(err).
			Str("func", "localLibraryRepository.LoadIndex").
			Msg("failed to scan library items")
		return nil, err
	}

	return models.NewLibraryIndex(items...), nil
}

func (l *localLibraryRepository) SaveItems(ctx context.Context, items ...models.LibItem) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncodingItem, item.ID, err)
		}

		if _, err = tx.ExecContext(ctx, upsertLocalLibraryItem, item.ID, item.MTime.UnixMilli(), string(payload)); err != nil {
			log.Err(err).
				Str("func", "localLibraryRepository.SaveItems").
				Str("id", item.ID).
				Msg("failed to execute upsert for library item")
			return fmt.Errorf("%w: %s: %w", ErrExecutingStatement, item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

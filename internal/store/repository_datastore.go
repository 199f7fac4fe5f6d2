// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

type datastoreRepository struct {
	*DB
	logger *logger.Logger
}

// NewDatastoreRepository returns the PostgreSQL implementation of
// [DatastoreRepository].
func NewDatastoreRepository(db *DB, logger *logger.Logger) DatastoreRepository {
	return &datastoreRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *datastoreRepository) MTimes(ctx context.Context, ownerID, collection string) ([]models.LibMTime, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMTimesQuery(ownerID, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "datastoreRepository.MTimes").
			Str("owner_id", ownerID).
			Str("collection", collection).
			Msg("failed to query mtimes")
		return nil, r.wrapDBError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	mtimes := make([]models.LibMTime, 0)
	for rows.Next() {
		var (
			id string
			ms int64
		)
		if err = rows.Scan(&id, &ms); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		mtimes = append(mtimes, models.LibMTime{ID: id, MTime: time.UnixMilli(ms).UTC()})
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "datastoreRepository.MTimes").Msg("error occurred during rows iteration")
		return nil, r.wrapDBError(err, ErrScanningRows)
	}

	return mtimes, nil
}

func (r *datastoreRepository) Get(ctx context.Context, ownerID, collection string, ids []string) ([]models.LibItem, error) {
	if ids == nil {
		ids = []string{}
	}
	return r.selectItems(ctx, ownerID, collection, ids)
}

func (r *datastoreRepository) GetAll(ctx context.Context, ownerID, collection string) ([]models.LibItem, error) {
	return r.selectItems(ctx, ownerID, collection, nil)
}

func (r *datastoreRepository) selectItems(ctx context.Context, ownerID, collection string, ids []string) ([]models.LibItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(ownerID, collection, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "datastoreRepository.selectItems").
			Str("owner_id", ownerID).
			Str("collection", collection).
			Int("ids", len(ids)).
			Msg("failed to query library items")
		return nil, r.wrapDBError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	return scanLibItems(rows)
}

func (r *datastoreRepository) Put(ctx context.Context, ownerID, collection string, items []models.LibItem) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "datastoreRepository.Put").Msg("failed to begin transaction")
		return r.wrapDBError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncodingItem, item.ID, err)
		}

		query, args, err := buildUpsertItemQuery(ownerID, collection, item.ID, item.MTime.UnixMilli(), payload)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "datastoreRepository.Put").
				Str("owner_id", ownerID).
				Str("id", item.ID).
				Msg("failed to upsert library item")
			return r.wrapDBError(err, ErrExecutingStatement)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "datastoreRepository.Put").Msg("failed to commit transaction")
		return r.wrapDBError(err, ErrCommitingTransaction)
	}

	return nil
}

// scanLibItems decodes rows holding a single JSON item column.
func scanLibItems(rows *sql.Rows) ([]models.LibItem, error) {
	items := make([]models.LibItem, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var item models.LibItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingItem, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/models"
	"golang.org/x/sync/errgroup"
)

type clientLibrarySyncService struct {
	datastore  adapter.DatastoreAdapter
	planner    LibrarySyncPlanner
	collection string

	logger *logger.Logger
}

// NewClientLibrarySyncService returns the sync engine for collection. An
// empty collection means [models.LibraryCollection].
//
// The service holds no mutable state: concurrent passes for different
// sessions are safe, passes for the same session must be serialized by the
// caller.
func NewClientLibrarySyncService(datastore adapter.DatastoreAdapter, collection string, logger *logger.Logger) ClientLibrarySyncService {
	if collection == "" {
		collection = models.LibraryCollection
	}

	return &clientLibrarySyncService{
		datastore:  datastore,
		planner:    NewLibrarySyncPlanner(),
		collection: collection,
		logger:     logger,
	}
}

func (s *clientLibrarySyncService) Sync(ctx context.Context, local models.LibraryIndex, session models.Session) ([]models.LibItem, error) {
	builder := models.DatastoreReqBuilder{AuthKey: session.AuthKey, Collection: s.collection}

	remote, err := s.datastore.Meta(ctx, builder.WithCmd(models.DatastoreCmdMeta{}))
	if err != nil {
		s.logger.Err(err).Str("func", "clientLibrarySyncService.Sync").Msg("datastoreMeta failed")
		return nil, fmt.Errorf("fetch remote mtimes: %w", mapAdapterError(err))
	}

	plan, err := s.planner.BuildLibrarySyncPlan(ctx, local, remote)
	if err != nil {
		return nil, fmt.Errorf("build library sync plan: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientLibrarySyncService.Sync").
		Int("to_pull", len(plan.ToPull)).
		Int("to_push", len(plan.ToPush)).
		Msg("library sync plan built")

	if plan.IsEmpty() {
		return []models.LibItem{}, nil
	}

	var pulled []models.LibItem
	g, gctx := errgroup.WithContext(ctx)

	if len(plan.ToPull) > 0 {
		getReq := builder.WithCmd(models.DatastoreCmdGet{IDs: plan.ToPull})
		g.Go(func() error {
			items, err := s.datastore.Get(gctx, getReq)
			if err != nil {
				return fmt.Errorf("pull library items: %w", mapAdapterError(err))
			}
			pulled = items
			return nil
		})
	}

	if len(plan.ToPush) > 0 {
		putReq := builder.WithCmd(models.DatastoreCmdPut{Changes: plan.ToPush})
		g.Go(func() error {
			if err := s.datastore.Put(gctx, putReq); err != nil {
				return fmt.Errorf("push library items: %w", mapAdapterError(err))
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		s.logger.Err(err).
			Str("func", "clientLibrarySyncService.Sync").
			Int("to_pull", len(plan.ToPull)).
			Int("to_push", len(plan.ToPush)).
			Msg("library sync pass failed")
		return nil, err
	}

	if pulled == nil {
		pulled = []models.LibItem{}
	}
	return pulled, nil
}

func (s *clientLibrarySyncService) PushItem(_ context.Context, _ models.LibItem, _ models.Session) error {
	return ErrNotImplemented
}

func (s *clientLibrarySyncService) PullItem(_ context.Context, _ string, _ models.Session) (models.LibItem, error) {
	return models.LibItem{}, ErrNotImplemented
}

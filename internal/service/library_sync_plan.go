// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-library-sync/models"
)

// librarySyncPlanner is the concrete implementation of LibrarySyncPlanner.
// The comparison is pure and in-memory, so it has no dependencies.
type librarySyncPlanner struct{}

// NewLibrarySyncPlanner constructs a LibrarySyncPlanner ready for use.
func NewLibrarySyncPlanner() LibrarySyncPlanner {
	return &librarySyncPlanner{}
}

// BuildLibrarySyncPlan implements LibrarySyncPlanner.
//
// Two passes classify every ID at most once:
//
//   - Pass 1 (over remote): pull when the local copy is missing or older.
//   - Pass 2 (over local): push when the remote copy is missing or older.
//
// An ID can never be both pulled and pushed, since "older" is strict on both
// sides. ctx cancellation is checked on every iteration.
func (p *librarySyncPlanner) BuildLibrarySyncPlan(
	ctx context.Context,
	local models.LibraryIndex,
	remote []models.LibMTime,
) (models.LibrarySyncPlan, error) {
	remoteIndex := models.RemoteMTimes(remote)

	plan := models.LibrarySyncPlan{
		ToPull: make([]string, 0),
		ToPush: make([]models.LibItem, 0),
	}

	// ── Pass 1: remote records ──────────────────────────────────────────────
	for id, remoteMTime := range remoteIndex {
		if err := ctx.Err(); err != nil {
			return models.LibrarySyncPlan{}, err
		}

		localItem, ok := local[id]
		if !ok || localItem.MTime.UnixMilli() < remoteMTime.UnixMilli() {
			plan.ToPull = append(plan.ToPull, id)
		}
	}

	// ── Pass 2: local records ───────────────────────────────────────────────
	for id, localItem := range local {
		if err := ctx.Err(); err != nil {
			return models.LibrarySyncPlan{}, err
		}

		remoteMTime, ok := remoteIndex[id]
		if !ok || remoteMTime.UnixMilli() < localItem.MTime.UnixMilli() {
			plan.ToPush = append(plan.ToPush, localItem)
		}
	}

	slices.Sort(plan.ToPull)
	slices.SortFunc(plan.ToPush, func(a, b models.LibItem) int {
		return strings.Compare(a.ID, b.ID)
	})

	return plan, nil
}

package models

import "time"

// LibrarySyncPlan is the outcome of comparing a local [LibraryIndex] with the
// remote modification times of one sync pass.
type LibrarySyncPlan struct {
	// ToPull holds the IDs whose remote copy is newer or missing locally.
	ToPull []string
	// ToPush holds the local items whose remote copy is older or missing.
	ToPush []LibItem
}

// IsEmpty reports whether both sides are already converged.
func (p LibrarySyncPlan) IsEmpty() bool {
	return len(p.ToPull) == 0 && len(p.ToPush) == 0
}

// RemoteMTimes indexes a datastoreMeta result by item ID. A later duplicate
// replaces an earlier one.
func RemoteMTimes(entries []LibMTime) map[string]time.Time {
	out := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		out[e.ID] = e.MTime
	}
	return out
}

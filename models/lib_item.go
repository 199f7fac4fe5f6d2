// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// LibraryCollection is the datastore collection that holds library items.
const LibraryCollection = "libraryItem"

// LibItem is one record of the user's library.
//
// ID is unique within a [LibraryIndex]. MTime is the last modification time
// set by the writer; it is the only field the synchronization compares.
// State is kept opaque: it is stored and transferred as is.
type LibItem struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	TypeName    string          `json:"type"`
	Poster      *string         `json:"poster,omitempty"`
	PosterShape PosterShape     `json:"posterShape,omitempty"`
	Removed     bool            `json:"removed"`
	Temp        bool            `json:"temp"`
	CTime       *time.Time      `json:"_ctime,omitempty"`
	MTime       time.Time       `json:"_mtime"`
	State       json.RawMessage `json:"state,omitempty"`
}

// LibraryIndex is the caller-owned snapshot of library items keyed by ID.
type LibraryIndex map[string]LibItem

// NewLibraryIndex builds an index from a list of items. Later duplicates
// replace earlier ones.
func NewLibraryIndex(items ...LibItem) LibraryIndex {
	idx := make(LibraryIndex, len(items))
	idx.Update(items)
	return idx
}

// Update inserts or replaces the given items. It is the caller-side merge of
// items pulled by a sync pass.
func (l LibraryIndex) Update(items []LibItem) {
	for _, item := range items {
		l[item.ID] = item
	}
}

// Clone returns a shallow copy of the index.
func (l LibraryIndex) Clone() LibraryIndex {
	out := make(LibraryIndex, len(l))
	for id, item := range l {
		out[id] = item
	}
	return out
}

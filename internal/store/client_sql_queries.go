// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	loadLocalLibraryItems = `SELECT item FROM library_items ORDER BY id;`

	upsertLocalLibraryItem = `
		INSERT INTO library_items (id, mtime, item)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET mtime = excluded.mtime, item = excluded.item;`
)

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const libraryItemsTable = "library_items"

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// upsertNewerSuffix keeps the stored row when it is at least as new as the
// incoming one.
const upsertNewerSuffix = `ON CONFLICT (owner_id, collection, id) DO UPDATE
		SET mtime = EXCLUDED.mtime, item = EXCLUDED.item, updated_at = NOW()
		WHERE library_items.mtime < EXCLUDED.mtime`

func buildSelectMTimesQuery(ownerID, collection string) (string, []any, error) {
	return psql.
		Select("id", "mtime").
		From(libraryItemsTable).
		Where(sq.Eq{"owner_id": ownerID, "collection": collection}).
		OrderBy("id").
		ToSql()
}

// buildSelectItemsQuery selects the stored items. A nil ids selects the whole
// collection; an empty non-nil ids matches nothing.
func buildSelectItemsQuery(ownerID, collection string, ids []string) (string, []any, error) {
	where := sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"collection": collection}}
	if ids != nil {
		where = append(where, sq.Eq{"id": ids})
	}

	return psql.
		Select("item").
		From(libraryItemsTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

func buildUpsertItemQuery(ownerID, collection, id string, mtimeMillis int64, item []byte) (string, []any, error) {
	return psql.
		Insert(libraryItemsTable).
		Columns("owner_id", "collection", "id", "mtime", "item").
		Values(ownerID, collection, id, mtimeMillis, item).
		Suffix(upsertNewerSuffix).
		ToSql()
}

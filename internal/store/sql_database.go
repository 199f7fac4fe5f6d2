package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/migrations"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is a database handle shared by the repositories of one process.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// Migrate applies the embedded schema matching the connection's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case dialectPostgres:
		return migrations.MigratePostgres(db.DB)
	case dialectSQLite:
		return migrations.MigrateSQLite(db.DB)
	default:
		return fmt.Errorf("no migrations for dialect %q", db.dialect)
	}
}

// wrapDBError adds [ErrStorageUnavailable] to err when the classifier marks
// it retryable, so the HTTP layer can answer with 503.
func (db *DB) wrapDBError(err error, sentinel error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

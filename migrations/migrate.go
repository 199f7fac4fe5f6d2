// Package migrations embeds the SQL schemas of the datastore server
// (PostgreSQL) and of the client's local library index (SQLite) and applies
// them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

// MigratePostgres applies the datastore server schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, postgresDir)
}

// MigrateSQLite applies the local library index schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, sqliteDir)
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

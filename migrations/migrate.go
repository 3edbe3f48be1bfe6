package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings the schema of db up to date for the given driver name
// ("sqlite3" or "pgx"). Each driver has its own migration directory because
// the kv value column type differs between the dialects (BLOB vs BYTEA).
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dir := "sqlite"
	dialect := "sqlite3"
	if driver == "pgx" {
		dir = "postgres"
		dialect = "pgx"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
)

// Storages groups all storage-layer components into a single value that can
// be passed around the service layer. Currently it holds only the
// [ProfileStore]; additional stores can be added here as the feature set
// grows.
type Storages struct {
	// Profiles is the profile-and-session store over the key-value substrate.
	Profiles *ProfileStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the configured SQL backend (SQLite file by default, PostgreSQL
//     when cfg.Driver is "pgx"), creating a SQLite database file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [ProfileStore] over the key-value repository, seeded with
//     the standard demo profiles.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	db, err := connect(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueRepository(db, logger)

	return &Storages{
		Profiles: NewProfileStore(kv, SeedProfiles(), logger),
	}, nil
}

func connect(cfg config.Storage, logger *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(context.Background(), cfg, logger)
	default:
		return NewConnectSQLite(context.Background(), cfg, logger)
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AviMalewar/Vibe-app/internal/logger"
)

// kvRepository is the SQL-backed implementation of [KeyValue]. The same
// implementation serves both drivers; only connection setup differs.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type kvRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [KeyValue] backed by the provided
// database connection and logger.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValue {
	logger.Debug().Msg("creating key-value repository")
	return &kvRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the value stored under key, or [ErrKeyNotFound] if the key has
// never been set or has been removed.
func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	row := r.db.QueryRowContext(ctx, getValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		log.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to read key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertValue, key, value); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (r *kvRepository) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeValue, key); err != nil {
		log.Err(err).Str("func", "kvRepository.Remove").Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

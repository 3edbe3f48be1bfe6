package store

import (
	"context"
)

// KeyValue is the persistence substrate behind the profile store: a flat
// key-value namespace with byte-slice values. Implementations back it with
// SQLite, PostgreSQL, or process memory (tests).
//
// Get returns ErrKeyNotFound for absent keys. All other errors indicate an
// unavailable substrate and are treated by callers according to their own
// failure policy (the profile store reads fail-soft).
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify_NilAndForeignErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("not a pg error")))
}

func TestClassify_WrappedPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	err := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})

	assert.Equal(t, Retryable, c.Classify(err))
}

func TestClassifyPgError(t *testing.T) {
	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}
	for _, code := range retryable {
		assert.Equal(t, Retryable, ClassifyPgError(&pgconn.PgError{Code: code}), "code %s", code)
	}

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.SyntaxError,
		pgerrcode.UndefinedTable,
	}
	for _, code := range nonRetryable {
		assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: code}), "code %s", code)
	}
}

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetProfileIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ProfileIDCtxKey, "d09sm3kf")

	profileID, ok := GetProfileIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "d09sm3kf", profileID)
}

func TestGetProfileIDFromContext_Missing(t *testing.T) {
	_, ok := GetProfileIDFromContext(context.Background())

	assert.False(t, ok)
}

func TestGetProfileIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ProfileIDCtxKey, 42)

	_, ok := GetProfileIDFromContext(ctx)

	assert.False(t, ok)
}

func TestProfileIDGenerator_DistinctIDs(t *testing.T) {
	g := NewProfileIDGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.NotEmpty(t, id)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

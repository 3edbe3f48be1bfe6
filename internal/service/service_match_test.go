package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/models"
)

func newTestMatchService() (MatchService, *store.ProfileStore) {
	profiles := store.NewProfileStore(store.NewMemoryKeyValue(), store.SeedProfiles(), logger.Nop())
	return NewMatchService(profiles, logger.Nop()), profiles
}

func TestCompareGrid_ScoresSeedCandidates(t *testing.T) {
	svc, _ := newTestMatchService()

	grid, err := svc.CompareGrid(context.Background(), "1", []string{"2", "3"})
	require.NoError(t, err)

	assert.Equal(t, "1", grid.ReferenceID)
	require.Len(t, grid.Entries, 2)
	for _, entry := range grid.Entries {
		assert.GreaterOrEqual(t, entry.Score, 50)
		assert.LessOrEqual(t, entry.Score, 99)
	}
}

func TestCompareGrid_SelfComparisonScoresFull(t *testing.T) {
	svc, _ := newTestMatchService()

	grid, err := svc.CompareGrid(context.Background(), "1", []string{"1"})
	require.NoError(t, err)

	require.Len(t, grid.Entries, 1)
	assert.Equal(t, 100, grid.Entries[0].Score)
}

func TestCompareGrid_UnknownReference(t *testing.T) {
	svc, _ := newTestMatchService()

	_, err := svc.CompareGrid(context.Background(), "nope", []string{"1"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCompareGrid_SkipsUnknownCandidates(t *testing.T) {
	svc, _ := newTestMatchService()

	grid, err := svc.CompareGrid(context.Background(), "1", []string{"2", "vanished", "3"})
	require.NoError(t, err)

	require.Len(t, grid.Entries, 2)
	assert.Equal(t, "2", grid.Entries[0].ProfileID)
	assert.Equal(t, "3", grid.Entries[1].ProfileID)
}

func TestCompareGrid_IncludesUserRecords(t *testing.T) {
	svc, profiles := newTestMatchService()
	ctx := context.Background()

	newcomer := models.StudentProfile{
		ID:        "u1",
		Name:      "Riya",
		Branch:    "Computer Science",
		Lifestyle: models.NightOwl,
		Interests: []string{"AI"},
	}
	require.NoError(t, profiles.SaveProfile(ctx, newcomer))

	grid, err := svc.CompareGrid(ctx, "u1", []string{"1"})
	require.NoError(t, err)

	require.Len(t, grid.Entries, 1)
	// same branch and lifestyle as Alex Chen plus one shared interest
	assert.Equal(t, 85, grid.Entries[0].Score)
}

func TestAutoMatches_EmptyUntilPut(t *testing.T) {
	svc, _ := newTestMatchService()

	_, ok := svc.AutoMatches("u1")
	assert.False(t, ok)

	verdicts := []models.BatchMatchResult{
		{TargetProfileID: "2", VibeMatch: models.VibeMatch{Score: 77, VibeLabel: "Creative Sparks"}},
	}
	svc.PutAutoMatches("u1", verdicts)

	got, ok := svc.AutoMatches("u1")
	require.True(t, ok)
	assert.Equal(t, verdicts, got)
}

func TestPutAutoMatches_OverwritesPrevious(t *testing.T) {
	svc, _ := newTestMatchService()

	svc.PutAutoMatches("u1", []models.BatchMatchResult{{TargetProfileID: "2"}})
	svc.PutAutoMatches("u1", []models.BatchMatchResult{{TargetProfileID: "3"}})

	got, ok := svc.AutoMatches("u1")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].TargetProfileID)
}

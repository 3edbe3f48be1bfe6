package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/models"
)

// mockVibeService is a test implementation of service.VibeService with
// injectable behaviour per method.
type mockVibeService struct {
	analyzeBatchFunc func(ctx context.Context, profileID string) ([]models.BatchMatchResult, error)
}

func (m *mockVibeService) AnalyzeVibe(_ context.Context, _, _ string) (models.VibeMatch, error) {
	return models.VibeMatch{}, nil
}

func (m *mockVibeService) AnalyzeBatch(ctx context.Context, profileID string) ([]models.BatchMatchResult, error) {
	return m.analyzeBatchFunc(ctx, profileID)
}

// mockMatchService records PutAutoMatches calls.
type mockMatchService struct {
	mu     sync.Mutex
	stored map[string][]models.BatchMatchResult
}

func newMockMatchService() *mockMatchService {
	return &mockMatchService{stored: make(map[string][]models.BatchMatchResult)}
}

func (m *mockMatchService) CompareGrid(_ context.Context, _ string, _ []string) (models.CompareResponse, error) {
	return models.CompareResponse{}, nil
}

func (m *mockMatchService) PutAutoMatches(profileID string, results []models.BatchMatchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored[profileID] = results
}

func (m *mockMatchService) AutoMatches(profileID string) ([]models.BatchMatchResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	results, ok := m.stored[profileID]
	return results, ok
}

func TestWarmupWorker_StoresBatchVerdicts(t *testing.T) {
	verdicts := []models.BatchMatchResult{
		{TargetProfileID: "2", VibeMatch: models.VibeMatch{Score: 80}},
	}
	vibes := &mockVibeService{
		analyzeBatchFunc: func(_ context.Context, profileID string) ([]models.BatchMatchResult, error) {
			assert.Equal(t, "u1", profileID)
			return verdicts, nil
		},
	}
	matches := newMockMatchService()

	w := NewWarmupWorker(vibes, matches, 4, logger.Nop())
	w.Run()

	w.Enqueue("u1")
	w.Close()

	got, ok := matches.AutoMatches("u1")
	require.True(t, ok)
	assert.Equal(t, verdicts, got)
}

func TestWarmupWorker_FailedBatchIsDroppedNotRetried(t *testing.T) {
	calls := 0
	vibes := &mockVibeService{
		analyzeBatchFunc: func(_ context.Context, _ string) ([]models.BatchMatchResult, error) {
			calls++
			return nil, errors.New("oracle down")
		},
	}
	matches := newMockMatchService()

	w := NewWarmupWorker(vibes, matches, 4, logger.Nop())
	w.Run()

	w.Enqueue("u1")
	w.Close()

	assert.Equal(t, 1, calls)
	_, ok := matches.AutoMatches("u1")
	assert.False(t, ok, "failed warmup must not store verdicts")
}

func TestWarmupWorker_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	vibes := &mockVibeService{
		analyzeBatchFunc: func(_ context.Context, _ string) ([]models.BatchMatchResult, error) {
			return nil, nil
		},
	}

	// worker not running: the queue fills up and extra ids are dropped
	w := NewWarmupWorker(vibes, newMockMatchService(), 1, logger.Nop())

	w.Enqueue("u1")
	w.Enqueue("u2") // must return immediately
}

func TestWarmupWorker_ProcessesQueuedWorkBeforeClosing(t *testing.T) {
	processed := make([]string, 0, 3)
	var mu sync.Mutex
	vibes := &mockVibeService{
		analyzeBatchFunc: func(_ context.Context, profileID string) ([]models.BatchMatchResult, error) {
			mu.Lock()
			defer mu.Unlock()
			processed = append(processed, profileID)
			return []models.BatchMatchResult{}, nil
		},
	}

	w := NewWarmupWorker(vibes, newMockMatchService(), 8, logger.Nop())
	w.Run()

	w.Enqueue("u1")
	w.Enqueue("u2")
	w.Enqueue("u3")
	w.Close()

	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, processed)
}

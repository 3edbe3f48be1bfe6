package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/service"
)

// WarmupWorker pre-computes oracle auto-match verdicts for freshly registered
// profiles so the first "my matches" view is instant. Registration enqueues a
// profile id; the worker runs one batch analysis per id and hands the verdicts
// to the match cache.
//
// The analysis is fire-to-completion: once a batch call is issued it is not
// cancelled, and a failed batch is logged and dropped, never retried. The
// worker must not affect persisted store state.
type WarmupWorker struct {
	vibes   service.VibeService
	matches service.MatchService
	queue   chan string
	logger  *logger.Logger

	once sync.Once
	wg   sync.WaitGroup
}

// NewWarmupWorker constructs a warmup worker with a bounded queue of
// queueSize pending profile ids.
func NewWarmupWorker(vibes service.VibeService, matches service.MatchService, queueSize int, logger *logger.Logger) *WarmupWorker {
	if queueSize <= 0 {
		queueSize = 16
	}

	return &WarmupWorker{
		vibes:   vibes,
		matches: matches,
		queue:   make(chan string, queueSize),
		logger:  logger,
	}
}

// Enqueue schedules a profile for background analysis. Never blocks: when the
// queue is full the id is dropped, since the caller can always request the
// batch on demand later.
func (w *WarmupWorker) Enqueue(profileID string) {
	select {
	case w.queue <- profileID:
	default:
		w.logger.Warn().Str("profile_id", profileID).Msg("warmup queue full, profile skipped")
	}
}

// Run starts the consumer goroutine. Safe to call only once.
func (w *WarmupWorker) Run() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for profileID := range w.queue {
			w.process(profileID)
		}
	}()
}

// Close stops accepting new work and waits for in-flight analyses to finish.
func (w *WarmupWorker) Close() {
	w.once.Do(func() {
		close(w.queue)
	})
	w.wg.Wait()
}

func (w *WarmupWorker) process(profileID string) {
	results, err := w.vibes.AnalyzeBatch(context.Background(), profileID)
	if err != nil {
		event := w.logger.Warn()
		if errors.Is(err, oracle.ErrNotConfigured) {
			event = w.logger.Debug()
		}
		event.Err(err).Str("profile_id", profileID).Msg("auto-match warmup failed")
		return
	}

	w.matches.PutAutoMatches(profileID, results)
	w.logger.Info().
		Str("profile_id", profileID).
		Int("matches", len(results)).
		Msg("auto-match warmup completed")
}

package service

import (
	"context"
	"sync"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/models"
)

// matchService is the concrete implementation of [MatchService]. The grid is
// computed on every request from the merged profile population; auto-match
// verdicts live in a process-local cache that is never persisted.
type matchService struct {
	profiles *store.ProfileStore
	logger   *logger.Logger

	mu          sync.RWMutex
	autoMatches map[string][]models.BatchMatchResult
}

// NewMatchService constructs a [MatchService] over the given profile store.
func NewMatchService(profiles *store.ProfileStore, logger *logger.Logger) MatchService {
	return &matchService{
		profiles:    profiles,
		logger:      logger,
		autoMatches: make(map[string][]models.BatchMatchResult),
	}
}

// CompareGrid computes the heuristic score of each candidate against the
// reference profile. Both reference and candidates are resolved against the
// merged population (user records and seed set); unknown candidate ids are
// skipped rather than failing the grid, matching how the original grid simply
// had nothing to render for a vanished profile.
//
// Returns ErrProfileNotFound only when the reference id itself is unknown.
func (s *matchService) CompareGrid(ctx context.Context, referenceID string, candidateIDs []string) (models.CompareResponse, error) {
	byID := make(map[string]models.StudentProfile)
	for _, p := range s.profiles.ListProfiles(ctx) {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = p
		}
	}

	reference, ok := byID[referenceID]
	if !ok {
		return models.CompareResponse{}, ErrProfileNotFound
	}

	entries := make([]models.CompareEntry, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		candidate, ok := byID[id]
		if !ok {
			logger.FromContext(ctx).Debug().Str("id", id).Msg("unknown candidate skipped in comparison grid")
			continue
		}
		entries = append(entries, models.CompareEntry{
			ProfileID: candidate.ID,
			Score:     CompatibilityScore(reference, candidate),
		})
	}

	return models.CompareResponse{
		ReferenceID: reference.ID,
		Entries:     entries,
	}, nil
}

// PutAutoMatches implements [MatchService].
func (s *matchService) PutAutoMatches(profileID string, results []models.BatchMatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoMatches[profileID] = results
}

// AutoMatches implements [MatchService].
func (s *matchService) AutoMatches(profileID string) ([]models.BatchMatchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results, ok := s.autoMatches[profileID]
	return results, ok
}

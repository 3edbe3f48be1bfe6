package service

import (
	"context"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/models"
)

// vibeService resolves profile ids against the store and forwards them to the
// oracle. Oracle outcomes are returned to the caller as-is and never written
// back into the store.
type vibeService struct {
	profiles *store.ProfileStore
	oracle   oracle.VibeOracle
	logger   *logger.Logger
}

// NewVibeService constructs a [VibeService] over the given oracle adapter.
func NewVibeService(profiles *store.ProfileStore, vibeOracle oracle.VibeOracle, logger *logger.Logger) VibeService {
	return &vibeService{
		profiles: profiles,
		oracle:   vibeOracle,
		logger:   logger,
	}
}

// AnalyzeVibe resolves both profiles and requests a pair verdict.
func (s *vibeService) AnalyzeVibe(ctx context.Context, profileID, targetID string) (models.VibeMatch, error) {
	byID := s.population(ctx)

	reference, ok := byID[profileID]
	if !ok {
		return models.VibeMatch{}, ErrProfileNotFound
	}
	target, ok := byID[targetID]
	if !ok {
		return models.VibeMatch{}, ErrProfileNotFound
	}

	verdict, err := s.oracle.AnalyzeVibe(ctx, reference, target)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("profile_id", profileID).Str("target_id", targetID).
			Msg("pair vibe analysis failed")
		return models.VibeMatch{}, err
	}

	return verdict, nil
}

// AnalyzeBatch resolves the reference profile and requests one verdict per
// other profile in the population. With no one else around the oracle is not
// called and an empty result is returned.
func (s *vibeService) AnalyzeBatch(ctx context.Context, profileID string) ([]models.BatchMatchResult, error) {
	all := s.profiles.ListProfiles(ctx)

	var reference models.StudentProfile
	found := false
	existing := make([]models.StudentProfile, 0, len(all))
	for _, p := range all {
		if p.ID == profileID {
			if !found {
				reference = p
				found = true
			}
			continue
		}
		existing = append(existing, p)
	}
	if !found {
		return nil, ErrProfileNotFound
	}

	results, err := s.oracle.AnalyzeBatch(ctx, reference, existing)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("profile_id", profileID).
			Msg("batch vibe analysis failed")
		return nil, err
	}

	return results, nil
}

// population indexes the merged profile listing by id, first occurrence wins
// (the most recent save for a duplicated user record).
func (s *vibeService) population(ctx context.Context) map[string]models.StudentProfile {
	byID := make(map[string]models.StudentProfile)
	for _, p := range s.profiles.ListProfiles(ctx) {
		if _, seen := byID[p.ID]; !seen {
			byID[p.ID] = p
		}
	}
	return byID
}

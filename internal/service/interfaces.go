package service

import (
	"context"

	"github.com/AviMalewar/Vibe-app/models"
)

// ProfileService owns the profile lifecycle: registration, login, session
// management, listing, deletion, and the owner-gated reset. It also issues
// and parses the JWT tokens used by the oracle-backed routes.
type ProfileService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.StudentProfile, error)
	Login(ctx context.Context, req models.LoginRequest) (models.StudentProfile, error)
	Logout(ctx context.Context) error
	ActiveSession(ctx context.Context) (models.StudentProfile, error)
	ListProfiles(ctx context.Context) []models.StudentProfile
	DeleteProfile(ctx context.Context, id string) error
	ResetAll(ctx context.Context, credential string) (bool, error)
	VerifyOwner(credential string) bool

	CreateToken(ctx context.Context, profile models.StudentProfile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MatchService serves the instant, local comparison grid and caches the
// background auto-match verdicts. Scores are deterministic and involve no
// network call.
type MatchService interface {
	CompareGrid(ctx context.Context, referenceID string, candidateIDs []string) (models.CompareResponse, error)

	// PutAutoMatches stores the oracle's batch verdicts for a profile.
	// Cache only: never persisted, lost on restart.
	PutAutoMatches(profileID string, results []models.BatchMatchResult)

	// AutoMatches returns the cached batch verdicts for a profile, or
	// ok == false when the warmup has not completed (or never ran).
	AutoMatches(profileID string) ([]models.BatchMatchResult, bool)
}

// VibeService requests official verdicts from the external scoring oracle.
// Oracle outcomes never touch persisted store state.
type VibeService interface {
	AnalyzeVibe(ctx context.Context, profileID, targetID string) (models.VibeMatch, error)
	AnalyzeBatch(ctx context.Context, profileID string) ([]models.BatchMatchResult, error)
}

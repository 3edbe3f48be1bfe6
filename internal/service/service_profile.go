package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/internal/utils"
	"github.com/AviMalewar/Vibe-app/internal/validators"
	"github.com/AviMalewar/Vibe-app/models"
)

// profileService is the concrete implementation of [ProfileService].
// It validates inbound requests, shapes new profiles the way the original
// submission form did, and delegates persistence to the [store.ProfileStore].
type profileService struct {
	// profiles is the profile-and-session store.
	profiles *store.ProfileStore

	// validator checks inbound registration and login payloads.
	validator validators.Validator

	// idGenerator assigns opaque immutable ids to new profiles.
	idGenerator *utils.ProfileIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService] wired to the given store
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewProfileService(profiles *store.ProfileStore, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:      profiles,
		validator:     validators.NewProfileValidator(),
		idGenerator:   utils.NewProfileIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new profile from a submission form payload and makes it
// the active session.
//
// Shaping mirrors the original client form: the username defaults to the
// display name, the avatar is derived from the name, hobbies start as a copy
// of interests, the year defaults to "Freshman", and the music attribute
// lists start empty. The password is stored as supplied, in plain text — a
// deliberately preserved weakness of the original application.
//
// Returns the stored profile (including its assigned id) or
// ErrInvalidDataProvided if validation fails.
func (s *profileService) Register(ctx context.Context, req models.RegisterRequest) (models.StudentProfile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("invalid profile submission")
		return models.StudentProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile := models.StudentProfile{
		ID:              s.idGenerator.Generate(),
		Username:        req.Name, // display name acts as username
		Password:        req.Password,
		Name:            req.Name,
		Branch:          req.Branch,
		Year:            "Freshman",
		Bio:             req.Bio,
		Interests:       append([]string{}, req.Interests...),
		Hobbies:         append([]string{}, req.Interests...),
		MusicGenres:     []string{},
		FavoriteArtists: []string{},
		MovieGenres:     append([]string{}, req.MovieGenres...),
		Lifestyle:       req.Lifestyle,
		Avatar:          models.AvatarURL(req.Name),
	}

	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Str("id", profile.ID).Msg("profile creation ended with error")
		return models.StudentProfile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return profile, nil
}

// Login authenticates against the stored user records.
//
// Returns the full matched record (including password, per the original
// contract) or:
//   - ErrInvalidDataProvided if name or password is empty.
//   - ErrProfileNotFound on no match; the active session is left untouched.
func (s *profileService) Login(ctx context.Context, req models.LoginRequest) (models.StudentProfile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("invalid login data provided")
		return models.StudentProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := s.profiles.Login(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNoProfileFound) {
			return models.StudentProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("name", req.Name).Msg("login failed")
		return models.StudentProfile{}, fmt.Errorf("login failed: %w", err)
	}

	log.Debug().Str("id", profile.ID).Msg("profile successfully logged in")
	return profile, nil
}

// Logout clears the active session. Idempotent.
func (s *profileService) Logout(ctx context.Context) error {
	return s.profiles.Logout(ctx)
}

// ActiveSession resolves the persisted session pointer, returning
// ErrNoActiveSession when it is absent or stale.
func (s *profileService) ActiveSession(ctx context.Context) (models.StudentProfile, error) {
	profile, err := s.profiles.ActiveSession(ctx)
	if err != nil {
		return models.StudentProfile{}, ErrNoActiveSession
	}
	return profile, nil
}

// ListProfiles returns the merged population: sanitized user records followed
// by the seed set.
func (s *profileService) ListProfiles(ctx context.Context) []models.StudentProfile {
	return s.profiles.ListProfiles(ctx)
}

// DeleteProfile removes a user record. Idempotent; no credential check, per
// the original application's (intentionally asymmetric) access model.
func (s *profileService) DeleteProfile(ctx context.Context, id string) error {
	return s.profiles.DeleteProfile(ctx, id)
}

// ResetAll clears all user records and the session when credential matches
// the owner secret; reports false otherwise without touching state.
func (s *profileService) ResetAll(ctx context.Context, credential string) (bool, error) {
	return s.profiles.ResetAll(ctx, credential)
}

// VerifyOwner reports whether credential equals the owner secret.
func (s *profileService) VerifyOwner(credential string) bool {
	return s.profiles.VerifyOwner(credential)
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (s *profileService) CreateToken(ctx context.Context, profile models.StudentProfile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, profile.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (s *profileService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

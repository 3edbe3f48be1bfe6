// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/models"
)

// Logical keys of the persistence substrate. The owner credential is a fixed
// in-code constant and is never persisted.
const (
	profilesKey = "profiles"
	sessionKey  = "session"

	ownerCredential = "wibe-admin"
)

// ProfileStore is the single source of truth for which profiles exist and who
// is logged in. User-created records and the active-session pointer live in
// the injected [KeyValue] substrate; the seed profiles are static
// configuration, always appended after user records and never persisted.
//
// Read policy is fail-soft: missing or corrupt persisted data is treated as
// empty and never surfaced to callers as an error. Only substrate write
// failures propagate.
type ProfileStore struct {
	kv     KeyValue
	seed   []models.StudentProfile
	logger *logger.Logger
}

// NewProfileStore constructs a ProfileStore over the given substrate with the
// given seed set. Pass [SeedProfiles]() for the standard demo content.
func NewProfileStore(kv KeyValue, seed []models.StudentProfile, logger *logger.Logger) *ProfileStore {
	logger.Debug().Int("seed", len(seed)).Msg("creating profile store")
	return &ProfileStore{
		kv:     kv,
		seed:   seed,
		logger: logger,
	}
}

// userRecords loads the persisted user-created profiles. Missing key, corrupt
// JSON, and substrate read failures all collapse to an empty slice.
func (s *ProfileStore) userRecords(ctx context.Context) []models.StudentProfile {
	raw, err := s.kv.Get(ctx, profilesKey)
	if err != nil {
		return nil
	}

	var records []models.StudentProfile
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("corrupt profile data treated as empty")
		return nil
	}

	return records
}

func (s *ProfileStore) writeUserRecords(ctx context.Context, records []models.StudentProfile) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding profiles: %w", err)
	}

	if err := s.kv.Set(ctx, profilesKey, raw); err != nil {
		return fmt.Errorf("error persisting profiles: %w", err)
	}

	return nil
}

// ListProfiles returns every known profile: user-created records in stored
// order (most recent first) followed by the seed set in configuration order.
// Passwords are stripped from every record; a user record whose id collides
// with a seed id is dropped (seed wins). Deterministic given the persisted
// bytes.
func (s *ProfileStore) ListProfiles(ctx context.Context) []models.StudentProfile {
	records := s.userRecords(ctx)

	seedIDs := make(map[string]struct{}, len(s.seed))
	for _, p := range s.seed {
		seedIDs[p.ID] = struct{}{}
	}

	out := make([]models.StudentProfile, 0, len(records)+len(s.seed))
	for _, p := range records {
		if _, collides := seedIDs[p.ID]; collides {
			continue
		}
		p.Normalize()
		out = append(out, p.Sanitized())
	}

	for _, p := range s.seed {
		p.Normalize()
		out = append(out, p.Sanitized())
	}

	return out
}

// SaveProfile prepends profile to the persisted user records and makes it the
// active session. There is no dedup by id: resubmitting the same profile
// creates a duplicate entry.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile models.StudentProfile) error {
	records := s.userRecords(ctx)
	updated := append([]models.StudentProfile{profile}, records...)

	if err := s.writeUserRecords(ctx, updated); err != nil {
		return err
	}

	if err := s.kv.Set(ctx, sessionKey, []byte(profile.ID)); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}

	return nil
}

// Login finds the first user record matching the supplied credentials and
// makes it the active session. Seed profiles are never login targets.
//
// The match predicate reproduces the original application exactly: name
// matches either the username or the display name, and the secret matches
// either the password or, as a legacy compatibility branch, the profile's
// branch field (early versions of the client used branch as the password).
//
// Returns the full record including the password, or [ErrNoProfileFound] on
// no match or corrupt data. The session is left untouched on failure.
func (s *ProfileStore) Login(ctx context.Context, name, password string) (models.StudentProfile, error) {
	for _, p := range s.userRecords(ctx) {
		nameMatches := p.Username == name || p.Name == name
		secretMatches := p.Password == password || p.Branch == password
		if nameMatches && secretMatches {
			if err := s.kv.Set(ctx, sessionKey, []byte(p.ID)); err != nil {
				return models.StudentProfile{}, fmt.Errorf("error persisting session: %w", err)
			}
			p.Normalize()
			return p, nil
		}
	}

	return models.StudentProfile{}, ErrNoProfileFound
}

// ActiveSession resolves the persisted session pointer to a full user record.
// A seed profile can never be an active session. Returns [ErrNoActiveSession]
// when the pointer is absent or stale (the record was deleted).
func (s *ProfileStore) ActiveSession(ctx context.Context) (models.StudentProfile, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil || len(raw) == 0 {
		return models.StudentProfile{}, ErrNoActiveSession
	}

	id := string(raw)
	for _, p := range s.userRecords(ctx) {
		if p.ID == id {
			p.Normalize()
			return p, nil
		}
	}

	return models.StudentProfile{}, ErrNoActiveSession
}

// Logout clears the active session. Idempotent.
func (s *ProfileStore) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// DeleteProfile removes the user record with the given id; if it was the
// active session the session is cleared too. Deleting a nonexistent id is a
// no-op. Deliberately ungated: the original application exposes deletion
// without a credential check while gating only the full reset.
func (s *ProfileStore) DeleteProfile(ctx context.Context, id string) error {
	records := s.userRecords(ctx)
	if records == nil {
		return nil
	}

	updated := make([]models.StudentProfile, 0, len(records))
	for _, p := range records {
		if p.ID != id {
			updated = append(updated, p)
		}
	}

	if err := s.writeUserRecords(ctx, updated); err != nil {
		return err
	}

	raw, err := s.kv.Get(ctx, sessionKey)
	if err == nil && string(raw) == id {
		if err := s.kv.Remove(ctx, sessionKey); err != nil {
			return fmt.Errorf("error clearing session: %w", err)
		}
	}

	return nil
}

// ResetAll clears both persisted slots when credential equals the fixed owner
// secret. With a wrong credential it reports false and leaves all state
// untouched. This is the only gated operation in the store.
func (s *ProfileStore) ResetAll(ctx context.Context, credential string) (bool, error) {
	if !s.VerifyOwner(credential) {
		return false, nil
	}

	if err := s.kv.Remove(ctx, profilesKey); err != nil {
		return false, fmt.Errorf("error clearing profiles: %w", err)
	}
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return false, fmt.Errorf("error clearing session: %w", err)
	}

	return true, nil
}

// VerifyOwner reports whether credential equals the fixed owner secret.
// Pure check, no side effects.
func (s *ProfileStore) VerifyOwner(credential string) bool {
	return credential == ownerCredential
}

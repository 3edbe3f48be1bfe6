// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package models

// VibeMatch is the structured verdict the external scoring oracle returns for
// a pair of profiles. It is transient: never persisted, recomputed on demand.
type VibeMatch struct {
	// Score is the oracle's compatibility number in [0, 100].
	Score int `json:"score"`

	// Reasoning is a short free-text explanation of the score.
	Reasoning string `json:"reasoning"`

	// CommonGround lists the attributes the oracle found shared.
	CommonGround []string `json:"commonGround"`

	// SuggestedActivity is one concrete thing the pair could do together.
	SuggestedActivity string `json:"suggestedActivity"`

	// VibeLabel is the oracle's tier label, e.g. "Same Vibe 🔥".
	VibeLabel string `json:"vibeLabel"`
}

// BatchMatchResult is one entry of the oracle's batch response: a VibeMatch
// tagged with the profile it was computed against.
type BatchMatchResult struct {
	VibeMatch

	// TargetProfileID identifies the existing profile this verdict refers to.
	TargetProfileID string `json:"targetProfileId"`
}

// CompareEntry is one cell of the local side-by-side comparison grid: the
// deterministic heuristic score of a candidate against the reference profile.
// Unlike VibeMatch it involves no network call and the two may legitimately
// disagree.
type CompareEntry struct {
	// ProfileID identifies the candidate profile.
	ProfileID string `json:"profileId"`

	// Score is the heuristic pseudo-score in [0, 100].
	Score int `json:"score"`
}

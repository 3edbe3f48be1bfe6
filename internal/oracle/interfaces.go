// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

// Package oracle provides the adapter for the external generative scoring
// service ("the oracle") that produces official vibe verdicts for profile
// pairs.
//
// The primary abstraction is [VibeOracle], which decouples the service layer
// from the underlying API. The package ships a Gemini-style REST
// implementation ([NewGeminiOracle]) built on resty.
//
// The oracle is a consumed interface only: calls may be slow, may fail, are
// never retried automatically, and are fire-to-completion once issued. Oracle
// outcomes must never influence persisted store state; error values defined
// in errors.go let callers distinguish transport failures from malformed
// verdicts with [errors.Is].
package oracle

import (
	"context"

	"github.com/AviMalewar/Vibe-app/models"
)

// VibeOracle scores profile pairs through the external generative API.
type VibeOracle interface {
	// AnalyzeVibe compares two profiles and returns the oracle's verdict.
	// A single attempt is made, bounded by ctx and the configured timeout.
	AnalyzeVibe(ctx context.Context, a, b models.StudentProfile) (models.VibeMatch, error)

	// AnalyzeBatch compares newProfile against every profile in existing and
	// returns one verdict per entry, tagged with the target profile id. An
	// empty existing list short-circuits to an empty result without a call.
	AnalyzeBatch(ctx context.Context, newProfile models.StudentProfile, existing []models.StudentProfile) ([]models.BatchMatchResult, error)
}

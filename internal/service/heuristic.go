// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package service

import "github.com/AviMalewar/Vibe-app/models"

// Score bounds of the compatibility heuristic. Only an exact self-comparison
// reaches selfScore; every other pair is clamped below it.
const (
	baseScore      = 50
	branchBonus    = 15
	lifestyleBonus = 15
	interestBonus  = 5
	maxPairScore   = 99
	selfScore      = 100
)

// CompatibilityScore computes the deterministic local pseudo-score of
// candidate against reference, in [0, 100]. It is the instant number shown in
// the side-by-side comparison grid and is entirely independent of the
// external oracle's verdict; the two may legitimately disagree.
//
// The score is not symmetric: the interest bonus counts entries of
// reference.Interests found in candidate.Interests, so a duplicate interest
// on the reference side counts every time it matches. This asymmetry is part
// of the contract, not an accident.
func CompatibilityScore(reference, candidate models.StudentProfile) int {
	if reference.ID == candidate.ID {
		return selfScore
	}

	score := baseScore
	if reference.Branch == candidate.Branch {
		score += branchBonus
	}
	if reference.Lifestyle == candidate.Lifestyle {
		score += lifestyleBonus
	}

	candidateInterests := make(map[string]struct{}, len(candidate.Interests))
	for _, interest := range candidate.Interests {
		candidateInterests[interest] = struct{}{}
	}
	for _, interest := range reference.Interests {
		if _, shared := candidateInterests[interest]; shared {
			score += interestBonus
		}
	}

	if score > maxPairScore {
		score = maxPairScore
	}

	return score
}

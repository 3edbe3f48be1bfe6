package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/service"
	"github.com/AviMalewar/Vibe-app/internal/utils"
	"github.com/AviMalewar/Vibe-app/models"
)

// analyzeVibe requests an official pair verdict from the oracle. The reference
// profile is the authenticated one; a profileId in the body is ignored unless
// it matches the token, which keeps callers from spending oracle quota on
// someone else's behalf.
func (h *Handler) analyzeVibe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.VibeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.ProfileID != "" && req.ProfileID != profileID {
		http.Error(w, "profileId does not match the authenticated profile", http.StatusForbidden)
		return
	}
	if req.TargetID == "" {
		http.Error(w, "targetId is required", http.StatusBadRequest)
		return
	}

	verdict, err := h.services.VibeService.AnalyzeVibe(ctx, profileID, req.TargetID)
	if err != nil {
		h.writeOracleError(w, r, err)
		return
	}

	utils.WriteJSON(w, verdict, http.StatusOK)
}

// scheduleAutoMatches enqueues the authenticated profile for background batch
// analysis and returns immediately. Results become available on
// GET /api/matches/auto once the warmup completes.
func (h *Handler) scheduleAutoMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if h.warmup == nil {
		http.Error(w, "auto-match analysis is not available", http.StatusServiceUnavailable)
		return
	}

	h.warmup.Enqueue(profileID)
	w.WriteHeader(http.StatusAccepted)
}

// autoMatches returns the cached batch verdicts for the authenticated profile.
// Responds 204 while the warmup has not completed (or never ran).
func (h *Handler) autoMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, ok := utils.GetProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	results, ready := h.services.MatchService.AutoMatches(profileID)
	if !ready {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) writeOracleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		log.Debug().Err(err).Msg("vibe analysis on unknown profile")
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, oracle.ErrNotConfigured):
		log.Warn().Err(err).Msg("oracle is not configured")
		http.Error(w, "vibe analysis is not available", http.StatusServiceUnavailable)
	case errors.Is(err, oracle.ErrMalformedVerdict):
		log.Err(err).Msg("oracle returned a malformed verdict")
		http.Error(w, "oracle returned a malformed verdict", http.StatusBadGateway)
	case errors.Is(err, oracle.ErrOracleUnavailable):
		log.Err(err).Msg("oracle call failed")
		http.Error(w, "oracle is unavailable", http.StatusBadGateway)
	default:
		log.Err(err).Msg("unexpected error occurred during vibe analysis")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/service"
	"github.com/AviMalewar/Vibe-app/internal/utils"
)

// compare serves the instant comparison grid: deterministic heuristic scores
// of the "with" candidates against the "ref" profile. No oracle involved.
//
//	GET /api/compare?ref=<id>&with=<id>,<id>,...
//
// When "with" is omitted, every other profile in the population is scored.
func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	referenceID := r.URL.Query().Get("ref")
	if referenceID == "" {
		http.Error(w, "query parameter `ref` is required", http.StatusBadRequest)
		return
	}

	var candidateIDs []string
	if with := r.URL.Query().Get("with"); with != "" {
		for _, id := range strings.Split(with, ",") {
			if id = strings.TrimSpace(id); id != "" {
				candidateIDs = append(candidateIDs, id)
			}
		}
	} else {
		for _, p := range h.services.ProfileService.ListProfiles(ctx) {
			if p.ID != referenceID {
				candidateIDs = append(candidateIDs, p.ID)
			}
		}
	}

	grid, err := h.services.MatchService.CompareGrid(ctx, referenceID, candidateIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			log.Debug().Str("ref", referenceID).Msg("unknown reference profile")
			http.Error(w, "reference profile not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred building comparison grid")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, grid, http.StatusOK)
}

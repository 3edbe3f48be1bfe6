package http

import (
	"encoding/json"
	"net/http"

	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/utils"
	"github.com/AviMalewar/Vibe-app/models"
)

// resetAll wipes every user record and the active session, but only when the
// supplied credential matches the owner credential. A wrong credential is not
// an error: it reports ok=false and leaves the store untouched.
func (h *Handler) resetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ok, err := h.services.ProfileService.ResetAll(ctx, req.Credential)
	if err != nil {
		log.Err(err).Msg("store reset failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if ok {
		log.Info().Msg("store reset by owner")
	} else {
		log.Warn().Msg("store reset refused: wrong owner credential")
	}

	utils.WriteJSON(w, models.OwnerResponse{OK: ok}, http.StatusOK)
}

func (h *Handler) verifyOwner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ok := h.services.ProfileService.VerifyOwner(req.Credential)

	utils.WriteJSON(w, models.OwnerResponse{OK: ok}, http.StatusOK)
}

package http

import (
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/service"
)

// MatchWarmup schedules a profile for background auto-match analysis.
// Implemented by the warmup worker; a nil value disables warmup scheduling.
type MatchWarmup interface {
	Enqueue(profileID string)
}

type Handler struct {
	services *service.Services
	warmup   MatchWarmup

	logger *logger.Logger
}

func NewHandler(services *service.Services, warmup MatchWarmup, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		warmup:   warmup,
		logger:   logger,
	}
}

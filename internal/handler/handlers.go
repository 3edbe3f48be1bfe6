package handler

import (
	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/handler/http"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, warmup http.MatchWarmup, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, warmup, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package service

import (
	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/store"
)

type Services struct {
	ProfileService ProfileService
	MatchService   MatchService
	VibeService    VibeService
}

func NewServices(storages *store.Storages, vibeOracle oracle.VibeOracle, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		ProfileService: NewProfileService(storages.Profiles, cfg.App, logger),
		MatchService:   NewMatchService(storages.Profiles, logger),
		VibeService:    NewVibeService(storages.Profiles, vibeOracle, logger),
	}
}

package workers

import (
	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/service"
)

type Workers struct {
	workers []Worker

	// Warmup is exported so handlers can enqueue freshly registered
	// profiles for background auto-match analysis.
	Warmup *WarmupWorker
}

func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	warmup := NewWarmupWorker(services.VibeService, services.MatchService, cfg.WarmupQueueSize, logger)

	return &Workers{
		workers: []Worker{warmup},
		Warmup:  warmup,
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

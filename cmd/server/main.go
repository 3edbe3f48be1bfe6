package main

import (
	"fmt"

	"github.com/AviMalewar/Vibe-app/internal/config"
	"github.com/AviMalewar/Vibe-app/internal/handler"
	"github.com/AviMalewar/Vibe-app/internal/logger"
	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/server"
	"github.com/AviMalewar/Vibe-app/internal/service"
	"github.com/AviMalewar/Vibe-app/internal/store"
	"github.com/AviMalewar/Vibe-app/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vibe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	vibeOracle := oracle.NewGeminiOracle(cfg.Oracle, log)

	services := service.NewServices(storages, vibeOracle, *cfg, log)

	background := workers.NewWorkers(services, cfg.Workers, log)

	handlers, err := handler.NewHandlers(services, background.Warmup, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background.Run()
	srv.RunServer()

	// the server has stopped accepting requests; let in-flight warmup
	// analyses finish before exiting
	background.Warmup.Close()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

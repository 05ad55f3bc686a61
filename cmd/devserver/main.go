package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/handler"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/server"
	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kessan-devserver")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(
		workers.NewStagingSweeper(storages.Uploads, cfg.CleanupInterval, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
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

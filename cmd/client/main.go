package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/kessan-converter/internal/adapter"
	"github.com/MKhiriev/kessan-converter/internal/client"
	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/internal/tui"
	"github.com/MKhiriev/kessan-converter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("kessan-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	converterAdapter, err := adapter.NewHTTPConverterAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create converter adapter")
	}

	storages := store.NewClientStorages(cfg.Storage, log)
	services := service.NewClientServices(storages, converterAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.App, os.Stdout, os.Stderr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		if !errors.Is(err, client.ErrConversionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
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

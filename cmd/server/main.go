package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/handler"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/server"
	"github.com/MKhiriev/go-upload-keeper/internal/service"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/internal/workers"
	"github.com/MKhiriev/go-upload-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-upload-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("api_version", cfg.App.APIVersion).
		Str("uploads_dir", cfg.Storage.Uploads.Dir).
		Dur("cleanup_timeout", cfg.Storage.Uploads.CleanupTimeout).
		Bool("internal_route", cfg.App.InternalKey != "").
		Msg("received configs")

	m, err := metrics.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, m, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

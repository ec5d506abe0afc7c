package main

import (
	"context"
	"fmt"

	"github.com/salamaline/salama/internal/adapter"
	"github.com/salamaline/salama/internal/config"
	handlerhttp "github.com/salamaline/salama/internal/handler/http"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/server"
	"github.com/salamaline/salama/internal/service"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("salama-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// config is never logged in full: it carries the summarizer API key
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Int("retention_days", cfg.Retention.Days).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	summarizer := adapter.NewSummarizer(cfg.Summarizer, log)

	services, err := service.NewServices(*storages, summarizer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, services, cfg.Retention, log).Run()

	srv.RunServer()
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

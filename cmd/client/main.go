package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avelichko/spellsync/internal/adapter"
	"github.com/avelichko/spellsync/internal/client"
	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/service"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("spellsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewHTTPRemoteService(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	hub := telemetry.NewHub(log)
	connectivity := client.NewConnectivityMonitor(remote, log)

	services, err := service.NewClientServices(cfg, storages, remote, hub, connectivity, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, connectivity, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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

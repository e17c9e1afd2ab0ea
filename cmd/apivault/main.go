package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/merge"
	"github.com/apivault/apivault/internal/runner"
	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("apivault-client")
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing local database")
		}
	}()

	app := &app{
		sync:      service.NewSyncService(storages, merge.New(storages, log), log),
		workspace: service.NewWorkspaceService(storages, log),
		runner:    runner.New(cfg.App.RequestTimeout.Std(), log),
		logger:    log,
	}

	if err := app.sync.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore sync provider")
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
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

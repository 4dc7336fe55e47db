package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shahparag-spring2021/webapp/internal/adapter"
	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/crypto"
	"github.com/shahparag-spring2021/webapp/internal/handler"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/server"
	"github.com/shahparag-spring2021/webapp/internal/service"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/internal/workers"
	"github.com/shahparag-spring2021/webapp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("webapp-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	publisher, err := adapter.NewPublisher(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notification publisher")
	}
	if closer, ok := publisher.(io.Closer); ok {
		defer closer.Close()
	}

	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, publisher, hasher, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
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

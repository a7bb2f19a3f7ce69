// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/study-spots/internal/cache"
	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/handler"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/metrics"
	"github.com/MKhiriev/study-spots/internal/server"
	"github.com/MKhiriev/study-spots/internal/service"
	"github.com/MKhiriev/study-spots/internal/store"
	"github.com/MKhiriev/study-spots/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("study-spots-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()

	var repo store.SpotRepository = storages.SpotRepository
	if cfg.Storage.Cache.RedisAddress != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Storage.Cache)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, list cache disabled")
		} else {
			defer redisClient.Close()
			repo = cache.NewCachedSpotRepository(repo, redisClient, cfg.Storage.Cache.TTL, m, log)
		}
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(repo, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = models.BuildInfoUnknown
	}
	if buildDate == "" {
		buildDate = models.BuildInfoUnknown
	}
	if buildCommit == "" {
		buildCommit = models.BuildInfoUnknown
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

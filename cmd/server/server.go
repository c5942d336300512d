package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/infrastructure/crontab"
	"brandforge/services/content-api/internal/infrastructure/logger"
	"brandforge/services/content-api/internal/infrastructure/observability"
	"brandforge/services/content-api/internal/interfaces/httpserver"

	_ "net/http/pprof"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
	config     *config.Config
}

// @title BrandForge Content API
// @version 1.0
// @description Multi-provider content generation service: fans one prompt out
// @description to every configured LLM backend, scores the candidates and
// @description returns the best version.
// @BasePath /
func (application *Application) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var eg errgroup.Group

	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", application.config.MetricsPort), mux)
		if err != nil {
			cancel()
		}
		return err
	})

	if application.config.PprofEnabled {
		eg.Go(func() error {
			err := http.ListenAndServe(fmt.Sprintf("localhost:%d", application.config.PprofPort), nil)
			if err != nil {
				cancel()
			}
			return err
		})
	}

	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})

	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	configuredLog, err := logger.Init(application.config.LogLevel, application.config.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("configure logger")
	}
	log = configuredLog

	otelShutdown, err := observability.Setup(ctx, application.config, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	log.Info().
		Int("http_port", application.config.HTTPPort).
		Int("metrics_port", application.config.MetricsPort).
		Str("version", config.Version).
		Msg("starting content-api")

	application.Start()
}

// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/musictrends/docs" // Register swagger docs
	"github.com/tomtom215/musictrends/internal/analytics"
	"github.com/tomtom215/musictrends/internal/api"
	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/errreport"
	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/metrics"
	"github.com/tomtom215/musictrends/internal/supervisor"
	"github.com/tomtom215/musictrends/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = api.DefaultVersion

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("jiosaavn_url", cfg.Connector.BaseURL).
		Int("trending_seeds", len(cfg.Connector.TrendingSeeds)).
		Msg("Starting Musictrends")

	if err := errreport.Init(errreport.Config{
		DSN:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          "musictrends@" + version,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	}); err != nil {
		// Reporting is optional; the service runs without it.
		logging.Error().Err(err).Msg("Failed to initialize error reporting")
	}
	defer errreport.Flush(2 * time.Second)

	metrics.SetAppInfo(version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handle := initConnector(ctx, cfg)
	defer handle.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := newHTTPServer(cfg, handle)
	tree.AddConnectorService(services.NewConnectorMonitor(handle, cfg.Connector.MonitorInterval, cfg.Connector.ProbeTimeout))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if err := runTree(ctx, tree); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
		stop()
		errreport.Flush(2 * time.Second)
		handle.Close()
		os.Exit(1)
	}

	logging.Info().Msg("Application stopped gracefully")
}

// initConnector builds the upstream client behind its circuit breaker,
// probes it and marks the handle ready. An unreachable upstream is logged
// but does not prevent startup.
func initConnector(ctx context.Context, cfg *config.Config) *connector.Handle {
	handle := connector.NewHandle()
	client := connector.NewClient(&cfg.Connector)
	source := connector.NewBreaker(connector.DefaultBreakerName, client)

	probeCtx, cancel := context.WithTimeout(ctx, cfg.Connector.ProbeTimeout)
	defer cancel()
	if source.IsReachable(probeCtx) {
		logging.Info().Str("url", cfg.Connector.BaseURL).Msg("Music catalog reachable")
	} else {
		logging.Warn().Str("url", cfg.Connector.BaseURL).Msg("Music catalog unreachable at startup, continuing")
	}

	if err := handle.Ready(source); err != nil {
		handle.Fail(err)
		logging.Error().Err(err).Msg("Failed to initialize connector")
	}
	return handle
}

// newHTTPServer wires the API router into an http.Server.
func newHTTPServer(cfg *config.Config, handle *connector.Handle) *http.Server {
	assembler := analytics.NewAssembler(version)
	handler := api.NewHandler(handle, assembler, cfg, version)
	router := api.NewRouter(handler, cfg.Security)

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// runTree serves the supervisor tree until ctx is canceled and reports
// services that did not stop in time.
func runTree(ctx context.Context, tree *supervisor.SupervisorTree) error {
	logging.Info().Msg("Starting supervisor tree...")
	err := tree.Serve(ctx)
	if ctx.Err() != nil {
		logging.Info().Msg("Received shutdown signal")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && ctx.Err() == nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/handler"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/server"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/tracker"
	"github.com/MKhiriev/go-job-tracker/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("job-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	storages := store.NewStorages(db, log)

	counters, closeCounters, err := newCounterStore(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating counter store")
	}
	defer closeCounters()

	usageTracker := tracker.NewTracker(counters, storages.Usage, storages.Alerts, tracker.MergeLimits(cfg.Tracker.Services), log)

	integrations, err := newIntegrations(ctx, cfg.Integrations, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating integrations")
	}

	services, err := service.NewServices(storages, usageTracker, integrations, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var syncer workers.HealthSyncer
	if handlers.GRPC != nil {
		syncer = handlers.GRPC
	}
	jobs, err := workers.NewWorkers(cfg.Workers, storages.Usage, syncer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// newCounterStore returns the shared Redis store when a URL is configured and
// the process-local store otherwise.
func newCounterStore(ctx context.Context, cfg config.Redis, log *logger.Logger) (tracker.CounterStore, func(), error) {
	if cfg.URL == "" {
		log.Info().Msg("using in-memory quota counters")
		return tracker.NewMemoryCounterStore(), func() {}, nil
	}

	client, err := tracker.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Msg("using redis quota counters")
	return tracker.NewRedisCounterStore(client, cfg.Prefix), func() { _ = client.Close() }, nil
}

func newIntegrations(ctx context.Context, cfg config.Integrations, log *logger.Logger) (service.Integrations, error) {
	integrations := service.Integrations{
		GitHub:     adapter.NewGitHubAdapter(cfg.GitHub, cfg, log),
		BLS:        adapter.NewBLSAdapter(cfg.BLS, cfg, log),
		Eventbrite: adapter.NewEventbriteAdapter(cfg.Eventbrite, cfg, log),
	}

	generator, err := adapter.NewGeminiGenerator(ctx, cfg.Gemini, log)
	switch {
	case errors.Is(err, adapter.ErrNotConfigured):
		log.Warn().Msg("gemini is not configured, cover letters fall back to the template")
	case err != nil:
		return service.Integrations{}, err
	default:
		integrations.Generator = generator
	}

	return integrations, nil
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

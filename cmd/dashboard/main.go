package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/tui"
)

const defaultLogFile = "dashboard.log"

func main() {
	cfg, err := config.GetDashboardConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	logFile := cfg.Dashboard.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	log := logger.NewFileLogger("job-tracker-dashboard", logFile)
	if cfg.App.LogLevel != "" {
		logger.SetLevel(cfg.App.LogLevel)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Dashboard.ServerAddress, cfg.Integrations.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ui, err := tui.New(serverAdapter, cfg.Dashboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dashboard")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = ui.Run(ctx); err != nil {
		log.Error().Err(err).Msg("dashboard stopped with error")
		fmt.Fprintln(os.Stderr, err)
	}
}

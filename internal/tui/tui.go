// Package tui is the terminal dashboard of the job tracker. It polls the
// usage endpoints of a running server and renders per-service quota
// utilization and unacknowledged alerts.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

var ErrTokenIsEmpty = errors.New("dashboard token is empty")

type TUI struct {
	server adapter.ServerAdapter
	cfg    config.Dashboard

	logger *logger.Logger
}

func New(server adapter.ServerAdapter, cfg config.Dashboard, logger *logger.Logger) (*TUI, error) {
	if cfg.Token == "" {
		return nil, ErrTokenIsEmpty
	}
	server.SetToken(cfg.Token)

	return &TUI{server: server, cfg: cfg, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.server, t.cfg.RefreshInterval, t.logger)
	model.copy = clipboard.WriteAll

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("dashboard run: %w", err)
	}
	return nil
}

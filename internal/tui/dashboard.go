package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	defaultRefreshInterval = 10 * time.Second
	maxAlertsShown         = 5
)

type dashboardModel struct {
	ctx      context.Context
	server   adapter.ServerAdapter
	interval time.Duration
	copy     func(string) error

	table    table.Model
	statuses []models.QuotaStatus
	alerts   []models.Alert

	loading     bool
	status      string
	errMsg      string
	lastUpdated time.Time

	logger *logger.Logger
}

func newDashboardModel(ctx context.Context, server adapter.ServerAdapter, interval time.Duration, logger *logger.Logger) dashboardModel {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Service", Width: 12},
			{Title: "Minute", Width: 16},
			{Title: "Hour", Width: 16},
			{Title: "Day", Width: 18},
			{Title: "State", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	return dashboardModel{
		ctx:      ctx,
		server:   server,
		interval: interval,
		copy:     func(string) error { return nil },
		table:    t,
		loading:  true,
		logger:   logger,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.cmdTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("refresh failed: %v", msg.err)
			m.logger.Err(msg.err).Msg("dashboard refresh failed")
			return m, nil
		}
		m.errMsg = ""
		m.statuses = msg.statuses
		m.alerts = msg.alerts
		m.lastUpdated = msg.at
		m.table.SetRows(rows(msg.statuses))
		return m, nil

	case tickMsg:
		if m.loading {
			return m, m.cmdTick()
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.cmdTick())

	case alertAcknowledgedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("acknowledge failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("alert #%d acknowledged", msg.alert.ID)
		m.loading = true
		return m, m.cmdLoad()

	case serviceResetMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("reset failed: %v", msg.err)
			return m, nil
		}
		m.status = msg.service + " counters reset"
		m.loading = true
		return m, m.cmdLoad()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()

	case key.Matches(msg, keys.copy):
		selected, ok := m.selected()
		if !ok {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := m.copy(summary(selected)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "copied " + selected.Service

	case key.Matches(msg, keys.acknowledge):
		if len(m.alerts) == 0 {
			m.status = "no alerts to acknowledge"
			return m, nil
		}
		return m, m.cmdAcknowledge(m.alerts[0].ID)

	case key.Matches(msg, keys.reset):
		selected, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdReset(selected.Service)

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("API usage"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Unacknowledged alerts"))
	b.WriteString("\n")
	if len(m.alerts) == 0 {
		b.WriteString("  -\n")
	}
	for i, a := range m.alerts {
		if i == maxAlertsShown {
			b.WriteString(fmt.Sprintf("  ... %d more\n", len(m.alerts)-maxAlertsShown))
			break
		}
		b.WriteString("  ")
		b.WriteString(alertLine(a))
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.loading:
		b.WriteString("loading...")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	case !m.lastUpdated.IsZero():
		b.WriteString("updated " + m.lastUpdated.Format(time.TimeOnly))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: select  r: refresh  c: copy  a: acknowledge  x: reset  q: quit"))

	return appStyle.Render(b.String())
}

func (m dashboardModel) selected() (models.QuotaStatus, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.statuses) {
		return models.QuotaStatus{}, false
	}
	return m.statuses[idx], true
}

func rows(statuses []models.QuotaStatus) []table.Row {
	out := make([]table.Row, 0, len(statuses))
	for _, s := range statuses {
		row := table.Row{s.Service}
		for _, w := range models.Windows {
			q, ok := windowOf(s, w)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, windowCell(q))
		}
		out = append(out, append(row, stateCell(s)))
	}
	return out
}

// cmdLoad fetches quota statuses and unacknowledged alerts concurrently.
func (m dashboardModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		var (
			statuses []models.QuotaStatus
			alerts   []models.Alert
		)

		g, ctx := errgroup.WithContext(m.ctx)
		g.Go(func() (err error) {
			statuses, err = m.server.QuotaStatuses(ctx)
			return err
		})
		g.Go(func() (err error) {
			alerts, err = m.server.Alerts(ctx, true)
			return err
		})
		if err := g.Wait(); err != nil {
			return dataLoadedMsg{err: err}
		}

		return dataLoadedMsg{statuses: statuses, alerts: alerts, at: time.Now()}
	}
}

func (m dashboardModel) cmdTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m dashboardModel) cmdAcknowledge(id int64) tea.Cmd {
	return func() tea.Msg {
		alert, err := m.server.AcknowledgeAlert(m.ctx, id)
		return alertAcknowledgedMsg{alert: alert, err: err}
	}
}

func (m dashboardModel) cmdReset(service string) tea.Cmd {
	return func() tea.Msg {
		return serviceResetMsg{service: service, err: m.server.ResetService(m.ctx, service)}
	}
}

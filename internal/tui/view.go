package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// windowCell renders one window as "used/limit (pct%)"; unlimited windows
// have no percentage.
func windowCell(q models.WindowQuota) string {
	if q.Limit <= 0 {
		return fmt.Sprintf("%d/∞", q.Used)
	}
	return fmt.Sprintf("%d/%d (%.0f%%)", q.Used, q.Limit, q.Utilization*100)
}

func stateCell(s models.QuotaStatus) string {
	if s.Exhausted {
		return "EXHAUSTED"
	}
	for _, q := range s.Windows {
		if q.Limit > 0 && q.Utilization >= s.Limits.AlertThreshold && s.Limits.AlertThreshold > 0 {
			return "WARNING"
		}
	}
	return "OK"
}

func windowOf(s models.QuotaStatus, w models.Window) (models.WindowQuota, bool) {
	for _, q := range s.Windows {
		if q.Window == w {
			return q, true
		}
	}
	return models.WindowQuota{}, false
}

// summary is the one-line text copied to the clipboard.
func summary(s models.QuotaStatus) string {
	parts := make([]string, 0, len(s.Windows)+2)
	parts = append(parts, s.Service)
	for _, q := range s.Windows {
		parts = append(parts, fmt.Sprintf("%s=%s", q.Window, windowCell(q)))
	}
	parts = append(parts, "state="+stateCell(s))
	return strings.Join(parts, " ")
}

func alertLine(a models.Alert) string {
	line := fmt.Sprintf("#%d %s %s [%s] %s", a.ID, a.CreatedAt.Format("15:04:05"), a.Service, a.Severity, a.Message)
	if a.Severity == models.SeverityCritical {
		return criticalStyle.Render(line)
	}
	return warningStyle.Render(line)
}

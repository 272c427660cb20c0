package tui

import (
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

type dataLoadedMsg struct {
	statuses []models.QuotaStatus
	alerts   []models.Alert
	at       time.Time
	err      error
}

type tickMsg time.Time

type alertAcknowledgedMsg struct {
	alert models.Alert
	err   error
}

type serviceResetMsg struct {
	service string
	err     error
}

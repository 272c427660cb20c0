package adapter

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const eventbriteEventsEndpoint = "/v3/organizations/{id}/events/"

type eventbriteText struct {
	Text string `json:"text"`
}

type eventbriteTime struct {
	UTC time.Time `json:"utc"`
}

type eventbriteEvent struct {
	ID      string          `json:"id"`
	Name    eventbriteText  `json:"name"`
	Summary string          `json:"summary"`
	URL     string          `json:"url"`
	Start   eventbriteTime  `json:"start"`
	End     *eventbriteTime `json:"end"`
	Online  bool            `json:"online_event"`
	Venue   *struct {
		Name    string `json:"name"`
		Address struct {
			City string `json:"city"`
		} `json:"address"`
	} `json:"venue"`
	Organizer *struct {
		Name string `json:"name"`
	} `json:"organizer"`
}

type eventbriteEventsResponse struct {
	Events []eventbriteEvent `json:"events"`
}

type eventbriteAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewEventbriteAdapter(cfg config.Eventbrite, integrations config.Integrations, log *logger.Logger) EventbriteAdapter {
	return &eventbriteAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), integrations.Timeout).WithBearer(cfg.Token),
		logger: log,
	}
}

func (e *eventbriteAdapter) OrganizationEvents(ctx context.Context, organizationID string) ([]models.NetworkingEvent, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetPathParam("id", organizationID).
		SetQueryParams(map[string]string{
			"status":   "live",
			"order_by": "start_asc",
			"expand":   "venue,organizer",
		}).
		Get(eventbriteEventsEndpoint)
	if err != nil {
		return nil, transportError(models.ServiceEventbrite, err)
	}
	if err = mapHTTPError(models.ServiceEventbrite, resp); err != nil {
		return nil, err
	}

	var payload eventbriteEventsResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, decodeError(models.ServiceEventbrite, resp.StatusCode(), err)
	}

	events := make([]models.NetworkingEvent, 0, len(payload.Events))
	for _, ev := range payload.Events {
		events = append(events, ev.toModel())
	}

	return events, nil
}

func (ev eventbriteEvent) toModel() models.NetworkingEvent {
	event := models.NetworkingEvent{
		Title:      ev.Name.Text,
		URL:        ev.URL,
		StartsAt:   ev.Start.UTC,
		Status:     models.EventPlanned,
		Source:     models.SourceEventbrite,
		ExternalID: ev.ID,
		Notes:      ev.Summary,
	}
	if ev.End != nil && !ev.End.UTC.IsZero() {
		end := ev.End.UTC
		event.EndsAt = &end
	}

	switch {
	case ev.Online:
		event.Location = "Online"
	case ev.Venue != nil:
		event.Location = strings.TrimSpace(strings.Join(nonEmpty(ev.Venue.Name, ev.Venue.Address.City), ", "))
	}
	if ev.Organizer != nil {
		event.Organizer = ev.Organizer.Name
	}

	return event
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

type alertRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAlertRepository(db *DB, log *logger.Logger) AlertRepository {
	log.Debug().Msg("creating alert repository")
	return &alertRepository{db: db, logger: log}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	query, args, err := buildCreateAlertQuery(r.db.builder(), alert)
	if err != nil {
		return models.Alert{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Alert
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(alertDest(&created)...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "alertRepository.CreateAlert").
			Str("service", alert.Service).
			Str("type", string(alert.Type)).
			Msg("failed to create alert")
		return models.Alert{}, r.db.wrapError(err, ErrExecutingStatement)
	}

	return created, nil
}

func (r *alertRepository) ListAlerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	query, args, err := buildListAlertsQuery(r.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "alertRepository.ListAlerts").Msg("failed to query alerts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0, 16)
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(alertDest(&a)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return alerts, nil
}

// AcknowledgeAlert marks the alert as seen at the given time. Acknowledging
// twice keeps the alert acknowledged and moves acknowledged_at.
func (r *alertRepository) AcknowledgeAlert(ctx context.Context, id int64, at time.Time) (models.Alert, error) {
	query, args, err := buildAcknowledgeAlertQuery(r.db.builder(), id, at)
	if err != nil {
		return models.Alert{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var alert models.Alert
	err = r.db.QueryRowContext(ctx, query, args...).Scan(alertDest(&alert)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Alert{}, ErrAlertNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "alertRepository.AcknowledgeAlert").
			Int64("alert_id", id).
			Msg("failed to acknowledge alert")
		return models.Alert{}, r.db.wrapError(err, ErrExecutingStatement)
	}

	return alert, nil
}

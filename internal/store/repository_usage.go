package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

// usageRepository is the SQL implementation of [UsageRepository] over the
// api_usage and api_errors tables.
type usageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUsageRepository(db *DB, log *logger.Logger) UsageRepository {
	log.Debug().Msg("creating usage repository")
	return &usageRepository{db: db, logger: log}
}

// RecordCall adds call to the daily aggregate of its (service, date, endpoint)
// key, creating the row on first use.
func (r *usageRepository) RecordCall(ctx context.Context, call models.APICall) error {
	query, args, err := buildRecordCallQuery(r.db.builder(), call)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageRepository.RecordCall").
			Str("service", call.Service).
			Str("endpoint", call.Endpoint).
			Msg("failed to record api call")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	return nil
}

// SaveError stores a failed call.
func (r *usageRepository) SaveError(ctx context.Context, call models.APICall) error {
	query, args, err := buildSaveErrorQuery(r.db.builder(), call)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageRepository.SaveError").
			Str("service", call.Service).
			Msg("failed to save api error")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	return nil
}

// Stats returns the daily aggregates of service between the UTC dates of
// from and to, both inclusive.
func (r *usageRepository) Stats(ctx context.Context, service string, from, to time.Time) ([]models.UsageRecord, error) {
	query, args, err := buildUsageStatsQuery(r.db.builder(), service, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageRepository.Stats").
			Str("service", service).
			Msg("failed to query usage stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.UsageRecord, 0, 32)
	for rows.Next() {
		var rec models.UsageRecord
		if err := rows.Scan(&rec.Service, &rec.Date, &rec.Endpoint, &rec.TotalCalls, &rec.SuccessfulCalls, &rec.FailedCalls, &rec.TotalResponseMs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if rec.TotalCalls > 0 {
			rec.AvgResponseMs = float64(rec.TotalResponseMs) / float64(rec.TotalCalls)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// RecentErrors returns the latest failed calls of service, newest first.
func (r *usageRepository) RecentErrors(ctx context.Context, service string, limit uint64) ([]models.APIError, error) {
	query, args, err := buildRecentErrorsQuery(r.db.builder(), service, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageRepository.RecentErrors").
			Str("service", service).
			Msg("failed to query api errors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.APIError, 0, pageSize(limit, defaultErrorsLimit))
	for rows.Next() {
		var e models.APIError
		if err := rows.Scan(&e.ID, &e.Service, &e.Endpoint, &e.StatusCode, &e.Message, &e.UserID, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// PurgeBefore deletes aggregates dated before the UTC date of before and
// errors that occurred before it. It returns the number of deleted rows.
func (r *usageRepository) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	usageQuery, usageArgs, err := buildPurgeUsageQuery(r.db.builder(), before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	errorsQuery, errorsArgs, err := buildPurgeErrorsQuery(r.db.builder(), before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range []struct {
			query string
			args  []any
		}{
			{usageQuery, usageArgs},
			{errorsQuery, errorsArgs},
		} {
			res, err := tx.ExecContext(ctx, stmt.query, stmt.args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			deleted += n
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageRepository.PurgeBefore").
			Time("before", before).
			Msg("failed to purge usage data")
		return 0, err
	}

	return deleted, nil
}

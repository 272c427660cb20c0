package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-job-tracker/models"
)

// MaxPageSize is the largest number of rows a list query returns.
const MaxPageSize = 200

const (
	defaultPageSize = 50

	defaultErrorsLimit = 50
	defaultAlertsLimit = 100
)

var userColumns = []string{"user_id", "login", "password_hash", "name", "created_at"}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "password_hash", "name").
		Values(user.Login, user.PasswordHash, user.Name).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

// pageSize clamps a requested limit to (0, MaxPageSize].
func pageSize(limit, fallback uint64) uint64 {
	switch {
	case limit == 0:
		return fallback
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}

// usageDate is the UTC calendar date of t at midnight.
func usageDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var usageColumns = []string{
	"service", "usage_date", "endpoint",
	"total_calls", "successful_calls", "failed_calls", "total_response_ms",
}

const usageUpsertSuffix = `ON CONFLICT (service, usage_date, endpoint) DO UPDATE SET
		total_calls = api_usage.total_calls + excluded.total_calls,
		successful_calls = api_usage.successful_calls + excluded.successful_calls,
		failed_calls = api_usage.failed_calls + excluded.failed_calls,
		total_response_ms = api_usage.total_response_ms + excluded.total_response_ms`

func buildRecordCallQuery(b sq.StatementBuilderType, call models.APICall) (string, []any, error) {
	var succeeded, failed int64 = 0, 1
	if call.Success {
		succeeded, failed = 1, 0
	}

	return b.Insert("api_usage").
		Columns(usageColumns...).
		Values(call.Service, usageDate(call.Timestamp), call.Endpoint, 1, succeeded, failed, call.Duration.Milliseconds()).
		Suffix(usageUpsertSuffix).
		ToSql()
}

func buildSaveErrorQuery(b sq.StatementBuilderType, call models.APICall) (string, []any, error) {
	var userID any
	if call.UserID != 0 {
		userID = call.UserID
	}

	return b.Insert("api_errors").
		Columns("service", "endpoint", "status_code", "message", "user_id", "occurred_at").
		Values(call.Service, call.Endpoint, call.StatusCode, call.Error, userID, call.Timestamp.UTC()).
		ToSql()
}

func buildUsageStatsQuery(b sq.StatementBuilderType, service string, from, to time.Time) (string, []any, error) {
	return b.Select(usageColumns...).
		From("api_usage").
		Where(sq.Eq{"service": service}).
		Where(sq.GtOrEq{"usage_date": usageDate(from)}).
		Where(sq.LtOrEq{"usage_date": usageDate(to)}).
		OrderBy("usage_date", "endpoint").
		ToSql()
}

func buildRecentErrorsQuery(b sq.StatementBuilderType, service string, limit uint64) (string, []any, error) {
	return b.Select("id", "service", "endpoint", "status_code", "message", "COALESCE(user_id, 0)", "occurred_at").
		From("api_errors").
		Where(sq.Eq{"service": service}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(pageSize(limit, defaultErrorsLimit)).
		ToSql()
}

func buildPurgeUsageQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete("api_usage").Where(sq.Lt{"usage_date": usageDate(before)}).ToSql()
}

func buildPurgeErrorsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete("api_errors").Where(sq.Lt{"occurred_at": before.UTC()}).ToSql()
}

var alertColumns = []string{
	"id", "service", "type", "severity", "alert_window", "message",
	"threshold", "value", "acknowledged", "acknowledged_at", "created_at",
}

func buildCreateAlertQuery(b sq.StatementBuilderType, alert models.Alert) (string, []any, error) {
	return b.Insert("api_alerts").
		Columns("service", "type", "severity", "alert_window", "message", "threshold", "value", "created_at").
		Values(alert.Service, alert.Type, alert.Severity, alert.Window, alert.Message, alert.Threshold, alert.Value, alert.CreatedAt.UTC()).
		Suffix("RETURNING " + strings.Join(alertColumns, ", ")).
		ToSql()
}

func buildListAlertsQuery(b sq.StatementBuilderType, filter models.AlertFilter) (string, []any, error) {
	query := b.Select(alertColumns...).From("api_alerts")
	if filter.Service != "" {
		query = query.Where(sq.Eq{"service": filter.Service})
	}
	if filter.UnacknowledgedOnly {
		query = query.Where(sq.Eq{"acknowledged": false})
	}

	return query.
		OrderBy("created_at DESC", "id DESC").
		Limit(pageSize(filter.Limit, defaultAlertsLimit)).
		ToSql()
}

func buildAcknowledgeAlertQuery(b sq.StatementBuilderType, id int64, at time.Time) (string, []any, error) {
	return b.Update("api_alerts").
		Set("acknowledged", true).
		Set("acknowledged_at", at.UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(alertColumns, ", ")).
		ToSql()
}

func alertDest(a *models.Alert) []any {
	return []any{
		&a.ID, &a.Service, &a.Type, &a.Severity, &a.Window, &a.Message,
		&a.Threshold, &a.Value, &a.Acknowledged, &a.AcknowledgedAt, &a.CreatedAt,
	}
}

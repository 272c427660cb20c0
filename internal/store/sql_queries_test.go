// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	pgBuilder   = statementBuilder(DialectPostgres)
	liteBuilder = statementBuilder(DialectSQLite)
)

func Test_buildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery(pgBuilder, models.User{Login: "john", PasswordHash: "h", Name: "John"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (login,password_hash,name) VALUES ($1,$2,$3) RETURNING user_id, login, password_hash, name, created_at", query)
	assert.Equal(t, []any{"john", "h", "John"}, args)
}

func Test_buildFindUserByLoginQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildFindUserByLoginQuery(liteBuilder, "john")
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, login, password_hash, name, created_at FROM users WHERE login = ?", query)
	assert.Equal(t, []any{"john"}, args)
}

func Test_table_buildInsertQuery(t *testing.T) {
	job := models.Job{Company: "Acme", Title: "Engineer", Status: models.JobApplied}

	query, args, err := jobsTable.buildInsertQuery(pgBuilder, 7, &job)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into jobs (user_id,company,title,"))
	require.Contains(t, q, "returning id, user_id, company")
	require.Contains(t, q, "created_at, updated_at")

	// user_id + nine writable columns
	require.Len(t, args, 10)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "Acme", args[1])
	assert.Equal(t, models.JobApplied, args[5])
	assert.Contains(t, query, "$10")
}

func Test_table_buildGetQuery(t *testing.T) {
	query, args, err := contactsTable.buildGetQuery(pgBuilder, 3, 11)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM contacts WHERE id = $1 AND user_id = $2")
	assert.Equal(t, []any{int64(11), int64(3)}, args)
}

func Test_table_buildListQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ListFilter
		wantParts  []string
		avoidParts []string
		wantArgs   []any
	}{
		{
			name:       "defaults",
			filter:     models.ListFilter{},
			wantParts:  []string{"WHERE user_id = $1", "ORDER BY updated_at DESC, id DESC", "LIMIT 50"},
			avoidParts: []string{"OFFSET", "status ="},
			wantArgs:   []any{int64(1)},
		},
		{
			name:      "status and paging",
			filter:    models.ListFilter{Status: "offer", Limit: 10, Offset: 20},
			wantParts: []string{"user_id = $1", "status = $2", "LIMIT 10", "OFFSET 20"},
			wantArgs:  []any{int64(1), "offer"},
		},
		{
			name:      "limit is clamped",
			filter:    models.ListFilter{Limit: 5000},
			wantParts: []string{"LIMIT 200"},
			wantArgs:  []any{int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := jobsTable.buildListQuery(pgBuilder, 1, tt.filter)
			require.NoError(t, err)

			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.avoidParts {
				assert.NotContains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_table_buildListQuery_IgnoresStatusWithoutColumn(t *testing.T) {
	query, args, err := contactsTable.buildListQuery(pgBuilder, 1, models.ListFilter{Status: "applied"})
	require.NoError(t, err)

	assert.NotContains(t, query, "status")
	assert.Len(t, args, 1)
}

func Test_table_buildUpdateQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resume := models.Resume{Title: "Backend", Content: "...", IsDefault: true}

	query, args, err := resumesTable.buildUpdateQuery(pgBuilder, 2, 9, &resume, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE resumes SET title = $1, summary = $2, content = $3, file_url = $4, is_default = $5, updated_at = $6"))
	assert.Contains(t, query, "WHERE id = $7 AND user_id = $8")
	assert.Contains(t, query, "RETURNING id, user_id, title")
	require.Len(t, args, 8)
	assert.Equal(t, true, args[4])
	assert.Equal(t, now, args[5])
	assert.Equal(t, int64(9), args[6])
	assert.Equal(t, int64(2), args[7])
}

func Test_table_buildDeleteQuery(t *testing.T) {
	query, args, err := eventsTable.buildDeleteQuery(liteBuilder, 4, 5)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM networking_events WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{int64(5), int64(4)}, args)
}

func Test_table_buildClearExclusiveQuery(t *testing.T) {
	query, args, err := resumesTable.buildClearExclusiveQuery(pgBuilder, 4, 8)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE resumes SET is_default = $1")
	assert.Contains(t, query, "id <> $4")
	assert.Equal(t, []any{false, true, int64(4), int64(8)}, args)
}

func Test_buildRecordCallQuery(t *testing.T) {
	ts := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name          string
		call          models.APICall
		wantSucceeded int64
		wantFailed    int64
	}{
		{
			name:          "success",
			call:          models.APICall{Service: "github", Endpoint: "/users", Success: true, Duration: 120 * time.Millisecond, Timestamp: ts},
			wantSucceeded: 1,
		},
		{
			name:       "failure",
			call:       models.APICall{Service: "github", Endpoint: "/users", Success: false, Duration: time.Second, Timestamp: ts},
			wantFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildRecordCallQuery(pgBuilder, tt.call)
			require.NoError(t, err)

			assert.Contains(t, query, "INSERT INTO api_usage")
			assert.Contains(t, query, "ON CONFLICT (service, usage_date, endpoint) DO UPDATE")
			assert.Contains(t, query, "excluded.total_calls")

			require.Len(t, args, 7)
			assert.Equal(t, "github", args[0])
			assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), args[1])
			assert.Equal(t, 1, args[3])
			assert.Equal(t, tt.wantSucceeded, args[4])
			assert.Equal(t, tt.wantFailed, args[5])
			assert.Equal(t, tt.call.Duration.Milliseconds(), args[6])
		})
	}
}

func Test_usageDate_UsesUTCCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2026, 3, 5, 2, 0, 0, 0, loc) // 2026-03-04 21:00 UTC

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), usageDate(local))
}

func Test_buildSaveErrorQuery_NullUser(t *testing.T) {
	_, args, err := buildSaveErrorQuery(pgBuilder, models.APICall{Service: "bls", Error: "boom", StatusCode: 503})
	require.NoError(t, err)

	require.Len(t, args, 6)
	assert.Equal(t, 503, args[2])
	assert.Nil(t, args[4])
}

func Test_buildUsageStatsQuery(t *testing.T) {
	from := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 1, 0, 0, 0, time.UTC)

	query, args, err := buildUsageStatsQuery(pgBuilder, "gemini", from, to)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE service = $1 AND usage_date >= $2 AND usage_date <= $3")
	assert.Contains(t, query, "ORDER BY usage_date, endpoint")
	assert.Equal(t, []any{"gemini", usageDate(from), usageDate(to)}, args)
}

func Test_buildRecentErrorsQuery(t *testing.T) {
	query, _, err := buildRecentErrorsQuery(pgBuilder, "gemini", 0)
	require.NoError(t, err)

	assert.Contains(t, query, "COALESCE(user_id, 0)")
	assert.Contains(t, query, "ORDER BY occurred_at DESC, id DESC")
	assert.Contains(t, query, "LIMIT 50")
}

func Test_buildListAlertsQuery(t *testing.T) {
	query, args, err := buildListAlertsQuery(pgBuilder, models.AlertFilter{Service: "github", UnacknowledgedOnly: true, Limit: 5})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM api_alerts WHERE service = $1 AND acknowledged = $2")
	assert.Contains(t, query, "LIMIT 5")
	assert.Equal(t, []any{"github", false}, args)

	query, args, err = buildListAlertsQuery(pgBuilder, models.AlertFilter{})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LIMIT 100")
	assert.Empty(t, args)
}

func Test_buildAcknowledgeAlertQuery(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildAcknowledgeAlertQuery(pgBuilder, 42, at)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE api_alerts SET acknowledged = $1, acknowledged_at = $2 WHERE id = $3")
	assert.Contains(t, query, "RETURNING id, service")
	assert.Equal(t, []any{true, at, int64(42)}, args)
}

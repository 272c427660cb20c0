package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"check", pgError(pgerrcode.CheckViolation), ConstraintViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), ConstraintViolation},
		{"not null", pgError(pgerrcode.NotNullViolation), ConstraintViolation},
		{"exclusion", pgError(pgerrcode.ExclusionViolation), ConstraintViolation},
		{"admin shutdown", pgError(pgerrcode.AdminShutdown), Retryable},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"plain error", errors.New("boom"), NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, UniqueViolation},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, ConstraintViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ConstraintViolation},
		{"corrupt", sqlite3.Error{Code: sqlite3.ErrCorrupt}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestDB_wrapError(t *testing.T) {
	db := NewDB(nil, DialectPostgres, logger.Nop())

	assert.NoError(t, db.wrapError(nil, ErrExecutingQuery))

	err := db.wrapError(pgError(pgerrcode.UniqueViolation), ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = db.wrapError(pgError(pgerrcode.CheckViolation), ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	raw := errors.New("timeout")
	err = db.wrapError(raw, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, raw)
}

func TestStatementBuilder_Placeholders(t *testing.T) {
	query, _, err := statementBuilder(DialectPostgres).Select("id").From("jobs").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM jobs WHERE id = $1", query)

	query, _, err = statementBuilder(DialectSQLite).Select("id").From("jobs").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM jobs WHERE id = ?", query)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		raw      string
		wantDSN  string
		wantPath string
	}{
		{raw: ":memory:", wantDSN: "file::memory:?cache=shared&_foreign_keys=on"},
		{raw: "sqlite://tracker.db", wantDSN: "tracker.db?_foreign_keys=on", wantPath: "tracker.db"},
		{raw: "file:data/tracker.db?cache=shared", wantDSN: "file:data/tracker.db?cache=shared&_foreign_keys=on", wantPath: "data/tracker.db"},
		{raw: "file:test?mode=memory", wantDSN: "file:test?mode=memory&_foreign_keys=on"},
		{raw: "sqlite://tracker.db?_foreign_keys=off", wantDSN: "tracker.db?_foreign_keys=off", wantPath: "tracker.db"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dsn, path := sqliteDSN(tt.raw)
			assert.Equal(t, tt.wantDSN, dsn)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "mysql://root@localhost/db", "tracker.db"} {
		t.Run(dsn, func(t *testing.T) {
			db, err := NewConnect(context.Background(), config.DB{DSN: dsn}, logger.Nop())
			assert.Nil(t, db)
			assert.ErrorIs(t, err, ErrUnsupportedDSN)
		})
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/migrations"
)

// Dialect names the SQL flavour of a connection.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

const (
	transientRetries = 3
	transientDelay   = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classification used by all repositories.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. It is used by tests and by the
// dialect-specific constructors.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{DB: conn, dialect: dialect, logger: log}
	switch dialect {
	case DialectSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" URLs use pgx; "sqlite://", "file:" and ":memory:" use
// go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies pending goose migrations of the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder with the dialect placeholder.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func statementBuilder(dialect Dialect) sq.StatementBuilderType {
	if dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// wrapError converts a driver error into one of the package sentinels.
// The driver error stays in the chain.
func (db *DB) wrapError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// withRetry runs fn and repeats it while the error is classified as
// [Retryable], for a few short exponential steps.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(transientRetries, retry.NewExponential(transientDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// inTx runs fn inside a transaction that is committed when fn succeeds.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

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

// queryer is the subset of *sql.DB and *sql.Tx used by writes.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// resourceRepository is the generic SQL implementation of
// [ResourceRepository] over a [table] descriptor.
type resourceRepository[T any] struct {
	db     *DB
	table  table[T]
	logger *logger.Logger
	now    func() time.Time
}

// NewResourceRepository constructs a [ResourceRepository] for the resource
// described by t.
func NewResourceRepository[T any](db *DB, t table[T], log *logger.Logger) ResourceRepository[T] {
	log.Debug().Str("table", t.name).Msg("creating resource repository")
	return &resourceRepository[T]{
		db:     db,
		table:  t,
		logger: log,
		now:    time.Now,
	}
}

// Create inserts item for userID and returns the stored row.
func (r *resourceRepository[T]) Create(ctx context.Context, userID int64, item T) (T, error) {
	log := logger.FromContext(ctx)

	var created T
	err := r.write(ctx, userID, 0, &item, func(q queryer) error {
		query, args, err := r.table.buildInsertQuery(r.db.builder(), userID, &item)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := q.QueryRowContext(ctx, query, args...).Scan(r.table.dest(&created)...); err != nil {
			return r.db.wrapError(err, ErrExecutingStatement)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Create").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to create resource")
		var zero T
		return zero, err
	}

	return created, nil
}

// Get returns the row with id owned by userID or [ErrNotFound].
func (r *resourceRepository[T]) Get(ctx context.Context, userID, id int64) (T, error) {
	var item T

	query, args, err := r.table.buildGetQuery(r.db.builder(), userID, id)
	if err != nil {
		return item, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(r.table.dest(&item)...)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resourceRepository.Get").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to get resource")
		var zero T
		return zero, r.db.wrapError(err, ErrExecutingQuery)
	}

	return item, nil
}

// List returns a page of rows owned by userID. The result is never nil.
func (r *resourceRepository[T]) List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.table.buildListQuery(r.db.builder(), userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.List").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, pageSize(filter.Limit, defaultPageSize))
	for rows.Next() {
		var item T
		if err := rows.Scan(r.table.dest(&item)...); err != nil {
			log.Err(err).
				Str("func", "resourceRepository.List").
				Str("table", r.table.name).
				Msg("failed to scan resource row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// Update replaces the writable columns of the row with id owned by userID.
func (r *resourceRepository[T]) Update(ctx context.Context, userID, id int64, item T) (T, error) {
	var updated T
	err := r.write(ctx, userID, id, &item, func(q queryer) error {
		query, args, err := r.table.buildUpdateQuery(r.db.builder(), userID, id, &item, r.now())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		err = q.QueryRowContext(ctx, query, args...).Scan(r.table.dest(&updated)...)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return r.db.wrapError(err, ErrExecutingStatement)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "resourceRepository.Update").
				Str("table", r.table.name).
				Int64("user_id", userID).
				Int64("id", id).
				Msg("failed to update resource")
		}
		var zero T
		return zero, err
	}

	return updated, nil
}

// Delete removes the row with id owned by userID or returns [ErrNotFound].
func (r *resourceRepository[T]) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := r.table.buildDeleteQuery(r.db.builder(), userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "resourceRepository.Delete").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete resource")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// write runs fn directly, or inside a transaction that first clears the
// exclusive flag on the user's other rows when item sets it.
func (r *resourceRepository[T]) write(ctx context.Context, userID, id int64, item *T, fn func(q queryer) error) error {
	if r.table.isExclusive == nil || !r.table.isExclusive(item) {
		return fn(r.db.DB)
	}

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.table.buildClearExclusiveQuery(r.db.builder(), userID, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.wrapError(err, ErrExecutingStatement)
		}

		return fn(tx)
	})
}

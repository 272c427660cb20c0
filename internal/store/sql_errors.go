package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells whether a failed operation may be retried and whether it was
// rejected by a schema constraint.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// UniqueViolation indicates a duplicate key.
	UniqueViolation

	// ConstraintViolation indicates a CHECK, NOT NULL or foreign key failure.
	ConstraintViolation
)

// ErrorClassificator maps driver errors of a single SQL dialect to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

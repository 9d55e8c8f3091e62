package models

import (
	"errors"
)

var (
	// ErrBackend indicates the oracle backend failed after all retries were
	// exhausted (transport error, non-success status, or unparseable JSON).
	ErrBackend = errors.New("oracle backend failure")

	// ErrSchemaMismatch indicates the oracle returned syntactically valid JSON
	// that lacks a required field. Never coerced to empty defaults.
	ErrSchemaMismatch = errors.New("oracle response schema mismatch")

	// ErrMaxDepthExceeded indicates the partitioner hit its recursion ceiling.
	ErrMaxDepthExceeded = errors.New("maximum partition depth exceeded")

	// ErrNoProgress indicates a subdivision failed to shrink the problem,
	// e.g. the oracle collapsed every item into a single category.
	ErrNoProgress = errors.New("partition made no progress")

	ErrValidation = errors.New("validation error")
)

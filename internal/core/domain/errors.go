package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates one or more terms failed validation.
	// Document generation is blocked until the terms are corrected.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrStoreUnavailable indicates no persistence store is configured.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrEstimatorUnavailable indicates no rate estimator is configured.
	ErrEstimatorUnavailable = errors.New("rate estimator unavailable")
)

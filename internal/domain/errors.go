package domain

import "errors"

var (
	// ErrInvalidInput is returned for malformed or incomplete answer sets and submission payloads.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates no submission exists with the requested id.
	ErrNotFound = errors.New("submission not found")
	// ErrStoreUnavailable wraps failures of the submission store itself.
	ErrStoreUnavailable = errors.New("submission store unavailable")
	// ErrMalformedRecord indicates a stored submission's serialized fields cannot be decoded.
	ErrMalformedRecord = errors.New("malformed stored record")
	// ErrProgressNotFound is returned when no saved quiz progress exists for an id.
	ErrProgressNotFound = errors.New("quiz progress not found")
)

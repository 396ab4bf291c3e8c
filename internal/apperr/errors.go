package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested booking does not exist.
var ErrNotFound = errors.New("not found")

// ErrMissingInput is returned when a required selection was not made.
var ErrMissingInput = errors.New("missing input")

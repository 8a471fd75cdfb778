package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicateKey is returned when a create collides with an existing
// primary key or unique index value (e.g. a second user with the same email).
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrIntegrity is returned when a read finds a uniqueness invariant already
// violated; more than one record under a supposedly-unique index value.
// This should never happen; it is detected rather than silently resolved.
var ErrIntegrity = errors.New("integrity violation")

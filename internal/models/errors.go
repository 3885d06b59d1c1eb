package models

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Callers are expected to match them with errors.Is.
var (
	// ErrNotFound is returned by lookups with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken. No further detail is exposed.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on any login mismatch. It is
	// intentionally the same for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when a seller tries to mutate a product
	// they do not own.
	ErrForbidden = errors.New("forbidden")
)

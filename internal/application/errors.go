package application

import "errors"

// Failure kinds returned by the application layer. Handlers translate these
// to HTTP statuses with errors.Is; nothing else inspects error text.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrImageUnavailable   = errors.New("image storage not configured")
)

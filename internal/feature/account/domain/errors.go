// Package domain defines domain-level errors for the account feature.
package domain

import "errors"

// Domain errors for account operations.
// Handlers map these to HTTP status codes; anything else is a storage failure.
var (
	// ErrMissingFields indicates that a required signup field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrEmailAlreadyExists indicates that the unique email index rejected an insert.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound indicates that no user matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrConnectionFailed indicates that no database connection could be acquired.
	ErrConnectionFailed = errors.New("database connection failed")
)

package domain

import "errors"

var (
	// ErrInvalidCredentials is returned by login when no user matches
	// the supplied email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned by registration when a user with
	// the same email already exists.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
)

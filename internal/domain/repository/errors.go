package repository

import "errors"

var (
	// ErrNotFound is returned when a document id or lookup key does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique index rejects a write
	// (duplicate email, second profile for the same user).
	ErrDuplicate = errors.New("duplicate")
)

package repository

import "errors"

// Store-level sentinels returned by all repository implementations.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Package repository holds the sentinel errors shared by the memory,
// Firestore and Postgres stores. Every backend wraps one of these with
// goerr so callers can branch with errors.Is regardless of the store.
package repository

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned when a repository, match, blacklist entry or
	// report does not exist.
	ErrNotFound = goerr.New("record not found")

	// ErrAlreadyExists is returned when an insert collides with a unique key.
	ErrAlreadyExists = goerr.New("record already exists")

	// ErrInvalidInput is returned for arguments the store rejects before
	// touching the backend, such as an empty ID or a non-positive limit.
	ErrInvalidInput = goerr.New("invalid store input")
)

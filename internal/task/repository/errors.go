package repository

import "errors"

var (
	// ErrNotFound is returned by Get and Update when the id does not exist.
	// Update deliberately rejects unknown ids instead of upserting, so edit
	// flows surface a not-found to the caller.
	ErrNotFound = errors.New("task not found")

	// ErrStorage wraps persistence failures (medium unavailable, write rejected).
	ErrStorage = errors.New("storage operation failed")
)

package task

import "errors"

// Domain-specific errors for the task package.
var (
	// ErrEmptyInput means there was nothing to analyze (no text and no media).
	ErrEmptyInput = errors.New("input is empty")

	// ErrNoTasksParsed means no task could be extracted from the AI response.
	// Recoverable: the store is untouched and the batch is a no-op.
	ErrNoTasksParsed = errors.New("no tasks could be extracted")

	// ErrAIBackend wraps a failure to reach or read the AI backend.
	// Aborts the current batch only; previously persisted tasks are unaffected.
	ErrAIBackend = errors.New("ai backend request failed")

	// ErrNothingToChange means an edit carried no fields to apply.
	ErrNothingToChange = errors.New("nothing to change")
)

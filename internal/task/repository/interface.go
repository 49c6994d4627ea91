package repository

import (
	"context"

	"ai-task-scheduler/internal/model"
)

// TaskRepository is the interface for durable task storage.
// Every operation is durable before it returns.
type TaskRepository interface {
	// Insert persists a new task and returns it with the assigned id.
	Insert(ctx context.Context, opt InsertTaskOptions) (model.Task, error)

	// Update overwrites the full record carried by task. It returns
	// ErrNotFound when the id does not exist (no upsert).
	Update(ctx context.Context, task model.Task) error

	// Delete removes a task. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Get returns a single task by id, or ErrNotFound.
	Get(ctx context.Context, id int64) (model.Task, error)

	// ListSorted returns all tasks ordered by time ascending, ties broken by
	// id ascending (insertion order).
	ListSorted(ctx context.Context) ([]model.Task, error)
}

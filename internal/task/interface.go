package task

import (
	"context"

	"ai-task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Analyze runs the full pipeline for one analysis request: obtain the AI
	// response for the input, extract task candidates, resolve time conflicts
	// against the persisted schedule, persist each task, and return the
	// resulting sorted view.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// List returns all tasks ordered by time ascending, ties by insertion order.
	List(ctx context.Context) (ListOutput, error)

	// Detail returns a single task by id.
	Detail(ctx context.Context, id int64) (model.Task, error)

	// Edit applies a partial update of title and/or description.
	Edit(ctx context.Context, input EditInput) (model.Task, error)

	// Delete removes a task. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id int64) error

	// Reorder re-derives timestamps for the supplied id sequence, one hour
	// apart starting at the day anchor. Tasks absent from the sequence are
	// left untouched.
	Reorder(ctx context.Context, input ReorderInput) (ReorderOutput, error)

	// ResolveAll sweeps the schedule once, re-running conflict resolution for
	// every task in sorted order.
	ResolveAll(ctx context.Context) (ResolveAllOutput, error)
}

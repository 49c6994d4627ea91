package usecase

import (
	"context"

	"ai-task-scheduler/internal/task"
)

// List returns the store's sorted view.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.ListSorted(ctx)
	if err != nil {
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

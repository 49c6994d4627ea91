package usecase

import (
	"context"
	"strings"

	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task"
)

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	return uc.repo.Get(ctx, id)
}

// Edit applies a partial update of the user-editable fields. id, time and
// created_at never change through this path.
func (uc *implUseCase) Edit(ctx context.Context, input task.EditInput) (model.Task, error) {
	if input.Title == nil && input.Description == nil {
		return model.Task{}, task.ErrNothingToChange
	}

	current, err := uc.repo.Get(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		current.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		current.Description = *input.Description
	}

	if err := uc.repo.Update(ctx, current); err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "Edit: task=%d updated", input.ID)
	return current, nil
}

// Delete removes a task. Terminal and idempotent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.l.Infof(ctx, "Delete: task=%d removed", id)
	return nil
}

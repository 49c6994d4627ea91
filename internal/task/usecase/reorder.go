package usecase

import (
	"context"
	"errors"
	"time"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/repository"
	"ai-task-scheduler/internal/task/schedule"
)

// Reorder re-derives timestamps for the user-supplied id sequence: position 0
// gets the day anchor (09:00 local by default), each following position one
// hour later. Prior time-of-day information is discarded for the reordered
// tasks; ids not in the sequence stay untouched. Unknown ids are skipped.
func (uc *implUseCase) Reorder(ctx context.Context, input task.ReorderInput) (task.ReorderOutput, error) {
	anchor := uc.norm.DayAnchor(time.Now(), uc.anchorHour)
	assignments := schedule.Reorder(input.IDs, anchor)

	uc.l.Infof(ctx, "Reorder: %d tasks, anchor %s", len(assignments), anchor.Format(time.RFC3339))

	for _, a := range assignments {
		current, err := uc.repo.Get(ctx, a.ID)
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "Reorder: task=%d not found, skipping", a.ID)
			continue
		}
		if err != nil {
			return task.ReorderOutput{}, err
		}

		current.Time = a.Time
		if err := uc.repo.Update(ctx, current); err != nil {
			return task.ReorderOutput{}, err
		}
	}

	tasks, err := uc.repo.ListSorted(ctx)
	if err != nil {
		return task.ReorderOutput{}, err
	}
	return task.ReorderOutput{Tasks: tasks}, nil
}

package usecase

import (
	"context"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/schedule"
)

// ResolveAll sweeps the schedule once: every task, in sorted order, is run
// through the single-pass conflict resolver against the then-current store.
// One sweep may leave new conflicts behind (the resolver does not chain);
// callers re-invoke ResolveAll to converge, which is not guaranteed on
// pathologically dense schedules.
func (uc *implUseCase) ResolveAll(ctx context.Context) (task.ResolveAllOutput, error) {
	snapshot, err := uc.repo.ListSorted(ctx)
	if err != nil {
		return task.ResolveAllOutput{}, err
	}

	out := task.ResolveAllOutput{}

	for _, t := range snapshot {
		// Re-read so this task sees shifts applied earlier in the sweep.
		current, listErr := uc.repo.ListSorted(ctx)
		if listErr != nil {
			return out, listErr
		}

		fresh, getErr := uc.repo.Get(ctx, t.ID)
		if getErr != nil {
			// Deleted mid-sweep; nothing to resolve.
			continue
		}

		resolved, res := schedule.Resolve(fresh, current)
		if res == nil {
			continue
		}

		if err := uc.repo.Update(ctx, resolved); err != nil {
			return out, err
		}
		uc.l.Infof(ctx, "ResolveAll: %s", res.Message())
		out.Notices = append(out.Notices, res.Message())
	}

	tasks, err := uc.repo.ListSorted(ctx)
	if err != nil {
		return out, err
	}
	out.Tasks = tasks

	return out, nil
}

// Package schedule holds the pure scheduling policies: conflict resolution
// and reorder re-timestamping. Functions here never touch the store.
package schedule

import (
	"fmt"
	"time"

	"ai-task-scheduler/internal/model"
)

// ConflictWindow is the minimum spacing between two tasks. Two tasks whose
// times are strictly closer than this are in conflict.
const ConflictWindow = time.Hour

// Resolution describes a time shift applied to resolve a conflict.
type Resolution struct {
	TaskTitle    string
	ConflictWith string
	OldTime      time.Time
	NewTime      time.Time
}

// Message renders the resolution as a human-readable notice.
func (r Resolution) Message() string {
	return fmt.Sprintf("%q conflicted with %q and was moved from %s to %s",
		r.TaskTitle, r.ConflictWith,
		r.OldTime.Format("15:04"), r.NewTime.Format(time.RFC3339))
}

// Resolve scans existing tasks in order and shifts the candidate one hour
// past the FIRST task it conflicts with, then stops. The shifted time is not
// re-checked against later tasks in the same call; a resolve-all sweep must
// re-invoke Resolve to converge, and convergence is not guaranteed on dense
// schedules.
//
// The candidate is returned by value; the inputs are never mutated. A nil
// Resolution means no shift happened. Tasks sharing the candidate's id are
// ignored so an already-persisted task never conflicts with itself.
func Resolve(candidate model.Task, existing []model.Task) (model.Task, *Resolution) {
	for _, t := range existing {
		if candidate.ID != 0 && t.ID == candidate.ID {
			continue
		}

		delta := candidate.Time.Sub(t.Time)
		if delta < 0 {
			delta = -delta
		}
		if delta >= ConflictWindow {
			continue
		}

		res := &Resolution{
			TaskTitle:    candidate.Title,
			ConflictWith: t.Title,
			OldTime:      candidate.Time,
			NewTime:      t.Time.Add(ConflictWindow),
		}
		candidate.Time = res.NewTime
		return candidate, res
	}

	return candidate, nil
}

package schedule

import "time"

// SlotInterval is the spacing between consecutive reordered tasks.
const SlotInterval = time.Hour

// Assignment pairs a task id with its re-derived time.
type Assignment struct {
	ID   int64
	Time time.Time
}

// Reorder assigns times to the supplied id sequence starting at anchor,
// one SlotInterval per position. Prior time-of-day information is discarded
// entirely; ids absent from the sequence receive no assignment and stay
// untouched.
func Reorder(ids []int64, anchor time.Time) []Assignment {
	assignments := make([]Assignment, len(ids))
	for i, id := range ids {
		assignments[i] = Assignment{
			ID:   id,
			Time: anchor.Add(time.Duration(i) * SlotInterval),
		}
	}
	return assignments
}

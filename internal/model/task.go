package model

import "time"

// Task represents a scheduled task record.
type Task struct {
	ID          int64     // Store-assigned identifier, immutable after creation
	Title       string    // Non-empty label
	Description string    // Optional free text, empty when absent
	Time        time.Time // Scheduled instant, local wall clock
	CreatedAt   time.Time // Record creation time, immutable
}

package repository

import "time"

// InsertTaskOptions holds the parameters for persisting a new task.
// The id is assigned by the store.
type InsertTaskOptions struct {
	Title       string
	Description string
	Time        time.Time
	CreatedAt   time.Time
}

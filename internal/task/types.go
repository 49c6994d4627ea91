package task

import "ai-task-scheduler/internal/model"

// Media is an optional media attachment for analysis (image, audio, ...).
type Media struct {
	Data     []byte
	MimeType string
}

// AnalyzeInput is the input for one analysis request.
type AnalyzeInput struct {
	Text  string // Free-form user text, may be empty when media is present
	Media *Media // Optional media to analyze alongside (or instead of) text
}

// AnalyzeOutput is the result of one analysis batch.
type AnalyzeOutput struct {
	BatchID string       // Identifier for this analysis batch
	Created []model.Task // Tasks persisted by this batch, in emission order
	Notices []string     // Human-readable conflict resolution notices
	Tasks   []model.Task // Current sorted view after the batch
}

// EditInput is a partial update of a task's user-editable fields.
// Nil fields are left unchanged.
type EditInput struct {
	ID          int64
	Title       *string
	Description *string
}

// ReorderInput carries the user-specified new sequence of task ids.
type ReorderInput struct {
	IDs []int64
}

// ReorderOutput is the sorted view after re-timestamping.
type ReorderOutput struct {
	Tasks []model.Task
}

// ResolveAllOutput is the result of a resolve-all conflict sweep.
type ResolveAllOutput struct {
	Notices []string
	Tasks   []model.Task
}

// ListOutput is the store's sorted view.
type ListOutput struct {
	Tasks []model.Task
}

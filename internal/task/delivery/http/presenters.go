package http

import (
	"time"

	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text string `json:"text" binding:"required,min=1,max=10000"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() task.AnalyzeInput {
	return task.AnalyzeInput{Text: r.Text}
}

// ---

type editReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r editReq) validate() error { return nil }

func (r editReq) toInput() task.EditInput {
	return task.EditInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
}

// ---

type reorderReq struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

func (r reorderReq) validate() error { return nil }

func (r reorderReq) toInput() task.ReorderInput {
	return task.ReorderInput{IDs: r.IDs}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Time        time.Time `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Time:        t.Time,
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type analyzeResp struct {
	BatchID string     `json:"batch_id"`
	Created []taskResp `json:"created"`
	Notices []string   `json:"notices,omitempty"`
	Tasks   []taskResp `json:"tasks"`
}

func (h *handler) newAnalyzeResp(out task.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		BatchID: out.BatchID,
		Created: newTaskResps(out.Created),
		Notices: out.Notices,
		Tasks:   newTaskResps(out.Tasks),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Total: len(out.Tasks),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type editResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newEditResp(t model.Task) editResp {
	return editResp{Task: newTaskResp(t)}
}

type reorderResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newReorderResp(out task.ReorderOutput) reorderResp {
	return reorderResp{Tasks: newTaskResps(out.Tasks)}
}

type resolveAllResp struct {
	Notices []string   `json:"notices,omitempty"`
	Tasks   []taskResp `json:"tasks"`
}

func (h *handler) newResolveAllResp(out task.ResolveAllOutput) resolveAllResp {
	return resolveAllResp{
		Notices: out.Notices,
		Tasks:   newTaskResps(out.Tasks),
	}
}

package http

import (
	"errors"
	"net/http"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/repository"
	"ai-task-scheduler/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return response.NewHTTPError(http.StatusBadRequest, "nothing to analyze: provide text or media")
	case errors.Is(err, task.ErrNoTasksParsed):
		return response.NewHTTPError(http.StatusUnprocessableEntity, "no tasks could be extracted from the input")
	case errors.Is(err, task.ErrNothingToChange):
		return response.NewHTTPError(http.StatusBadRequest, "no fields to update")
	case errors.Is(err, task.ErrAIBackend):
		return response.NewHTTPError(http.StatusBadGateway, "AI backend is unavailable")
	case errors.Is(err, repository.ErrNotFound):
		return response.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}

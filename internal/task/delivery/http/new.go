package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-scheduler/internal/task"
	pkgLog "ai-task-scheduler/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	AnalyzeMedia(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
	Reorder(c *gin.Context)
	ResolveAll(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Analysis routes carry the rate limiter; the rest are unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/analyze", mw.RateLimit(), h.Analyze)
		tasks.POST("/analyze/media", mw.RateLimit(), h.AnalyzeMedia)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Edit)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/reorder", h.Reorder)
		tasks.POST("/resolve", h.ResolveAll)
	}
}

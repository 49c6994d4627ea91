package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-task-scheduler/internal/middleware"
	taskHTTP "ai-task-scheduler/internal/task/delivery/http"
	"ai-task-scheduler/internal/task/parser"
	taskRepo "ai-task-scheduler/internal/task/repository/sqlite"
	taskUC "ai-task-scheduler/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ..., repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, srv.llm, srv.calendar, repo, parser.New(srv.norm), srv.norm,
		srv.timezone, srv.calendarID, srv.anchorHour)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

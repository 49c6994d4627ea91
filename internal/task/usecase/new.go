package usecase

import (
	"ai-task-scheduler/internal/task/parser"
	"ai-task-scheduler/internal/task/repository"
	"ai-task-scheduler/pkg/gcalendar"
	"ai-task-scheduler/pkg/gemini"
	pkgLog "ai-task-scheduler/pkg/log"
	"ai-task-scheduler/pkg/timetext"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        *gemini.Client
	calendar   *gcalendar.Client // nil when calendar export is disabled
	repo       repository.TaskRepository
	parser     *parser.Parser
	norm       *timetext.Normalizer
	timezone   string
	calendarID string
	anchorHour int
}

// New creates a new task UseCase instance. calendar may be nil; calendar
// export then degrades to a no-op.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	calendar *gcalendar.Client,
	repo repository.TaskRepository,
	prs *parser.Parser,
	norm *timetext.Normalizer,
	timezone string,
	calendarID string,
	anchorHour int,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		repo:       repo,
		parser:     prs,
		norm:       norm,
		timezone:   timezone,
		calendarID: calendarID,
		anchorHour: anchorHour,
	}
}

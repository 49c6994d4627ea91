package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ai-task-scheduler/pkg/gcalendar"
	"ai-task-scheduler/pkg/gemini"
	pkgLog "ai-task-scheduler/pkg/log"
	"ai-task-scheduler/pkg/timetext"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Shared domain dependencies
	db       *sql.DB
	llm      *gemini.Client
	calendar *gcalendar.Client // nil disables calendar export
	norm     *timetext.Normalizer

	// Scheduler settings
	timezone        string
	calendarID      string
	anchorHour      int
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	LLM      *gemini.Client
	Calendar *gcalendar.Client
	Norm     *timetext.Normalizer

	Timezone        string
	CalendarID      string
	AnchorHour      int
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		llm:             cfg.LLM,
		calendar:        cfg.Calendar,
		norm:            cfg.Norm,
		timezone:        cfg.Timezone,
		calendarID:      cfg.CalendarID,
		anchorHour:      cfg.AnchorHour,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	if srv.norm == nil {
		return errors.New("time normalizer is required")
	}
	return nil
}

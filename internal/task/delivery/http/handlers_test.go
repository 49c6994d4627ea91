package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-scheduler/internal/middleware"
	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase returns canned outputs and records the last inputs it saw.
type mockUseCase struct {
	analyzeOut task.AnalyzeOutput
	analyzeErr error
	detailOut  model.Task
	detailErr  error

	lastAnalyze task.AnalyzeInput
	lastDelete  int64
}

func (m *mockUseCase) Analyze(ctx context.Context, input task.AnalyzeInput) (task.AnalyzeOutput, error) {
	m.lastAnalyze = input
	return m.analyzeOut, m.analyzeErr
}

func (m *mockUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Edit(ctx context.Context, input task.EditInput) (model.Task, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	m.lastDelete = id
	return nil
}

func (m *mockUseCase) Reorder(ctx context.Context, input task.ReorderInput) (task.ReorderOutput, error) {
	return task.ReorderOutput{}, nil
}

func (m *mockUseCase) ResolveAll(ctx context.Context) (task.ResolveAllOutput, error) {
	return task.ResolveAllOutput{}, nil
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := &mockLogger{}
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, 0))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerAnalyze(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{analyzeOut: task.AnalyzeOutput{
			BatchID: "b-1",
			Created: []model.Task{{ID: 1, Title: "Vet visit", Time: time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)}},
		}}
		r := newTestRouter(uc)

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/analyze", `{"text":"vet at 11"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if uc.lastAnalyze.Text != "vet at 11" {
			t.Errorf("use case received %q", uc.lastAnalyze.Text)
		}

		var body struct {
			Data analyzeResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Data.BatchID != "b-1" || len(body.Data.Created) != 1 {
			t.Errorf("unexpected payload: %+v", body.Data)
		}
	})

	t.Run("Missing text", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/analyze", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status got = %d, want 400", w.Code)
		}
	})

	t.Run("AI backend down", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{analyzeErr: task.ErrAIBackend})

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/analyze", `{"text":"vet at 11"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status got = %d, want 502", w.Code)
		}
	})

	t.Run("Nothing extractable", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{analyzeErr: task.ErrNoTasksParsed})

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/analyze", `{"text":"blah"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status got = %d, want 422", w.Code)
		}
	})
}

func TestHandlerDetail(t *testing.T) {
	t.Run("Unknown id", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{detailErr: repository.ErrNotFound})

		w := doJSON(r, http.MethodGet, "/api/v1/tasks/42", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status got = %d, want 404", w.Code)
		}
	})

	t.Run("Malformed id", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(r, http.MethodGet, "/api/v1/tasks/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status got = %d, want 400", w.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodDelete, "/api/v1/tasks/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status got = %d, want 200", w.Code)
	}
	if uc.lastDelete != 7 {
		t.Errorf("use case received id %d, want 7", uc.lastDelete)
	}
}

func TestHandlerReorder(t *testing.T) {
	t.Run("Empty ids rejected", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/reorder", `{"ids":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status got = %d, want 400", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doJSON(r, http.MethodPost, "/api/v1/tasks/reorder", `{"ids":[3,1,2]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status got = %d, want 200", w.Code)
		}
	})
}

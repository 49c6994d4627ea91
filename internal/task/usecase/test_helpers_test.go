package usecase_test

import (
	"context"
	"sort"
	"time"

	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task/repository"
)

// mock dependencies

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

// memRepo is an in-memory TaskRepository with the same ordering contract as
// the sqlite implementation.
type memRepo struct {
	tasks      map[int64]model.Task
	nextID     int64
	insertFail int // fail the Nth insert (1-based); 0 disables
	inserts    int
}

func newMemRepo() *memRepo {
	return &memRepo{tasks: make(map[int64]model.Task), nextID: 1}
}

func (m *memRepo) Insert(ctx context.Context, opt repository.InsertTaskOptions) (model.Task, error) {
	m.inserts++
	if m.insertFail != 0 && m.inserts == m.insertFail {
		return model.Task{}, repository.ErrStorage
	}

	t := model.Task{
		ID:          m.nextID,
		Title:       opt.Title,
		Description: opt.Description,
		Time:        opt.Time,
		CreatedAt:   opt.CreatedAt,
	}
	m.tasks[t.ID] = t
	m.nextID++
	return t, nil
}

func (m *memRepo) Update(ctx context.Context, t model.Task) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *memRepo) ListSorted(ctx context.Context) ([]model.Task, error) {
	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Time.Equal(out[j].Time) {
			return out[i].Time.Before(out[j].Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memRepo) seed(title string, at time.Time) model.Task {
	t, _ := m.Insert(context.Background(), repository.InsertTaskOptions{
		Title:     title,
		Time:      at,
		CreatedAt: time.Now(),
	})
	return t
}

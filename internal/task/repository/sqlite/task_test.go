package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-task-scheduler/internal/model"
	repo "ai-task-scheduler/internal/task/repository"
	"ai-task-scheduler/internal/task/repository/sqlite"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepo(t *testing.T) repo.TaskRepository {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, t.TempDir()+"/tasks.db")
	if err != nil {
		t.Fatalf("unexpected error opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return sqlite.New(db, nopLogger{})
}

func mustInsert(t *testing.T, r repo.TaskRepository, title string, at time.Time) model.Task {
	t.Helper()
	task, err := r.Insert(context.Background(), repo.InsertTaskOptions{
		Title:     title,
		Time:      at,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	return task
}

func TestInsertAndListRoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	in := repo.InsertTaskOptions{
		Title:       "Vet visit",
		Description: "Take the cat",
		Time:        time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC),
	}

	created, err := r.Insert(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	tasks, err := r.ListSorted(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != created.ID || got.Title != in.Title || got.Description != in.Description {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.Time.Equal(in.Time) {
		t.Errorf("time got = %v, want %v", got.Time, in.Time)
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("created_at got = %v, want %v", got.CreatedAt, in.CreatedAt)
	}
}

func TestListSorted_OrderAndTieBreak(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	day := func(hour int) time.Time {
		return time.Date(2025, 1, 10, hour, 0, 0, 0, time.UTC)
	}

	// Insert out of chronological order, with an exact tie on 11:00.
	late := mustInsert(t, r, "Late", day(15))
	tieFirst := mustInsert(t, r, "Tie first", day(11))
	early := mustInsert(t, r, "Early", day(9))
	tieSecond := mustInsert(t, r, "Tie second", day(11))

	tasks, err := r.ListSorted(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []int64{early.ID, tieFirst.ID, tieSecond.ID, late.ID}
	if len(tasks) != len(wantOrder) {
		t.Fatalf("expected %d tasks, got %d", len(wantOrder), len(tasks))
	}
	for i, task := range tasks {
		if task.ID != wantOrder[i] {
			t.Errorf("position %d: id got = %d, want %d", i, task.ID, wantOrder[i])
		}
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Time.Before(tasks[i-1].Time) {
			t.Errorf("times not non-decreasing at position %d", i)
		}
	}
}

func TestUpdate(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	task := mustInsert(t, r, "Before", time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC))

	task.Title = "After"
	task.Time = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	if err := r.Update(ctx, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "After" || !got.Time.Equal(task.Time) {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestUpdate_UnknownIDRejected(t *testing.T) {
	r := newRepo(t)

	err := r.Update(context.Background(), model.Task{
		ID:    9999,
		Title: "Ghost",
		Time:  time.Now(),
	})
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("error got = %v, want ErrNotFound", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	task := mustInsert(t, r, "Doomed", time.Now())

	if err := r.Delete(ctx, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second delete of the same id must not fail.
	if err := r.Delete(ctx, task.ID); err != nil {
		t.Fatalf("second delete errored: %v", err)
	}

	if _, err := r.Get(ctx, task.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := newRepo(t)

	if _, err := r.Get(context.Background(), 404); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("error got = %v, want ErrNotFound", err)
	}
}

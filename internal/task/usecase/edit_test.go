package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/repository"
)

func strPtr(s string) *string { return &s }

func TestEdit(t *testing.T) {
	at := time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)

	t.Run("Title only", func(t *testing.T) {
		repo := newMemRepo()
		seeded := repo.seed("Old title", at)
		uc := newUseCase(t, repo)

		got, err := uc.Edit(context.Background(), task.EditInput{ID: seeded.ID, Title: strPtr("  New title  ")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "New title" {
			t.Errorf("title got = %q, want %q", got.Title, "New title")
		}
		// Time is not editable through this path.
		if !got.Time.Equal(at) {
			t.Errorf("time changed: %v", got.Time)
		}
	})

	t.Run("Description can be cleared", func(t *testing.T) {
		repo := newMemRepo()
		seeded := repo.seed("Title", at)
		uc := newUseCase(t, repo)

		if _, err := uc.Edit(context.Background(), task.EditInput{ID: seeded.ID, Description: strPtr("notes")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.Edit(context.Background(), task.EditInput{ID: seeded.ID, Description: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Description != "" {
			t.Errorf("description got = %q, want empty", got.Description)
		}
	})

	t.Run("Blank title is ignored", func(t *testing.T) {
		repo := newMemRepo()
		seeded := repo.seed("Keep me", at)
		uc := newUseCase(t, repo)

		got, err := uc.Edit(context.Background(), task.EditInput{ID: seeded.ID, Title: strPtr("   "), Description: strPtr("added")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Keep me" {
			t.Errorf("title got = %q, want %q", got.Title, "Keep me")
		}
		if got.Description != "added" {
			t.Errorf("description got = %q, want %q", got.Description, "added")
		}
	})

	t.Run("No fields", func(t *testing.T) {
		uc := newUseCase(t, newMemRepo())

		_, err := uc.Edit(context.Background(), task.EditInput{ID: 1})
		if !errors.Is(err, task.ErrNothingToChange) {
			t.Fatalf("error got = %v, want ErrNothingToChange", err)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		uc := newUseCase(t, newMemRepo())

		_, err := uc.Edit(context.Background(), task.EditInput{ID: 42, Title: strPtr("x")})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("error got = %v, want ErrNotFound", err)
		}
	})
}

func TestDetail(t *testing.T) {
	repo := newMemRepo()
	seeded := repo.seed("Lookup", time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC))
	uc := newUseCase(t, repo)

	got, err := uc.Detail(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != seeded.ID || got.Title != "Lookup" {
		t.Errorf("unexpected task: %+v", got)
	}

	if _, err := uc.Detail(context.Background(), 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error got = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMemRepo()
	seeded := repo.seed("Doomed", time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC))
	uc := newUseCase(t, repo)

	if err := uc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Get(context.Background(), seeded.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("task still present after delete")
	}

	// Deleting again is idempotent.
	if err := uc.Delete(context.Background(), seeded.ID); err != nil {
		t.Errorf("second delete got = %v, want nil", err)
	}
}

package usecase_test

import (
	"context"
	"testing"
	"time"
)

func TestResolveAll(t *testing.T) {
	t.Run("Overlapping pair is separated", func(t *testing.T) {
		repo := newMemRepo()
		a := repo.seed("Morning call", time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC))
		b := repo.seed("Standup", time.Date(2025, 1, 10, 11, 30, 0, 0, time.UTC))
		uc := newUseCase(t, repo)

		out, err := uc.ResolveAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Notices) != 1 {
			t.Fatalf("expected 1 notice, got %d", len(out.Notices))
		}

		// The earlier task moved to one hour after the blocker; the blocker
		// itself stayed put.
		got := map[int64]time.Time{}
		for _, tk := range out.Tasks {
			got[tk.ID] = tk.Time
		}
		if want := time.Date(2025, 1, 10, 12, 30, 0, 0, time.UTC); !got[a.ID].Equal(want) {
			t.Errorf("shifted task got = %v, want %v", got[a.ID], want)
		}
		if want := time.Date(2025, 1, 10, 11, 30, 0, 0, time.UTC); !got[b.ID].Equal(want) {
			t.Errorf("blocker got = %v, want %v", got[b.ID], want)
		}
	})

	t.Run("Conflict-free store is untouched", func(t *testing.T) {
		repo := newMemRepo()
		repo.seed("One", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
		repo.seed("Two", time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC))
		uc := newUseCase(t, repo)

		out, err := uc.ResolveAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Notices) != 0 {
			t.Errorf("expected no notices, got %v", out.Notices)
		}
	})

	t.Run("Empty store", func(t *testing.T) {
		uc := newUseCase(t, newMemRepo())

		out, err := uc.ResolveAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 0 || len(out.Notices) != 0 {
			t.Errorf("expected empty output, got %+v", out)
		}
	})
}

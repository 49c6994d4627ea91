package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/repository"
	"ai-task-scheduler/internal/task/schedule"
)

// Analyze runs the full pipeline: AI response → candidates → per-candidate
// conflict resolution against the live store → insert → final sorted view.
func (uc *implUseCase) Analyze(ctx context.Context, input task.AnalyzeInput) (task.AnalyzeOutput, error) {
	if strings.TrimSpace(input.Text) == "" && input.Media == nil {
		return task.AnalyzeOutput{}, task.ErrEmptyInput
	}

	out := task.AnalyzeOutput{BatchID: uuid.NewString()}
	now := time.Now()

	uc.l.Infof(ctx, "Analyze: batch=%s input_length=%d has_media=%t",
		out.BatchID, len(input.Text), input.Media != nil)

	// Step 1: obtain the raw AI response (streamed, consumed to completion).
	rawText, err := uc.generateResponse(ctx, input, now)
	if err != nil {
		uc.l.Errorf(ctx, "Analyze: AI request failed: %v", err)
		return out, fmt.Errorf("%w: %v", task.ErrAIBackend, err)
	}

	uc.l.Debugf(ctx, "Analyze: AI raw response: %s", rawText)

	// Step 2: extract structured candidates.
	candidates, err := uc.parser.Parse(rawText, now)
	if err != nil {
		// No task extractable: recoverable no-op, the store is untouched.
		return out, err
	}

	uc.l.Infof(ctx, "Analyze: batch=%s extracted %d candidates", out.BatchID, len(candidates))

	// Step 3: resolve and persist each candidate in emission order. Each
	// iteration re-reads the live store so later candidates see earlier
	// inserts of the same batch.
	for _, cand := range candidates {
		existing, listErr := uc.repo.ListSorted(ctx)
		if listErr != nil {
			uc.l.Errorf(ctx, "Analyze: batch=%s list failed: %v", out.BatchID, listErr)
			return out, listErr
		}

		resolved, res := schedule.Resolve(model.Task{
			Title:       cand.Title,
			Description: cand.Description,
			Time:        cand.Time,
			CreatedAt:   now,
		}, existing)
		if res != nil {
			uc.l.Infof(ctx, "Analyze: batch=%s %s", out.BatchID, res.Message())
			out.Notices = append(out.Notices, res.Message())
		}

		created, insErr := uc.repo.Insert(ctx, repository.InsertTaskOptions{
			Title:       resolved.Title,
			Description: resolved.Description,
			Time:        resolved.Time,
			CreatedAt:   resolved.CreatedAt,
		})
		if insErr != nil {
			// Earlier candidates stay persisted; the batch is not retried.
			uc.l.Errorf(ctx, "Analyze: batch=%s failed to persist %q: %v", out.BatchID, resolved.Title, insErr)
			return out, insErr
		}

		out.Created = append(out.Created, created)

		// Calendar export is best-effort and never blocks the batch.
		uc.tryCreateCalendarEvent(ctx, created)
	}

	// Step 4: publish the sorted view once, after the whole batch.
	tasks, err := uc.repo.ListSorted(ctx)
	if err != nil {
		return out, err
	}
	out.Tasks = tasks

	return out, nil
}

package usecase

import (
	"context"
	"encoding/base64"
	"time"

	"ai-task-scheduler/internal/model"
	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/internal/task/schedule"
	"ai-task-scheduler/pkg/gcalendar"
	"ai-task-scheduler/pkg/gemini"
)

// generateResponse asks the AI backend for the extraction response, streaming
// it to completion. The prompt embeds the current time so the model can
// resolve relative date phrases.
func (uc *implUseCase) generateResponse(ctx context.Context, input task.AnalyzeInput, now time.Time) (string, error) {
	nowStr := now.In(uc.norm.Location()).Format(time.RFC3339)

	parts := []gemini.Part{
		{Text: gemini.BuildTaskExtractionPrompt(input.Text, nowStr)},
	}
	if input.Media != nil {
		parts = append(parts, gemini.Part{InlineData: &gemini.Blob{
			MimeType: input.Media.MimeType,
			Data:     base64.StdEncoding.EncodeToString(input.Media.Data),
		}})
	}

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: parts}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 2048,
		},
	}

	return uc.llm.StreamGenerateContent(ctx, req)
}

// tryCreateCalendarEvent exports a persisted task to Google Calendar.
// Failures are logged and swallowed (graceful degradation); a missing
// calendar client makes this a no-op.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   t.Time,
		EndTime:     t.Time.Add(schedule.ConflictWindow),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}

// Package parser extracts structured task candidates from raw AI output.
//
// Extraction is tiered, first tier that yields candidates wins:
//  1. the first JSON array of objects found in the text,
//  2. the first single JSON object, wrapped as a one-element batch,
//  3. a lexical fallback matching task/meeting/appointment phrases.
//
// A parse failure inside a tier is never fatal; it falls through to the next
// tier. When every tier fails, Parse reports task.ErrNoTasksParsed.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/pkg/timetext"
)

// Candidate is a tentative task extracted from AI output, not yet assigned
// an id or persisted.
type Candidate struct {
	Title       string
	Description string
	Time        time.Time
}

// Parser turns raw AI response text into task candidates.
type Parser struct {
	norm *timetext.Normalizer
}

// New creates a Parser that uses norm for clock phrases and default times.
func New(norm *timetext.Normalizer) *Parser {
	return &Parser{norm: norm}
}

// candidateJSON is the wire shape of a structured candidate in AI output.
type candidateJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Parse extracts candidates from rawText. now anchors default times and
// date-less clock phrases. Candidates without a title are skipped; when no
// tier yields any candidate the result is (nil, task.ErrNoTasksParsed).
func (p *Parser) Parse(rawText string, now time.Time) ([]Candidate, error) {
	text := stripCodeFences(rawText)

	if cands := p.extractArray(text, now); len(cands) > 0 {
		return cands, nil
	}
	if cands := p.extractObject(text, now); len(cands) > 0 {
		return cands, nil
	}
	if cands := p.extractLexical(text, now); len(cands) > 0 {
		return cands, nil
	}

	return nil, task.ErrNoTasksParsed
}

// stripCodeFences removes markdown ```json ... ``` fences that LLMs often
// wrap around JSON output.
func stripCodeFences(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return text
}

// extractArray finds the first substring starting at a '[' that decodes as a
// JSON array of candidate objects.
func (p *Parser) extractArray(text string, now time.Time) []Candidate {
	for start := strings.IndexByte(text, '['); start != -1; start = nextIndex(text, '[', start) {
		var raw []candidateJSON
		dec := json.NewDecoder(strings.NewReader(text[start:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		return p.toCandidates(raw, now)
	}
	return nil
}

// extractObject finds the first substring starting at a '{' that decodes as a
// single candidate object and wraps it as a one-element batch.
func (p *Parser) extractObject(text string, now time.Time) []Candidate {
	for start := strings.IndexByte(text, '{'); start != -1; start = nextIndex(text, '{', start) {
		var raw candidateJSON
		dec := json.NewDecoder(strings.NewReader(text[start:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		return p.toCandidates([]candidateJSON{raw}, now)
	}
	return nil
}

var (
	// taskPhraseRe captures the words following a task/meeting/appointment marker.
	taskPhraseRe = regexp.MustCompile(`(?i)\b(?:task|meeting|appointment)\b(?:\s+is)?\s*[:\-]?\s*(.+)`)

	// timePhraseRe captures a clock phrase following at/on/time:.
	timePhraseRe = regexp.MustCompile(`(?i)\b(?:at|on|time:)\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\b`)
)

// extractLexical is the last-resort tier: a task phrase for the title and an
// adjacent time phrase for the time. Without a time phrase the candidate gets
// the default slot (one hour from now, on the hour).
func (p *Parser) extractLexical(text string, now time.Time) []Candidate {
	matches := taskPhraseRe.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	title := strings.TrimSpace(matches[1])
	when := p.norm.DefaultSlot(now)

	if tm := timePhraseRe.FindStringSubmatchIndex(title); tm != nil {
		phrase := title[tm[2]:tm[3]]
		if parsed, err := p.norm.Normalize(phrase, now); err == nil {
			when = parsed
			// Drop the time phrase from the title.
			title = strings.TrimSpace(title[:tm[0]])
		}
	}

	title = strings.TrimRight(title, " .,;")
	if title == "" {
		return nil
	}

	return []Candidate{{Title: title, Time: when}}
}

// toCandidates validates decoded objects and resolves their time strings.
// Objects without a title are skipped.
func (p *Parser) toCandidates(raw []candidateJSON, now time.Time) []Candidate {
	cands := make([]Candidate, 0, len(raw))
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		cands = append(cands, Candidate{
			Title:       title,
			Description: r.Description,
			Time:        p.resolveTime(r.Time, now),
		})
	}
	return cands
}

// resolveTime turns a candidate's time string into an absolute instant.
// Accepted forms, in order: RFC3339, zone-less ISO-8601 (read in the
// normalizer's location), a bare clock phrase. Anything else gets the
// default slot.
func (p *Parser) resolveTime(value string, now time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return p.norm.DefaultSlot(now)
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, p.norm.Location()); err == nil {
		return t
	}
	if t, err := p.norm.Normalize(value, now); err == nil {
		return t
	}

	return p.norm.DefaultSlot(now)
}

// nextIndex returns the index of the next occurrence of b after pos, or -1.
func nextIndex(s string, b byte, pos int) int {
	i := strings.IndexByte(s[pos+1:], b)
	if i == -1 {
		return -1
	}
	return pos + 1 + i
}

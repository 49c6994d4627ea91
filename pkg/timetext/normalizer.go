package timetext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Normalizer converts clock-phrase strings like "11am", "5:30pm" or "17:00"
// into absolute time.Time values on a reference date.
type Normalizer struct {
	location *time.Location
}

// clockRe matches H[:MM][am|pm]: hour required, minute optional, meridiem optional.
var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// NewNormalizer creates a normalizer for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Normalizer{location: loc}, nil
}

// Location returns the normalizer's timezone location.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Normalize converts a clock phrase to an absolute instant on baseTime's date.
// The minute defaults to 0. Without a meridiem marker the hour is read as
// 24-hour; "pm" adds 12 when the hour is below 12; "12am" maps to 00.
func (n *Normalizer) Normalize(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	matches := clockRe.FindStringSubmatch(phrase)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid clock phrase: %q", phrase)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute := 0
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}

	switch matches[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("clock phrase out of range: %q", phrase)
	}

	b := baseTime.In(n.location)
	return time.Date(b.Year(), b.Month(), b.Day(), hour, minute, 0, 0, n.location), nil
}

// DefaultSlot returns the default time for a task with no time phrase:
// one hour from baseTime, on the hour.
func (n *Normalizer) DefaultSlot(baseTime time.Time) time.Time {
	b := baseTime.In(n.location)
	return time.Date(b.Year(), b.Month(), b.Day(), b.Hour()+1, 0, 0, 0, n.location)
}

// DayAnchor returns baseTime's date at the given hour in the normalizer's
// timezone. Used to derive the reorder anchor slot.
func (n *Normalizer) DayAnchor(baseTime time.Time, hour int) time.Time {
	b := baseTime.In(n.location)
	return time.Date(b.Year(), b.Month(), b.Day(), hour, 0, 0, 0, n.location)
}

// Package model provides the unified event type and the normalizer
// registry shared by all data-source implementations.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the fixed layout used by every source CSV.
const TimestampLayout = "2006-01-02 15:04"

// DateLayout is the layout for target-day arguments.
const DateLayout = "2006-01-02"

// SourceType tags the origin of an event. It drives downstream display
// heuristics only; the core pipeline never branches on it.
type SourceType string

const (
	SourceCalendar SourceType = "calendar"
	SourceLocation SourceType = "location"
	SourceMessage  SourceType = "message"
	SourcePhoto    SourceType = "photo"
	SourceHealth   SourceType = "health"
	SourceCall     SourceType = "call"
	SourceGPS      SourceType = "gps"
	SourceChat     SourceType = "chat"
)

// ErrMalformedRow marks a source row that is missing a required field or
// carries an unparsable timestamp. Loading fails fast on the first such row.
var ErrMalformedRow = errors.New("malformed source row")

// Event is a single normalized occurrence from any data source.
// An Event is constructed once by a normalizer and never mutated afterwards.
type Event struct {
	ID       string            `json:"id"`
	Start    time.Time         `json:"start"`
	End      time.Time         `json:"end,omitempty"`
	Source   SourceType        `json:"source_type"`
	Title    string            `json:"title"`
	Details  map[string]string `json:"details,omitempty"`
	People   []string          `json:"people,omitempty"`
	Location string            `json:"location,omitempty"`
}

// EffectiveEnd returns the event's end timestamp, falling back to the start
// for instantaneous events that carry no end.
func (e Event) EffectiveEnd() time.Time {
	if e.End.IsZero() {
		return e.Start
	}
	return e.End
}

// ParseTimestamp parses a raw "YYYY-MM-DD HH:MM" value from a source row.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrMalformedRow)
	}
	ts, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q: expected %q layout", ErrMalformedRow, value, TimestampLayout)
	}
	return ts, nil
}

// ParseDate parses a target-day argument in "YYYY-MM-DD" form.
func ParseDate(value string) (time.Time, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %q layout", value, DateLayout)
	}
	return day, nil
}

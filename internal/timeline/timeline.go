// Package timeline implements the day-reconstruction core: filtering events
// to a target day, grouping them into sessions, and summarizing sessions.
package timeline

import (
	"errors"
	"sort"
	"time"

	"daylog/internal/model"
)

// DefaultGap is the session gap threshold used when callers do not override it.
const DefaultGap = 60 * time.Minute

// ErrEmptySession is returned when Summarize is given an empty session.
// GroupSessions never emits one, so hitting this is a programming error.
var ErrEmptySession = errors.New("cannot summarize an empty session")

// Session is a maximal run of time-adjacent events on one day.
type Session []model.Event

// Summary is the read-only aggregate of one session.
type Summary struct {
	Start     time.Time
	End       time.Time
	Locations []string
	People    []string
	Titles    []string
	Events    Session
}

// FilterDay returns the events whose start timestamp falls on the target
// calendar day, sorted ascending by start. The sort is stable, so events
// sharing a start keep their input order. An empty result is valid and means
// "no activity that day", not a failure.
func FilterDay(events []model.Event, day time.Time) []model.Event {
	y, m, d := day.Date()

	var matched []model.Event
	for _, e := range events {
		ey, em, ed := e.Start.Date()
		if ey == y && em == m && ed == d {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Start.Before(matched[j].Start)
	})
	return matched
}

// GroupSessions partitions time-sorted same-day events into sessions. A new
// session begins whenever the start-to-start gap between an event and its
// immediate predecessor exceeds gap. The scan is greedy and left-to-right;
// passing unsorted input produces undefined grouping, the function neither
// verifies nor sorts.
func GroupSessions(events []model.Event, gap time.Duration) []Session {
	if len(events) == 0 {
		return nil
	}

	var sessions []Session
	current := Session{events[0]}

	for i := 1; i < len(events); i++ {
		if events[i].Start.Sub(events[i-1].Start) <= gap {
			current = append(current, events[i])
			continue
		}
		sessions = append(sessions, current)
		current = Session{events[i]}
	}

	return append(sessions, current)
}

// Summarize reduces a non-empty session into its Summary. End falls back to
// the last event's start when that event has no end. Locations and people are
// deduplicated in first-appearance order; titles keep order and duplicates
// since downstream text handling needs frequency.
func Summarize(session Session) (Summary, error) {
	if len(session) == 0 {
		return Summary{}, ErrEmptySession
	}

	s := Summary{
		Start:  session[0].Start,
		End:    session[len(session)-1].EffectiveEnd(),
		Events: session,
	}

	seenLoc := map[string]bool{}
	seenPerson := map[string]bool{}
	for _, e := range session {
		if e.Location != "" && !seenLoc[e.Location] {
			seenLoc[e.Location] = true
			s.Locations = append(s.Locations, e.Location)
		}
		for _, p := range e.People {
			if p != "" && !seenPerson[p] {
				seenPerson[p] = true
				s.People = append(s.People, p)
			}
		}
		if e.Title != "" {
			s.Titles = append(s.Titles, e.Title)
		}
	}

	return s, nil
}

// SummarizeAll summarizes every session in order.
func SummarizeAll(sessions []Session) ([]Summary, error) {
	summaries := make([]Summary, 0, len(sessions))
	for _, session := range sessions {
		summary, err := Summarize(session)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Package report assembles the day summary: counts, narrative, and
// caregiver summary for one target date.
package report

import (
	"fmt"
	"time"

	"daylog/internal/model"
	"daylog/internal/story"
	"daylog/internal/timeline"
)

// DayReport is the result of one pipeline run.
type DayReport struct {
	Date             string                   `json:"date"`
	TotalEvents      int                      `json:"total_events"`
	SessionCount     int                      `json:"session_count"`
	Narrative        string                   `json:"narrative"`
	CaregiverSummary string                   `json:"caregiver_summary"`
	SourceCounts     map[model.SourceType]int `json:"per_source_counts"`
}

// DaySessions filters events to the target day and groups them into
// summarized sessions. An empty result means no activity that day.
func DaySessions(events []model.Event, day time.Time, gap time.Duration) ([]timeline.Summary, error) {
	dayEvents := timeline.FilterDay(events, day)
	return timeline.SummarizeAll(timeline.GroupSessions(dayEvents, gap))
}

// Build runs the core pipeline over all loaded events for one day.
// sourceCounts covers all days and is computed by the caller; a day without
// events is a valid outcome carrying its own distinct narrative, not an
// error.
func Build(events []model.Event, sourceCounts map[model.SourceType]int, day time.Time, gap time.Duration) (DayReport, error) {
	label := day.Format(model.DateLayout)

	dayEvents := timeline.FilterDay(events, day)
	if len(dayEvents) == 0 {
		return DayReport{
			Date: label,
			Narrative: fmt.Sprintf(
				"No events were found for %s. There is nothing to reconstruct for this day.", label),
			CaregiverSummary: "- No specific activities were recorded for this date.\n" +
				"- Continue gentle check-ins according to the usual routine.",
			SourceCounts: sourceCounts,
		}, nil
	}

	sessions := timeline.GroupSessions(dayEvents, gap)
	summaries, err := timeline.SummarizeAll(sessions)
	if err != nil {
		return DayReport{}, err
	}

	return DayReport{
		Date:             label,
		TotalEvents:      len(dayEvents),
		SessionCount:     len(sessions),
		Narrative:        story.Narrative(summaries, label),
		CaregiverSummary: story.CaregiverSummary(summaries),
		SourceCounts:     sourceCounts,
	}, nil
}

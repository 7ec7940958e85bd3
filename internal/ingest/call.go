package ingest

import (
	"strings"

	"daylog/internal/model"
)

func init() {
	model.RegisterNormalizer(callNormalizer{})
}

// callNormalizer maps phone-call records. The title wording follows the call
// direction; calls carry no location.
type callNormalizer struct{}

func (callNormalizer) Source() model.SourceType { return model.SourceCall }

func (callNormalizer) Filename() string { return "calls.csv" }

func (callNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
	id, err := row.Field("id")
	if err != nil {
		return model.Event{}, err
	}
	start, err := timestampField(row, "timestamp_start")
	if err != nil {
		return model.Event{}, err
	}
	end, err := timestampField(row, "timestamp_end")
	if err != nil {
		return model.Event{}, err
	}

	person := strings.TrimSpace(row["person"])
	direction := strings.ToLower(strings.TrimSpace(row["direction"]))

	title := "Phone call"
	if person != "" {
		switch direction {
		case "incoming":
			title = "Phone call from " + person
		case "outgoing":
			title = "Phone call to " + person
		default:
			title = "Phone call with " + person
		}
	}

	var people []string
	if person != "" {
		people = []string{person}
	}

	return model.Event{
		ID:     id,
		Start:  start,
		End:    end,
		Source: model.SourceCall,
		Title:  title,
		Details: map[string]string{
			"direction":    direction,
			"duration_min": strings.TrimSpace(row["duration_min"]),
			"raw_person":   person,
		},
		People: people,
	}, nil
}

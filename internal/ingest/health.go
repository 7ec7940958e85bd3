package ingest

import (
	"fmt"
	"strings"

	"daylog/internal/model"
)

func init() {
	model.RegisterNormalizer(healthNormalizer{})
}

// healthNormalizer maps wearable health records (heart rate, steps, stress,
// sleep). Rows have no ID column, so IDs are synthesized from the row index.
// Titles deliberately embed the raw metrics; the redaction pass strips them
// before anything reaches human-facing output.
type healthNormalizer struct{}

func (healthNormalizer) Source() model.SourceType { return model.SourceHealth }

func (healthNormalizer) Filename() string { return "health.csv" }

var healthKindLabels = map[string]string{
	"morning_check": "Morning health check",
	"walk_exercise": "Walk / light exercise",
	"rest_period":   "Afternoon rest",
	"night_sleep":   "Night sleep",
}

func (healthNormalizer) Normalize(row model.Row, index int) (model.Event, error) {
	start, err := timestampField(row, "timestamp_start")
	if err != nil {
		return model.Event{}, err
	}

	end := start
	if raw := strings.TrimSpace(row["timestamp_end"]); raw != "" {
		end, err = model.ParseTimestamp(raw)
		if err != nil {
			return model.Event{}, fmt.Errorf("field %q: %w", "timestamp_end", err)
		}
	}

	kind := strings.TrimSpace(row["kind"])
	heartRate := strings.TrimSpace(row["heart_rate_avg"])
	steps := strings.TrimSpace(row["steps"])
	stress := strings.TrimSpace(row["stress_level"])
	sleepHours := strings.TrimSpace(row["sleep_hours"])

	label, ok := healthKindLabels[kind]
	if !ok {
		label = "Health event"
	}
	parts := []string{label}
	if heartRate != "" {
		parts = append(parts, fmt.Sprintf("HR ~%s bpm", heartRate))
	}
	if steps != "" {
		parts = append(parts, steps+" steps")
	}
	if sleepHours != "" {
		parts = append(parts, sleepHours+"h sleep")
	}
	if stress != "" {
		parts = append(parts, "stress "+stress)
	}

	return model.Event{
		ID:     fmt.Sprintf("health-%d", index),
		Start:  start,
		End:    end,
		Source: model.SourceHealth,
		Title:  strings.Join(parts, " | "),
		Details: map[string]string{
			"kind":           kind,
			"heart_rate_avg": heartRate,
			"steps":          steps,
			"stress_level":   stress,
			"sleep_hours":    sleepHours,
			"notes":          strings.TrimSpace(row["notes"]),
		},
	}, nil
}

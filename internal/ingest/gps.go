package ingest

import (
	"strings"

	"daylog/internal/model"
)

func init() {
	model.RegisterNormalizer(gpsNormalizer{})
}

// gpsNormalizer maps raw GPS visit records. GPS alone does not know who was
// there, so people stays empty.
type gpsNormalizer struct{}

func (gpsNormalizer) Source() model.SourceType { return model.SourceGPS }

func (gpsNormalizer) Filename() string { return "gps.csv" }

func (gpsNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
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

	place := strings.TrimSpace(row["place_name"])

	title := "GPS location visit"
	if place != "" {
		title = "Visit at " + place + " (GPS)"
	}

	source := strings.TrimSpace(row["source"])
	if source == "" {
		source = "gps"
	}

	return model.Event{
		ID:     id,
		Start:  start,
		End:    end,
		Source: model.SourceGPS,
		Title:  title,
		Details: map[string]string{
			"lat":            strings.TrimSpace(row["lat"]),
			"lon":            strings.TrimSpace(row["lon"]),
			"source":         source,
			"raw_place_name": place,
		},
		Location: place,
	}, nil
}

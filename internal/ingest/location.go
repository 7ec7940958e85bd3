package ingest

import "daylog/internal/model"

func init() {
	model.RegisterNormalizer(locationNormalizer{})
}

// locationNormalizer maps place-visit records. Visits name no people.
type locationNormalizer struct{}

func (locationNormalizer) Source() model.SourceType { return model.SourceLocation }

func (locationNormalizer) Filename() string { return "locations.csv" }

func (locationNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
	id, err := row.Field("location_id")
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
	place, err := row.Field("place_name")
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{
		ID:       id,
		Start:    start,
		End:      end,
		Source:   model.SourceLocation,
		Title:    "At " + place,
		Details:  map[string]string{"place_name": place},
		Location: place,
	}, nil
}

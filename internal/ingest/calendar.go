package ingest

import "daylog/internal/model"

func init() {
	model.RegisterNormalizer(calendarNormalizer{})
}

// calendarNormalizer maps planned calendar entries. Rows carry their own IDs
// and an explicit end time.
type calendarNormalizer struct{}

func (calendarNormalizer) Source() model.SourceType { return model.SourceCalendar }

func (calendarNormalizer) Filename() string { return "calendar.csv" }

func (calendarNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
	id, err := row.Field("event_id")
	if err != nil {
		return model.Event{}, err
	}
	start, err := timestampField(row, "start_time")
	if err != nil {
		return model.Event{}, err
	}
	end, err := timestampField(row, "end_time")
	if err != nil {
		return model.Event{}, err
	}
	title, err := row.Field("title")
	if err != nil {
		return model.Event{}, err
	}

	location := row["location"]

	return model.Event{
		ID:       id,
		Start:    start,
		End:      end,
		Source:   model.SourceCalendar,
		Title:    title,
		Details:  map[string]string{"raw_location": location},
		People:   splitPeople(row["people"], ","),
		Location: location,
	}, nil
}

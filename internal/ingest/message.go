package ingest

import "daylog/internal/model"

func init() {
	model.RegisterNormalizer(messageNormalizer{})
}

// messageNormalizer maps SMS-style message records. Messages are
// instantaneous: end equals start.
type messageNormalizer struct{}

func (messageNormalizer) Source() model.SourceType { return model.SourceMessage }

func (messageNormalizer) Filename() string { return "messages.csv" }

func (messageNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
	id, err := row.Field("id")
	if err != nil {
		return model.Event{}, err
	}
	ts, err := timestampField(row, "timestamp")
	if err != nil {
		return model.Event{}, err
	}
	person, err := row.Field("person")
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{
		ID:     id,
		Start:  ts,
		End:    ts,
		Source: model.SourceMessage,
		Title:  "Message with " + person,
		Details: map[string]string{
			"message_type": row["message_type"],
			"preview":      row["preview"],
		},
		People: []string{person},
	}, nil
}

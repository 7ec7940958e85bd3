package ingest

import (
	"strings"

	"daylog/internal/model"
)

func init() {
	model.RegisterNormalizer(photoNormalizer{})
}

// photoNormalizer maps photo-capture records. The people column holds
// detected faces separated by ";".
type photoNormalizer struct{}

func (photoNormalizer) Source() model.SourceType { return model.SourcePhoto }

func (photoNormalizer) Filename() string { return "photos.csv" }

func (photoNormalizer) Normalize(row model.Row, _ int) (model.Event, error) {
	id, err := row.Field("photo_id")
	if err != nil {
		return model.Event{}, err
	}
	ts, err := timestampField(row, "timestamp")
	if err != nil {
		return model.Event{}, err
	}

	people := splitPeople(row["people"], ";")

	return model.Event{
		ID:       id,
		Start:    ts,
		End:      ts,
		Source:   model.SourcePhoto,
		Title:    "Photo taken",
		Details:  map[string]string{"people_detected": strings.Join(people, ";")},
		People:   people,
		Location: row["location"],
	}, nil
}

// Package ingest provides one normalizer per data source, each converting
// rows of that source's CSV into model.Events. Importing the package
// registers every normalizer; callers go through the model registry and
// never name a source implementation.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"daylog/internal/model"
)

// LoadFile reads one source CSV and normalizes every row. The first
// malformed row aborts the whole file.
func LoadFile(n model.Normalizer, path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", n.Source(), err)
	}
	defer f.Close() //nolint:errcheck

	return Read(n, f)
}

// Read normalizes CSV data from r using n. The first line is the header; row
// indexes reported in errors and used for synthesized IDs are 1-based data
// row numbers.
func Read(n model.Normalizer, r io.Reader) ([]model.Event, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s header: %w", n.Source(), err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var events []model.Event
	for index := 1; ; index++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w: %v", n.Source(), index, model.ErrMalformedRow, err)
		}

		row := make(model.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}

		event, err := n.Normalize(row, index)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", n.Source(), index, err)
		}
		if !event.End.IsZero() && event.End.Before(event.Start) {
			return nil, fmt.Errorf("%s row %d: %w: end precedes start", n.Source(), index, model.ErrMalformedRow)
		}
		events = append(events, event)
	}

	return events, nil
}

// timestampField parses a required timestamp column.
func timestampField(row model.Row, name string) (time.Time, error) {
	value, err := row.Field(name)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := model.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %q: %w", name, err)
	}
	return ts, nil
}

// splitPeople splits a participant list on sep, dropping empty entries.
func splitPeople(value, sep string) []string {
	var people []string
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			people = append(people, part)
		}
	}
	return people
}

package model

import (
	"fmt"
	"sort"
)

// Row is one tabular source record keyed by column name.
type Row map[string]string

// Field returns a required column value from the row.
func (r Row) Field(name string) (string, error) {
	value, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedRow, name)
	}
	return value, nil
}

// Normalizer converts rows of one source's CSV into Events.
// Each source's quirks (direction wording, default durations, synthesized
// IDs) live in its own implementation.
type Normalizer interface {
	// Source identifies the events this normalizer produces.
	Source() SourceType

	// Filename is the CSV file name expected under the data directory.
	Filename() string

	// Normalize maps one row into an Event. index is the 1-based data row
	// number, used for synthesized IDs and error messages.
	Normalize(row Row, index int) (Event, error)
}

var normalizers = map[SourceType]Normalizer{}

// RegisterNormalizer registers a source normalizer. Source packages call this
// from init(); importing a source package for side effects enables it.
func RegisterNormalizer(n Normalizer) {
	normalizers[n.Source()] = n
}

// NormalizerFor returns the normalizer registered for the given source.
func NormalizerFor(source SourceType) (Normalizer, error) {
	n, ok := normalizers[source]
	if !ok {
		return nil, fmt.Errorf("no normalizer registered for source %q", source)
	}
	return n, nil
}

// Normalizers returns all registered normalizers ordered by source tag so
// that loading and per-source counts are deterministic.
func Normalizers() []Normalizer {
	all := make([]Normalizer, 0, len(normalizers))
	for _, n := range normalizers {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Source() < all[j].Source() })
	return all
}

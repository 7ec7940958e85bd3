// Package store loads and normalizes every registered source's CSV from a
// data directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"daylog/internal/ingest"
	"daylog/internal/model"
)

// LoadOptions controls where source data is read from.
type LoadOptions struct {
	Dir string
}

// SourceEvents holds one source's normalized events.
type SourceEvents struct {
	Source model.SourceType `json:"source"`
	Events []model.Event    `json:"events"`
}

// Collection contains every source's events plus non-fatal warnings
// (sources whose file is absent under the data directory).
type Collection struct {
	Sources  []SourceEvents
	Warnings []error
}

// Load reads every registered source's CSV under opts.Dir. A missing source
// file produces a warning and zero events for that source; a malformed row
// fails the whole load immediately.
func Load(opts LoadOptions) (Collection, error) {
	if opts.Dir == "" {
		return Collection{}, errors.New("data directory is required")
	}

	var c Collection
	for _, n := range model.Normalizers() {
		path := filepath.Join(opts.Dir, n.Filename())

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.Warnings = append(c.Warnings, fmt.Errorf("no %s data: %s", n.Source(), path))
				c.Sources = append(c.Sources, SourceEvents{Source: n.Source()})
				continue
			}
			return Collection{}, fmt.Errorf("stat %s: %w", path, err)
		}

		events, err := ingest.LoadFile(n, path)
		if err != nil {
			return Collection{}, err
		}
		c.Sources = append(c.Sources, SourceEvents{Source: n.Source(), Events: events})
	}

	return c, nil
}

// All returns every loaded event across all sources, in registry order.
// Per-day ordering is the day filter's concern, not the store's.
func (c Collection) All() []model.Event {
	var all []model.Event
	for _, s := range c.Sources {
		all = append(all, s.Events...)
	}
	return all
}

// Counts returns the number of loaded events per source, all days included.
func (c Collection) Counts() map[model.SourceType]int {
	counts := make(map[model.SourceType]int, len(c.Sources))
	for _, s := range c.Sources {
		counts[s.Source] = len(s.Events)
	}
	return counts
}

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daylog/internal/model"
)

func testDataDir() string {
	return filepath.Join("..", "..", "testdata", "data")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(LoadOptions{Dir: testDataDir()})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(c.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", c.Warnings)
	}
	if len(c.Sources) != 8 {
		t.Fatalf("expected 8 sources, got %d", len(c.Sources))
	}

	counts := c.Counts()
	want := map[model.SourceType]int{
		model.SourceCalendar: 3,
		model.SourceLocation: 2,
		model.SourceMessage:  1,
		model.SourcePhoto:    1,
		model.SourceHealth:   2,
		model.SourceCall:     1,
		model.SourceGPS:      1,
		model.SourceChat:     2,
	}
	for source, n := range want {
		if counts[source] != n {
			t.Fatalf("source %s: expected %d events, got %d", source, n, counts[source])
		}
	}

	if total := len(c.All()); total != 13 {
		t.Fatalf("expected 13 events in total, got %d", total)
	}
}

func TestLoadMissingFileIsWarning(t *testing.T) {
	dir := t.TempDir()

	// Only one source file present; the other seven are warnings.
	data := "location_id,timestamp_start,timestamp_end,place_name\n" +
		"loc-1,2025-01-01 09:05,2025-01-01 09:50,Park\n"
	writeFile(t, filepath.Join(dir, "locations.csv"), data)

	c, err := Load(LoadOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(c.Warnings) != 7 {
		t.Fatalf("expected 7 warnings, got %d: %v", len(c.Warnings), c.Warnings)
	}
	if counts := c.Counts(); counts[model.SourceLocation] != 1 || counts[model.SourceCalendar] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestLoadFailsFastOnMalformedRow(t *testing.T) {
	dir := t.TempDir()
	data := "location_id,timestamp_start,timestamp_end,place_name\n" +
		"loc-1,garbage,2025-01-01 09:50,Park\n"
	writeFile(t, filepath.Join(dir, "locations.csv"), data)

	_, err := Load(LoadOptions{Dir: dir})
	if err == nil {
		t.Fatal("expected error for malformed row")
	}
	if !strings.Contains(err.Error(), "location") {
		t.Fatalf("error should name the source: %v", err)
	}
}

func TestLoadRequiresDir(t *testing.T) {
	if _, err := Load(LoadOptions{}); err == nil {
		t.Fatal("expected error for empty data directory")
	}
}

package redact

import (
	"strings"
	"testing"
)

func TestSanitizeHealthTitle(t *testing.T) {
	got := Sanitize("Morning health check | HR ~65 bpm | 2500 steps | stress low")

	for _, forbidden := range []string{"bpm", "steps", "stress", "65", "2500"} {
		if strings.Contains(strings.ToLower(got), forbidden) {
			t.Fatalf("sanitized text still contains %q: %q", forbidden, got)
		}
	}
	if strings.Contains(got, "  ") {
		t.Fatalf("whitespace not collapsed: %q", got)
	}
	if got != "Morning health check | low" {
		t.Fatalf("unexpected cleanup result: %q", got)
	}
}

func TestSanitizeRemovals(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"heart rate with unit", "resting at ~70 bpm today", "resting at ~ today"},
		{"step count", "walked 2500 steps before lunch", "walked before lunch"},
		{"vital signs clause", "All good. Vital signs were elevated this morning. Rested after.", "All good. Rested after."},
		{"bare term", "the heart rate looked fine", "the looked fine"},
		{"term is word bounded", "walking through the park", "walking through the park"},
		{"empty input", "", ""},
		{"trailing separator residue", "Night sleep | HR ~58 bpm", "Night sleep |"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Morning health check | HR ~65 bpm | 2500 steps | stress low",
		"Lunch with family at Home",
		"vital signs stable. then a walk",
		"  spaced   out   text  ",
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSanitizeLeavesCleanTextAlone(t *testing.T) {
	clean := "Phone call from Carol"
	if got := Sanitize(clean); got != clean {
		t.Fatalf("clean text was altered: %q", got)
	}
}

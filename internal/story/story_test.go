package story

import (
	"strings"
	"testing"
	"time"

	"daylog/internal/timeline"
)

func summaryAt(hour, minute int, locations, people, titles []string) timeline.Summary {
	start := time.Date(2025, 1, 1, hour, minute, 0, 0, time.UTC)
	return timeline.Summary{
		Start:     start,
		End:       start.Add(30 * time.Minute),
		Locations: locations,
		People:    people,
		Titles:    titles,
		Events:    make(timeline.Session, len(titles)),
	}
}

func TestTimePeriodBuckets(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "in the morning"},
		{11, "in the morning"},
		{12, "in the afternoon"},
		{16, "in the afternoon"},
		{17, "in the evening"},
		{23, "in the evening"},
	}
	for _, tc := range cases {
		if got := timePeriod(time.Date(2025, 1, 1, tc.hour, 0, 0, 0, time.UTC)); got != tc.want {
			t.Fatalf("hour %d: expected %q, got %q", tc.hour, tc.want, got)
		}
	}
}

func TestCleanTitles(t *testing.T) {
	titles := []string{
		"Morning health check | HR ~65 bpm | 2500 steps | stress low",
		"Lunch with family",
		"Lunch with family",
		"At Park",
	}

	got := cleanTitles(titles)

	if strings.ContainsAny(got, "0123456789") {
		t.Fatalf("cleaned titles still contain digits: %q", got)
	}
	// Dedup, first-seen order, at most 3 phrases.
	want := "Morning health check, Lunch with family, At Park"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCleanTitlesDropsFillerAndClinical(t *testing.T) {
	got := cleanTitles([]string{"low | normal | ok | ~ | 42"})
	if got != "" {
		t.Fatalf("expected nothing to survive, got %q", got)
	}
}

func TestNarrativeMentionsSessions(t *testing.T) {
	summaries := []timeline.Summary{
		summaryAt(9, 0, []string{"Park"}, []string{"Alice"}, []string{"Morning walk"}),
		summaryAt(14, 30, nil, nil, []string{"Afternoon rest"}),
	}

	got := Narrative(summaries, "2025-01-01")

	if !strings.Contains(got, "On 2025-01-01") {
		t.Fatalf("narrative missing day label: %q", got)
	}
	if !strings.Contains(got, "in the morning") || !strings.Contains(got, "in the afternoon") {
		t.Fatalf("narrative missing time-of-day phrases: %q", got)
	}
	if !strings.Contains(got, "at Park") {
		t.Fatalf("narrative missing location phrase: %q", got)
	}
	if !strings.Contains(got, "with Alice") {
		t.Fatalf("narrative missing people phrase: %q", got)
	}
	if !strings.Contains(got, "in a familiar place") {
		t.Fatalf("location-less session should use the fallback phrase: %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Fatalf("narrative should keep its closing paragraph: %q", got)
	}
}

func TestNarrativeBoundedToFourSessions(t *testing.T) {
	var summaries []timeline.Summary
	for hour := 8; hour < 14; hour++ {
		summaries = append(summaries, summaryAt(hour, 0, nil, nil, nil))
	}

	got := Narrative(summaries, "2025-01-01")

	if n := strings.Count(got, "During one moment"); n != 4 {
		t.Fatalf("expected 4 moment sentences, got %d: %q", n, got)
	}
}

func TestNarrativeRedactsHealthMetrics(t *testing.T) {
	summaries := []timeline.Summary{
		summaryAt(8, 0, nil, nil, []string{"Morning health check | HR ~65 bpm | 2500 steps"}),
	}

	got := Narrative(summaries, "2025-01-01")
	lowered := strings.ToLower(got)
	for _, forbidden := range []string{"bpm", "65", "2500"} {
		if strings.Contains(lowered, forbidden) {
			t.Fatalf("narrative leaked %q: %q", forbidden, got)
		}
	}
}

func TestNarrativeEmpty(t *testing.T) {
	got := Narrative(nil, "2025-01-01")
	if !strings.Contains(got, "Only a few small moments were recorded on 2025-01-01") {
		t.Fatalf("unexpected empty-day narrative: %q", got)
	}
}

func TestCaregiverSummary(t *testing.T) {
	summaries := []timeline.Summary{
		summaryAt(9, 0, []string{"Park", "Home"}, []string{"Alice"}, []string{"Phone call from Carol"}),
		summaryAt(13, 0, []string{"Home"}, []string{"Bob"}, []string{"WhatsApp message to Alice", "Morning health check"}),
	}

	got := CaregiverSummary(summaries)

	if !strings.Contains(got, "There were 2 recorded activity periods today.") {
		t.Fatalf("missing session count bullet: %q", got)
	}
	if !strings.Contains(got, "Park, Home") {
		t.Fatalf("locations not deduped in first-seen order: %q", got)
	}
	if !strings.Contains(got, "Alice, Bob") {
		t.Fatalf("people not listed: %q", got)
	}
	if !strings.Contains(got, "phone calls and messages") {
		t.Fatalf("communication bullet missing or misordered: %q", got)
	}
	if !strings.Contains(got, "health checks or appointments") {
		t.Fatalf("health bullet missing: %q", got)
	}
	if !strings.Contains(got, "Continue gentle check-ins") {
		t.Fatalf("closing bullet missing: %q", got)
	}
}

func TestCaregiverSummaryLimitsListedItems(t *testing.T) {
	summaries := []timeline.Summary{
		summaryAt(9, 0,
			[]string{"A", "B", "C", "D", "E", "F"},
			[]string{"P1", "P2", "P3", "P4", "P5"},
			nil,
		),
	}

	got := CaregiverSummary(summaries)

	if strings.Contains(got, ", E") {
		t.Fatalf("more than 4 locations listed: %q", got)
	}
	if strings.Contains(got, "P5") {
		t.Fatalf("more than 4 people listed: %q", got)
	}
}

func TestCaregiverSummaryEmpty(t *testing.T) {
	got := CaregiverSummary(nil)
	if !strings.Contains(got, "No specific activities were recorded") {
		t.Fatalf("unexpected empty-day summary: %q", got)
	}
}

func TestTitleSniffersAreLiteral(t *testing.T) {
	if !titleMentionsCalls("phone call from carol") {
		t.Fatal("call sniff failed")
	}
	if titleMentionsCalls("walking in the park") {
		t.Fatal("call sniff false positive")
	}
	if !titleMentionsMessages("whatsapp message to alice") {
		t.Fatal("message sniff failed")
	}
	if !titleMentionsHealth("visit to the clinic") {
		t.Fatal("health sniff failed")
	}
}

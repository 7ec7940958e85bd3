// Package story renders deterministic, template-based prose from session
// summaries. No generative model is involved: every sentence is assembled
// from fixed templates plus sanitized fragments of the underlying data.
package story

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"daylog/internal/redact"
	"daylog/internal/timeline"
)

const clockLayout = "15:04"

// maxMoments bounds how many sessions the narrative describes.
const maxMoments = 4

// maxListed bounds locations and people listed per caregiver bullet.
const maxListed = 4

// fillerTokens are segments never worth showing on their own.
var fillerTokens = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"normal": true,
	"~":      true,
}

// clinicalFragments mark title segments that still look measurement-like
// after sanitization.
var clinicalFragments = []string{"bpm", "hr ", "hr~", "stress", "steps"}

var (
	segmentSeparator = regexp.MustCompile(`[|,;/]`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// timePeriod buckets a session start into a rough time-of-day phrase.
func timePeriod(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "in the morning"
	case h < 17:
		return "in the afternoon"
	default:
		return "in the evening"
	}
}

// cleanTitles extracts up to three gentle activity phrases from raw titles,
// discarding anything numeric, clinical, or filler.
func cleanTitles(titles []string) string {
	var unique []string
	seen := map[string]bool{}

	for _, title := range titles {
		sanitized := redact.Sanitize(title)
		for _, segment := range segmentSeparator.Split(sanitized, -1) {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}

			lowered := strings.ToLower(segment)
			if fillerTokens[lowered] {
				continue
			}
			if containsClinicalFragment(lowered) {
				continue
			}
			if digitPattern.MatchString(segment) {
				continue
			}
			if !containsLetter(segment) || len(segment) < 3 {
				continue
			}

			if !seen[segment] {
				seen[segment] = true
				unique = append(unique, segment)
			}
		}
	}

	if len(unique) > 3 {
		unique = unique[:3]
	}
	return strings.Join(unique, ", ")
}

func containsClinicalFragment(lowered string) bool {
	for _, fragment := range clinicalFragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Narrative renders the day's memory story from session summaries. Only the
// first four sessions are described; the result is passed through the
// sanitizer as a final safety net.
func Narrative(summaries []timeline.Summary, dayLabel string) string {
	if len(summaries) == 0 {
		return fmt.Sprintf(
			"Only a few small moments were recorded on %s, but it was still your day, shaped by your own rhythm and choices.",
			dayLabel,
		)
	}

	intro := fmt.Sprintf("On %s, a few key moments from your day were recorded.", dayLabel)

	var moments []string
	for i, s := range summaries {
		if i >= maxMoments {
			break
		}
		moments = append(moments, momentSentence(s))
	}

	closing := "Even though these notes do not capture every detail, " +
		"they still trace a gentle outline of how you moved through your day."

	// Sanitize per paragraph so the safety-net pass cannot collapse the
	// paragraph break along with ordinary whitespace runs.
	body := redact.Sanitize(intro + " " + strings.Join(moments, " "))
	return body + "\n\n" + redact.Sanitize(closing)
}

func momentSentence(s timeline.Summary) string {
	locPhrase := " in a familiar place"
	if len(s.Locations) > 0 {
		locPhrase = " at " + strings.Join(s.Locations, ", ")
	}

	var peoplePhrase string
	if len(s.People) > 0 {
		peoplePhrase = " with " + strings.Join(s.People, ", ")
	}

	var actPhrase string
	if titles := cleanTitles(s.Titles); titles != "" {
		actPhrase = " while focusing on " + strings.ToLower(titles)
	}

	return fmt.Sprintf(
		"During one moment %s, between %s and %s, you spent time%s%s%s.",
		timePeriod(s.Start),
		s.Start.Format(clockLayout),
		s.End.Format(clockLayout),
		locPhrase,
		peoplePhrase,
		actPhrase,
	)
}

// CaregiverSummary builds a factual bullet-point summary for a caregiver,
// with zero speculation. Every bullet is re-sanitized before emission.
func CaregiverSummary(summaries []timeline.Summary) string {
	if len(summaries) == 0 {
		return "- No specific activities were recorded for this day.\n" +
			"- Continue gentle check-ins as usual."
	}

	var locations, people []string
	var hasHealth, hasMessages, hasCalls bool

	for _, s := range summaries {
		locations = append(locations, s.Locations...)
		people = append(people, s.People...)

		for _, title := range s.Titles {
			lowered := strings.ToLower(title)
			if titleMentionsHealth(lowered) {
				hasHealth = true
			}
			if titleMentionsMessages(lowered) {
				hasMessages = true
			}
			if titleMentionsCalls(lowered) {
				hasCalls = true
			}
		}
	}

	bullets := []string{
		fmt.Sprintf("- There were %d recorded activity periods today.", len(summaries)),
	}

	if unique := uniqueHead(locations, maxListed); len(unique) > 0 {
		bullets = append(bullets, "- Activities took place at locations such as "+strings.Join(unique, ", ")+".")
	}
	if unique := uniqueHead(people, maxListed); len(unique) > 0 {
		bullets = append(bullets, "- Time was spent with "+strings.Join(unique, ", ")+".")
	}

	var comms []string
	if hasCalls {
		comms = append(comms, "phone calls")
	}
	if hasMessages {
		comms = append(comms, "messages")
	}
	if len(comms) > 0 {
		bullets = append(bullets, "- The log for this day includes "+strings.Join(comms, " and ")+" with others.")
	}

	if hasHealth {
		bullets = append(bullets, "- Some entries relate to health checks or appointments earlier in the day (without detailed measurements).")
	}

	bullets = append(bullets, "- Continue gentle check-ins according to the usual routine.")

	for i, bullet := range bullets {
		bullets[i] = redact.Sanitize(bullet)
	}
	return strings.Join(bullets, "\n")
}

// The three sniffers below are literal substring heuristics, not sound
// classifiers. They are kept in named functions so a real classifier could
// replace them without touching the summary assembly.

func titleMentionsHealth(lowered string) bool {
	for _, word := range []string{"health", "doctor", "clinic", "hospital", "appointment", "check"} {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func titleMentionsMessages(lowered string) bool {
	for _, word := range []string{"message", "whatsapp", "text"} {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func titleMentionsCalls(lowered string) bool {
	return strings.Contains(lowered, "call")
}

// uniqueHead deduplicates while preserving first-appearance order and keeps
// at most limit entries.
func uniqueHead(items []string, limit int) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

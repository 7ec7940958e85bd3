// Package redact strips sensitive health-measurement language from text
// headed for human-facing output.
package redact

import (
	"regexp"
	"strings"
)

// forbiddenTerms are bare terms removed wherever they appear as standalone
// words, after the pattern-based removals below have run.
var forbiddenTerms = []string{
	"heart rate",
	"hr",
	"bpm",
	"beats per minute",
	"steps",
	"step count",
	"stress",
}

var (
	heartRatePattern  = regexp.MustCompile(`(?i)\b~?\s*\d+\s*bpm\b`)
	stepCountPattern  = regexp.MustCompile(`(?i)\b\d+\s*steps\b`)
	vitalSignsPattern = regexp.MustCompile(`(?i)vital signs[^.!?]*[.!?]?`)

	// emptySegment matches a "|"-delimited segment whose content is only
	// non-word residue left behind by a removal (spaces, "~", dashes).
	emptySegment = regexp.MustCompile(`\|[^\w|]*\|`)
	// trailingResidue matches non-word residue after a final separator.
	trailingResidue = regexp.MustCompile(`\|[^\w]*$`)

	spaceRun = regexp.MustCompile(`\s{2,}`)

	termPatterns = compileTerms()
)

func compileTerms() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(forbiddenTerms))
	for _, term := range forbiddenTerms {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

// Sanitize removes numeric heart-rate and step-count mentions, clauses
// introduced by "vital signs", and standalone forbidden health terms, then
// cleans up the separators and whitespace the removals leave behind.
//
// The cleanup rule: "|"-delimited segments reduced to non-word residue
// collapse into a single separator, residue after a final separator is
// dropped, whitespace runs collapse to single spaces, and the result is
// trimmed. Sanitize is pure and idempotent; text without sensitive content
// passes through unchanged.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	text = heartRatePattern.ReplaceAllString(text, "")
	text = stepCountPattern.ReplaceAllString(text, "")
	text = vitalSignsPattern.ReplaceAllString(text, "")
	for _, pattern := range termPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	// Collapsing one empty segment can expose another, so run to fixpoint.
	for {
		cleaned := emptySegment.ReplaceAllString(text, "|")
		if cleaned == text {
			break
		}
		text = cleaned
	}
	text = trailingResidue.ReplaceAllString(text, "|")

	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

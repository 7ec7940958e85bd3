// Package view renders a day's sessions as a colored terminal timeline.
package view

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"daylog/internal/model"
	"daylog/internal/redact"
	"daylog/internal/timeline"
)

// Options defines the configurable parameters for rendering a timeline.
type Options struct {
	Summaries    []timeline.Summary
	DayLabel     string
	Wrap         int
	ForceColor   bool
	ForceNoColor bool
	Out          io.Writer
	OutFile      *os.File
}

// Run writes the timeline for one day. An empty summary list renders a
// distinct "no recorded activity" line rather than an empty timeline.
func Run(opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	useColor := resolveColorChoice(opts)
	width := determineWidth(opts.OutFile, opts.Wrap)

	lines := renderTimeline(opts.Summaries, opts.DayLabel, width, useColor)
	return writeLines(opts.Out, lines)
}

func renderTimeline(summaries []timeline.Summary, dayLabel string, width int, useColor bool) []string {
	if width <= 0 {
		width = 80
	}

	header := dayLabel
	if header == "" {
		header = "timeline"
	}

	lines := []string{colorize(useColor, ansiBold, header)}

	if len(summaries) == 0 {
		return append(lines, "  no recorded activity for this day")
	}

	for idx, s := range summaries {
		lines = append(lines, "")
		lines = append(lines, sessionHeader(idx+1, s, useColor))
		for _, event := range s.Events {
			lines = append(lines, eventLine(event, width, useColor))
		}
	}

	return lines
}

func sessionHeader(number int, s timeline.Summary, useColor bool) string {
	span := fmt.Sprintf("%s – %s", s.Start.Format("15:04"), s.End.Format("15:04"))

	header := fmt.Sprintf("Session %d · %s · %s", number, periodLabel(s.Start.Hour()), span)
	if len(s.Locations) > 0 {
		header += " · " + strings.Join(s.Locations, ", ")
	}
	return colorize(useColor, ansiSession, header)
}

func eventLine(event model.Event, width int, useColor bool) string {
	ts := colorize(useColor, ansiTimestamp, event.Start.Format("15:04"))
	source := colorize(useColor, sourceColor(event.Source), fmt.Sprintf("%-8s", event.Source))

	title := redact.Sanitize(event.Title)
	if title == "" {
		title = "(untitled)"
	}
	if len(event.People) > 0 {
		title += " — with " + strings.Join(event.People, ", ")
	}

	// Budget: two-space indent, clock, gap, source column, gap.
	if limit := width - 2 - 5 - 2 - 8 - 2; limit > 8 {
		title = runewidth.Truncate(title, limit, "…")
	}

	return fmt.Sprintf("  %s  %s  %s", ts, source, title)
}

func periodLabel(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func determineWidth(out *os.File, wrap int) int {
	if wrap > 0 {
		return wrap
	}
	if out != nil {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if v, err := strconv.Atoi(colsStr); err == nil && v > 0 {
			return v
		}
	}
	return 80
}

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1;97m"
	ansiSession   = "\x1b[38;5;44m"
	ansiTimestamp = "\x1b[38;5;245m"
	ansiCalendar  = "\x1b[38;5;220m"
	ansiComms     = "\x1b[38;5;207m"
	ansiPlace     = "\x1b[38;5;114m"
	ansiOther     = "\x1b[38;5;240m"
)

func colorize(enabled bool, code string, text string) string {
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

func sourceColor(source model.SourceType) string {
	switch source {
	case model.SourceCalendar:
		return ansiCalendar
	case model.SourceCall, model.SourceMessage, model.SourceChat:
		return ansiComms
	case model.SourceLocation, model.SourceGPS, model.SourcePhoto:
		return ansiPlace
	default:
		return ansiOther
	}
}

func resolveColorChoice(opts Options) bool {
	if opts.ForceColor {
		return true
	}
	if opts.ForceNoColor {
		return false
	}
	return shouldUseColorAuto(opts.Out)
}

func shouldUseColorAuto(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

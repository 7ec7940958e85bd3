// Package format provides output writers for sessions, events, and day
// reports.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"daylog/internal/model"
	"daylog/internal/report"
	"daylog/internal/timeline"
)

const clockLayout = "15:04"

// sessionRecord is the serializable view of a session summary.
type sessionRecord struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	EventCount int      `json:"event_count"`
	Locations  []string `json:"locations,omitempty"`
	People     []string `json:"people,omitempty"`
	Titles     []string `json:"titles,omitempty"`
}

func toRecords(items []timeline.Summary) []sessionRecord {
	records := make([]sessionRecord, 0, len(items))
	for _, item := range items {
		records = append(records, sessionRecord{
			Start:      item.Start.Format(time.RFC3339),
			End:        item.End.Format(time.RFC3339),
			EventCount: len(item.Events),
			Locations:  item.Locations,
			People:     item.People,
			Titles:     item.Titles,
		})
	}
	return records
}

// WriteSessions writes session summaries to w in the requested format.
func WriteSessions(w io.Writer, items []timeline.Summary, includeHeader bool, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		return writeSessionsTable(w, items, includeHeader)
	case "plain":
		return writeSessionsPlain(w, items, includeHeader)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(items))
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, record := range toRecords(items) {
			if err := enc.Encode(record); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeSessionsPlain(w io.Writer, items []timeline.Summary, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "start\tend\tevents\tlocations\tpeople"); err != nil {
			return err
		}
	}

	for _, item := range items {
		line := fmt.Sprintf(
			"%s\t%s\t%d\t%s\t%s",
			item.Start.Format(clockLayout),
			item.End.Format(clockLayout),
			len(item.Events),
			strings.Join(item.Locations, ", "),
			strings.Join(item.People, ", "),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeSessionsTable(w io.Writer, items []timeline.Summary, includeHeader bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 40},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 40},
	})

	if includeHeader {
		tw.AppendHeader(table.Row{"Start", "End", "Events", "Locations", "People"})
	}

	for _, item := range items {
		tw.AppendRow(table.Row{
			item.Start.Format(clockLayout),
			item.End.Format(clockLayout),
			len(item.Events),
			strings.Join(item.Locations, ", "),
			strings.Join(item.People, ", "),
		})
	}

	if len(items) == 0 {
		tw.AppendRow(table.Row{"-", "-", 0, "(no sessions)", "-"})
	}

	_ = tw.Render()
	return nil
}

// WriteEvents writes normalized events to w in the requested format.
func WriteEvents(w io.Writer, events []model.Event, includeHeader bool, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		return writeEventsTable(w, events, includeHeader)
	case "plain":
		return writeEventsPlain(w, events, includeHeader)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, event := range events {
			if err := enc.Encode(event); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeEventsPlain(w io.Writer, events []model.Event, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "start\tsource\tid\ttitle\tlocation\tpeople"); err != nil {
			return err
		}
	}

	for _, event := range events {
		line := fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\t%s",
			event.Start.Format(clockLayout),
			event.Source,
			event.ID,
			escapeNewlines(event.Title),
			event.Location,
			strings.Join(event.People, ", "),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeEventsTable(w io.Writer, events []model.Event, includeHeader bool) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 60},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 6, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 30},
	})

	if includeHeader {
		tw.AppendHeader(table.Row{"Start", "Source", "ID", "Title", "Location", "People"})
	}

	for _, event := range events {
		tw.AppendRow(table.Row{
			event.Start.Format(clockLayout),
			event.Source,
			event.ID,
			escapeNewlines(event.Title),
			event.Location,
			strings.Join(event.People, ", "),
		})
	}

	if len(events) == 0 {
		tw.AppendRow(table.Row{"-", "-", "-", "(no events)", "-", "-"})
	}

	_ = tw.Render()
	return nil
}

// WriteReport writes the day report to w as readable text or indented JSON.
func WriteReport(w io.Writer, rep report.DayReport, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeReportText(w, rep)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeReportText(w io.Writer, rep report.DayReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", rep.Date)
	fmt.Fprintf(&b, "Events on this day: %d\n", rep.TotalEvents)
	fmt.Fprintf(&b, "Sessions: %d\n", rep.SessionCount)

	if len(rep.SourceCounts) > 0 {
		b.WriteString("\nEvents per source (all days):\n")
		for _, n := range model.Normalizers() {
			fmt.Fprintf(&b, "  %-10s %d\n", n.Source(), rep.SourceCounts[n.Source()])
		}
	}

	b.WriteString("\n=== MEMORY STORY ===\n\n")
	b.WriteString(rep.Narrative)
	b.WriteString("\n\n=== CAREGIVER SUMMARY ===\n\n")
	b.WriteString(rep.CaregiverSummary)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", "\\n")
}

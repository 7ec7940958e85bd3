// Package main provides the daylog CLI for reconstructing a person's day
// from personal-data CSV logs.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"daylog/internal/format"
	// Importing ingest registers every source normalizer.
	_ "daylog/internal/ingest"
	"daylog/internal/model"
	"daylog/internal/report"
	"daylog/internal/store"
	"daylog/internal/timeline"
	"daylog/internal/view"
)

var version = "dev"

const defaultDate = "2025-01-01"

var (
	dataDirFlag string
	dateFlag    string
	gapMinutes  int
)

var rootCmd = &cobra.Command{
	Use:     "daylog",
	Short:   "Reconstruct a day from personal data logs into a gentle narrative",
	Version: version,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDirFlag, "data-dir", "",
		"directory containing source CSV files (env: DAYLOG_DATA_DIR, default: data)")
	flags.StringVar(&dateFlag, "date", defaultDate, "target date in YYYY-MM-DD form")
	flags.IntVar(&gapMinutes, "gap-minutes", 60, "gap in minutes used to split sessions")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newTimelineCmd())
}

func main() {
	// A .env next to the binary may provide DAYLOG_DATA_DIR and friends.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "daylog: %v\n", err)
		os.Exit(1)
	}
}

// dataDir returns the data directory from flag, environment, or default.
func dataDir() string {
	if dataDirFlag != "" {
		return dataDirFlag
	}
	if env := os.Getenv("DAYLOG_DATA_DIR"); env != "" {
		return env
	}
	return "data"
}

func targetDay() (time.Time, error) {
	return model.ParseDate(dateFlag)
}

func gapThreshold() time.Duration {
	if gapMinutes < 0 {
		return 0
	}
	return time.Duration(gapMinutes) * time.Minute
}

// loadCollection loads all sources and reports non-fatal warnings on stderr.
func loadCollection(cmd *cobra.Command) (store.Collection, error) {
	c, err := store.Load(store.LoadOptions{Dir: dataDir()})
	if err != nil {
		return store.Collection{}, err
	}

	errs := cmd.ErrOrStderr()
	for _, warn := range c.Warnings {
		fmt.Fprintf(errs, "warning: %v\n", warn) //nolint:errcheck
	}
	return c, nil
}

func newReportCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and print the day report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := targetDay()
			if err != nil {
				return err
			}

			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			rep, err := report.Build(c.All(), c.Counts(), day, gapThreshold())
			if err != nil {
				return err
			}

			return format.WriteReport(cmd.OutOrStdout(), rep, strings.ToLower(formatFlag))
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "text", "output format: text or json")
	return cmd
}

func newSessionsCmd() *cobra.Command {
	var (
		formatFlag string
		noHeader   bool
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List the day's sessions in chronological order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := targetDay()
			if err != nil {
				return err
			}

			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			summaries, err := report.DaySessions(c.All(), day, gapThreshold())
			if err != nil {
				return err
			}

			return format.WriteSessions(cmd.OutOrStdout(), summaries, !noHeader, strings.ToLower(formatFlag))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "table", "output format: table, plain, json, or jsonl")
	flags.BoolVar(&noHeader, "no-header", false, "omit header row for table and plain output")
	return cmd
}

func newEventsCmd() *cobra.Command {
	var (
		formatFlag string
		sourceFlag string
		noHeader   bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the day's normalized events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := targetDay()
			if err != nil {
				return err
			}

			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			events := timeline.FilterDay(c.All(), day)

			if sourceFlag != "" {
				source := model.SourceType(strings.ToLower(sourceFlag))
				if _, err := model.NormalizerFor(source); err != nil {
					return err
				}
				filtered := events[:0:0]
				for _, event := range events {
					if event.Source == source {
						filtered = append(filtered, event)
					}
				}
				events = filtered
			}

			return format.WriteEvents(cmd.OutOrStdout(), events, !noHeader, strings.ToLower(formatFlag))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "table", "output format: table, plain, json, or jsonl")
	flags.StringVar(&sourceFlag, "source", "", "only show events from one source (calendar, location, message, photo, health, call, gps, chat)")
	flags.BoolVar(&noHeader, "no-header", false, "omit header row for table and plain output")
	return cmd
}

func newTimelineCmd() *cobra.Command {
	var (
		wrap         int
		forceColor   bool
		forceNoColor bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Render the day's sessions as a colored terminal timeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if forceColor && forceNoColor {
				return errors.New("--color and --no-color cannot be used together")
			}

			day, err := targetDay()
			if err != nil {
				return err
			}

			c, err := loadCollection(cmd)
			if err != nil {
				return err
			}

			summaries, err := report.DaySessions(c.All(), day, gapThreshold())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			outFile, _ := out.(*os.File)
			return view.Run(view.Options{
				Summaries:    summaries,
				DayLabel:     day.Format("Monday, 2006-01-02"),
				Wrap:         wrap,
				ForceColor:   forceColor,
				ForceNoColor: forceNoColor,
				Out:          out,
				OutFile:      outFile,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&wrap, "wrap", 0, "render width (default: terminal width)")
	flags.BoolVar(&forceColor, "color", false, "force-enable ANSI colors even when stdout is not a TTY")
	flags.BoolVar(&forceNoColor, "no-color", false, "disable ANSI colors regardless of terminal detection")
	return cmd
}

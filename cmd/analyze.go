package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mweber/meetload/internal/calendar"
	"github.com/mweber/meetload/internal/chart"
	"github.com/mweber/meetload/internal/config"
	"github.com/mweber/meetload/internal/metrics"
)

const dateLayout = "2006-01-02"

func newAnalyzeCmd() *cobra.Command {
	var (
		startStr   string
		endStr     string
		calendarID string
		output     string
		configPath string
		noOpen     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze meeting time over a date range",
		Long: `Fetch your calendar events between two dates and report how many
hours went into meetings per response status, inside and outside your
working hours, and what share of the working-hour budget they consumed.
The report is written as an interactive HTML chart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseDateRange(startStr, endStr)
			if err != nil {
				return err
			}

			var cfg *config.Config
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			window, err := cfg.ToWorkWindow()
			if err != nil {
				return err
			}

			if calendarID == "" {
				calendarID = cfg.Calendar
			}
			if output == "" {
				output = cfg.Output
			}

			ctx := context.Background()
			client, err := calendar.NewClient(ctx)
			if err != nil {
				return err
			}

			// Fetch through the end of the last day; the budget counts
			// the end date as a full working day.
			events, err := client.Events(ctx, calendarID, start, end.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}

			report, err := metrics.Aggregate(events, window, start, end)
			if err != nil {
				return err
			}

			for _, status := range calendar.Statuses {
				m := report.ByStatus[status]
				log.Infof("%-9s total %.1fh, working %.1fh, non-working %.1fh, %.1f%% of budget",
					chart.Labels[status], m.TotalHours, m.WorkingHours, m.NonWorkingHours, m.PercentOfBudget)
			}
			log.Infof("Working-hour budget: %.0fh over %d working days", report.BudgetHours, report.WorkingDays)

			if err := chart.WriteHTML(output, report); err != nil {
				return err
			}
			log.Infof("Chart written to %s", output)

			if noOpen {
				return nil
			}
			if err := chart.Open(output); err != nil {
				log.Warnf("Could not open browser: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&startStr, "start", "s", "", "Start date in YYYY-MM-DD format")
	cmd.Flags().StringVarP(&endStr, "end", "e", "", "End date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&calendarID, "calendar", "", "Calendar ID to analyze (default: from config, then 'primary')")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the HTML chart to write (default: from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to an alternate config file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Write the chart without opening a browser")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseDateRange validates both date flags and their ordering before
// any network I/O happens.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: must be in YYYY-MM-DD format", startStr)
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: must be in YYYY-MM-DD format", endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s must not be before start date %s", endStr, startStr)
	}
	return start, end, nil
}

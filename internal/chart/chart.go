package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"

	"github.com/mweber/meetload/internal/calendar"
	"github.com/mweber/meetload/internal/metrics"
)

// Palette maps each response status to its chart color.
var Palette = map[calendar.ResponseStatus]string{
	calendar.StatusAccepted:    "#00B894",
	calendar.StatusDeclined:    "#FF7675",
	calendar.StatusNeedsAction: "#74B9FF",
	calendar.StatusTentative:   "#FDCB6E",
}

// Labels maps each response status to its display name.
var Labels = map[calendar.ResponseStatus]string{
	calendar.StatusAccepted:    "Accepted",
	calendar.StatusDeclined:    "Declined",
	calendar.StatusNeedsAction: "Pending",
	calendar.StatusTentative:   "Tentative",
}

// Render writes the interactive HTML chart for a report to w.
//
// Layout: one column per response status with working and non-working
// hours stacked on the left axis, and the percentage of the working
// budget as a diamond-marked series on the right axis.
func Render(w io.Writer, report metrics.Report) error {
	var (
		labels     []string
		working    []opts.BarData
		nonWorking []opts.BarData
		percents   []opts.LineData
	)

	for _, status := range calendar.Statuses {
		m := report.ByStatus[status]
		color := Palette[status]

		labels = append(labels, Labels[status])
		working = append(working, opts.BarData{
			Value:     m.WorkingHours,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
		nonWorking = append(nonWorking, opts.BarData{
			Value:     m.NonWorkingHours,
			ItemStyle: &opts.ItemStyle{Color: color, Opacity: 0.45},
		})
		percents = append(percents, opts.LineData{
			Value:      m.PercentOfBudget,
			Symbol:     "diamond",
			SymbolSize: 14,
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Meeting Time Analysis"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Meeting Time Analysis",
			Subtitle: fmt.Sprintf("%d working days, %.0f budget hours", report.WorkingDays, report.BudgetHours),
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hours"}),
	)
	bar.ExtendYAxis(opts.YAxis{Name: "% of budget", Type: "value"})

	bar.SetXAxis(labels).
		AddSeries("Working hours", working, charts.WithBarChartOpts(opts.BarChart{Stack: "hours"})).
		AddSeries("Non-working hours", nonWorking, charts.WithBarChartOpts(opts.BarChart{Stack: "hours"}))

	line := charts.NewLine()
	line.SetXAxis(labels).
		AddSeries("% of working budget", percents,
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	bar.Overlap(line)

	return bar.Render(w)
}

// WriteHTML renders the report chart into an HTML file at path.
func WriteHTML(path string, report metrics.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := Render(f, report); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}

// Open opens the rendered chart in the user's browser.
func Open(path string) error {
	return browser.OpenFile(path)
}

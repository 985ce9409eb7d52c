package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mweber/meetload/internal/calendar"
	"github.com/mweber/meetload/internal/metrics"
)

func sampleReport() metrics.Report {
	return metrics.Report{
		ByStatus: map[calendar.ResponseStatus]metrics.StatusMetrics{
			calendar.StatusAccepted:    {TotalHours: 12, WorkingHours: 10, NonWorkingHours: 2, PercentOfBudget: 22.2},
			calendar.StatusDeclined:    {TotalHours: 1, WorkingHours: 1, PercentOfBudget: 2.2},
			calendar.StatusTentative:   {TotalHours: 3, WorkingHours: 2, NonWorkingHours: 1, PercentOfBudget: 4.4},
			calendar.StatusNeedsAction: {},
		},
		WorkingDays: 5,
		BudgetHours: 45,
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport()))

	html := buf.String()
	assert.Contains(t, html, "Meeting Time Analysis")
	for _, status := range calendar.Statuses {
		assert.Contains(t, html, Labels[status])
		assert.Contains(t, html, Palette[status])
	}
	assert.Contains(t, html, "% of working budget")
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPaletteAndLabelsCoverAllStatuses(t *testing.T) {
	for _, status := range calendar.Statuses {
		assert.NotEmpty(t, Palette[status], "missing color for %s", status)
		assert.NotEmpty(t, Labels[status], "missing label for %s", status)
	}
}

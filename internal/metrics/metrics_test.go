package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mweber/meetload/internal/calendar"
)

// 2024-03-05 is a Tuesday, 2024-03-08 a Friday.
func tuesday(hour, min int) time.Time {
	return time.Date(2024, 3, 5, hour, min, 0, 0, time.UTC)
}

func friday(hour, min int) time.Time {
	return time.Date(2024, 3, 8, hour, min, 0, 0, time.UTC)
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  WorkWindow
		wantErr bool
	}{
		{"default is valid", DefaultWorkWindow(), false},
		{"start equals end", WorkWindow{StartHour: 9, EndHour: 9, Weekdays: map[time.Weekday]bool{time.Monday: true}}, true},
		{"start after end", WorkWindow{StartHour: 18, EndHour: 9, Weekdays: map[time.Weekday]bool{time.Monday: true}}, true},
		{"no weekdays", WorkWindow{StartHour: 9, EndHour: 18}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInWorkingHours(t *testing.T) {
	window := DefaultWorkWindow()

	tests := []struct {
		name     string
		start    time.Time
		expected bool
	}{
		{"working day inside window", tuesday(10, 0), true},
		{"start of window is inclusive", tuesday(9, 0), true},
		{"just before window", tuesday(8, 59), false},
		{"last hour of window", tuesday(17, 55), true},
		{"end of window is exclusive", tuesday(18, 0), false},
		{"non-working day inside hours", friday(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, window.InWorkingHours(tt.start))
		})
	}
}

func TestAggregateInvalidWindow(t *testing.T) {
	_, err := Aggregate(nil, WorkWindow{StartHour: 18, EndHour: 9}, day(5), day(5))
	assert.Error(t, err)
}

func TestAggregateEmptyEvents(t *testing.T) {
	report, err := Aggregate(nil, DefaultWorkWindow(), day(5), day(5))
	require.NoError(t, err)

	assert.Len(t, report.ByStatus, len(calendar.Statuses))
	for _, status := range calendar.Statuses {
		m := report.ByStatus[status]
		assert.Zero(t, m.TotalHours)
		assert.Zero(t, m.WorkingHours)
		assert.Zero(t, m.NonWorkingHours)
		assert.Zero(t, m.PercentOfBudget)
	}
}

func TestAggregateAllDayExcluded(t *testing.T) {
	events := []calendar.Event{
		{Summary: "offsite", AllDay: true, Start: day(5), End: day(6), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(5), day(5))
	require.NoError(t, err)
	assert.Zero(t, report.ByStatus[calendar.StatusAccepted].TotalHours)
	assert.Zero(t, report.ByStatus[calendar.StatusAccepted].PercentOfBudget)
}

func TestAggregateDegenerateDurations(t *testing.T) {
	events := []calendar.Event{
		// zero length
		{Start: tuesday(10, 0), End: tuesday(10, 0), Response: calendar.StatusAccepted},
		// negative span, happens in real calendar data
		{Start: tuesday(11, 0), End: tuesday(10, 0), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(5), day(5))
	require.NoError(t, err)
	assert.Zero(t, report.ByStatus[calendar.StatusAccepted].TotalHours)
}

func TestAggregateAcceptedEventOnWorkingDay(t *testing.T) {
	events := []calendar.Event{
		{Summary: "sync", Start: tuesday(10, 0), End: tuesday(11, 0), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(5), day(5))
	require.NoError(t, err)

	m := report.ByStatus[calendar.StatusAccepted]
	assert.Equal(t, 1.0, m.TotalHours)
	assert.Equal(t, 1.0, m.WorkingHours)
	assert.Equal(t, 0.0, m.NonWorkingHours)
}

func TestAggregateEventOnNonWorkingDay(t *testing.T) {
	events := []calendar.Event{
		{Summary: "friday call", Start: friday(10, 0), End: friday(11, 0), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(8), day(8))
	require.NoError(t, err)

	m := report.ByStatus[calendar.StatusAccepted]
	assert.Equal(t, 1.0, m.TotalHours)
	assert.Equal(t, 0.0, m.WorkingHours)
	assert.Equal(t, 1.0, m.NonWorkingHours)
}

func TestAggregateFullBudgetDay(t *testing.T) {
	// One working day: budget is 9 hours, and a 9-hour accepted meeting
	// fills exactly 100% of it.
	events := []calendar.Event{
		{Summary: "marathon", Start: tuesday(9, 0), End: tuesday(18, 0), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(5), day(5))
	require.NoError(t, err)

	assert.Equal(t, 1, report.WorkingDays)
	assert.Equal(t, 9.0, report.BudgetHours)
	assert.Equal(t, 100.0, report.ByStatus[calendar.StatusAccepted].PercentOfBudget)
	for _, status := range []calendar.ResponseStatus{calendar.StatusDeclined, calendar.StatusTentative, calendar.StatusNeedsAction} {
		assert.Zero(t, report.ByStatus[status].PercentOfBudget)
	}
}

func TestAggregateZeroBudget(t *testing.T) {
	// Working weekdays that never occur in the range: budget is 0 and
	// percentages stay 0 instead of dividing by zero.
	window := WorkWindow{
		StartHour: 9,
		EndHour:   18,
		Weekdays:  map[time.Weekday]bool{time.Saturday: true},
	}
	events := []calendar.Event{
		{Start: tuesday(10, 0), End: tuesday(12, 0), Response: calendar.StatusTentative},
	}

	report, err := Aggregate(events, window, day(5), day(5))
	require.NoError(t, err)

	assert.Equal(t, 0, report.WorkingDays)
	assert.Equal(t, 0.0, report.BudgetHours)
	m := report.ByStatus[calendar.StatusTentative]
	assert.Equal(t, 2.0, m.TotalHours)
	assert.Equal(t, 0.0, m.PercentOfBudget)
}

func TestAggregateTotalHoursConserved(t *testing.T) {
	events := []calendar.Event{
		{Start: tuesday(9, 0), End: tuesday(10, 30), Response: calendar.StatusAccepted},
		{Start: tuesday(19, 0), End: tuesday(20, 0), Response: calendar.StatusAccepted},
		{Start: tuesday(11, 0), End: tuesday(11, 45), Response: calendar.StatusDeclined},
		{Start: friday(10, 0), End: friday(12, 0), Response: calendar.StatusTentative},
		{Start: tuesday(15, 0), End: tuesday(15, 20), Response: calendar.StatusNeedsAction},
		{AllDay: true, Start: day(5), Response: calendar.StatusAccepted},
	}

	report, err := Aggregate(events, DefaultWorkWindow(), day(3), day(9))
	require.NoError(t, err)

	wantTotal := 0.0
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		wantTotal += ev.End.Sub(ev.Start).Hours()
	}

	gotTotal := 0.0
	for _, m := range report.ByStatus {
		gotTotal += m.TotalHours
		assert.InDelta(t, m.TotalHours, m.WorkingHours+m.NonWorkingHours, 1e-9)
		assert.GreaterOrEqual(t, m.PercentOfBudget, 0.0)
	}
	assert.InDelta(t, wantTotal, gotTotal, 1e-9)
}

func TestAggregateIdempotent(t *testing.T) {
	events := []calendar.Event{
		{Start: tuesday(9, 0), End: tuesday(10, 30), Response: calendar.StatusAccepted},
		{Start: friday(10, 0), End: friday(12, 0), Response: calendar.StatusTentative},
	}

	first, err := Aggregate(events, DefaultWorkWindow(), day(3), day(9))
	require.NoError(t, err)
	second, err := Aggregate(events, DefaultWorkWindow(), day(3), day(9))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWorkingDays(t *testing.T) {
	window := DefaultWorkWindow()

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single working day", day(5), day(5), 1},
		{"single non-working day", day(8), day(8), 0},
		// Sun 3rd through Sat 9th: Sun-Thu working
		{"full week", day(3), day(9), 5},
		{"end before start", day(9), day(3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, workingDays(window, tt.start, tt.end))
		})
	}
}

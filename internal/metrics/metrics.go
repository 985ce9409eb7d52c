package metrics

import (
	"fmt"
	"time"

	"github.com/mweber/meetload/internal/calendar"
)

// WorkWindow defines what counts as working time: an hour-of-day
// interval [StartHour, EndHour) and a set of working weekdays.
type WorkWindow struct {
	StartHour int
	EndHour   int
	Weekdays  map[time.Weekday]bool
}

// DefaultWorkWindow returns the default window: 9:00-18:00, Sunday
// through Thursday.
func DefaultWorkWindow() WorkWindow {
	return WorkWindow{
		StartHour: 9,
		EndHour:   18,
		Weekdays: map[time.Weekday]bool{
			time.Sunday:    true,
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
		},
	}
}

// Validate reports a configuration error for windows that would
// silently produce zero budgets.
func (w WorkWindow) Validate() error {
	if w.StartHour >= w.EndHour {
		return fmt.Errorf("invalid work window: start hour %d must be before end hour %d", w.StartHour, w.EndHour)
	}
	if len(w.Weekdays) == 0 {
		return fmt.Errorf("invalid work window: no working weekdays configured")
	}
	return nil
}

// HoursPerDay returns the length of the working-hour interval.
func (w WorkWindow) HoursPerDay() float64 {
	return float64(w.EndHour - w.StartHour)
}

// IsWorkingDay reports whether t falls on a working weekday.
func (w WorkWindow) IsWorkingDay(t time.Time) bool {
	return w.Weekdays[t.Weekday()]
}

// InWorkingHours reports whether an event starting at t counts as
// working-hours time. Only the start instant is classified: an event
// starting inside the window is attributed to working hours in full
// even when it runs past EndHour. Known limitation, kept because
// switching to overlap-based accounting would change reported numbers.
func (w WorkWindow) InWorkingHours(t time.Time) bool {
	return w.IsWorkingDay(t) && t.Hour() >= w.StartHour && t.Hour() < w.EndHour
}

// StatusMetrics holds the aggregated meeting time for one response
// status.
type StatusMetrics struct {
	TotalHours      float64
	WorkingHours    float64
	NonWorkingHours float64
	// PercentOfBudget is 100 * WorkingHours / the window's working-hour
	// budget, 0 when the budget is 0.
	PercentOfBudget float64
}

// Report maps each response status to its aggregated metrics. Every
// status has an entry, zero-filled when no events matched it.
type Report struct {
	ByStatus    map[calendar.ResponseStatus]StatusMetrics
	WorkingDays int
	BudgetHours float64
}

// Aggregate computes a Report for the given events over the analysis
// date range [start, end] (inclusive of both days).
//
// All-day events are excluded entirely. Events with zero or negative
// duration contribute nothing; real-world calendar data contains such
// artifacts and they are not an error.
func Aggregate(events []calendar.Event, window WorkWindow, start, end time.Time) (Report, error) {
	if err := window.Validate(); err != nil {
		return Report{}, err
	}

	buckets := make(map[calendar.ResponseStatus]StatusMetrics, len(calendar.Statuses))
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		hours := ev.End.Sub(ev.Start).Hours()
		if hours <= 0 {
			continue
		}

		m := buckets[ev.Response]
		m.TotalHours += hours
		if window.InWorkingHours(ev.Start) {
			m.WorkingHours += hours
		} else {
			m.NonWorkingHours += hours
		}
		buckets[ev.Response] = m
	}

	days := workingDays(window, start, end)
	budget := float64(days) * window.HoursPerDay()

	report := Report{
		ByStatus:    make(map[calendar.ResponseStatus]StatusMetrics, len(calendar.Statuses)),
		WorkingDays: days,
		BudgetHours: budget,
	}
	for _, status := range calendar.Statuses {
		m := buckets[status]
		if budget > 0 {
			m.PercentOfBudget = 100 * m.WorkingHours / budget
		}
		report.ByStatus[status] = m
	}
	return report, nil
}

// workingDays counts the days in [start, end] whose weekday is in the
// working set.
func workingDays(window WorkWindow, start, end time.Time) int {
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if window.IsWorkingDay(d) {
			n++
		}
	}
	return n
}

package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// ResponseStatus is the user's attendance response to a meeting
// invitation as reported by Google Calendar.
type ResponseStatus int

const (
	// StatusNeedsAction means the user has not responded yet. Events
	// without an attendee entry for the user (e.g. self-created events
	// with no invitees) also land here.
	StatusNeedsAction ResponseStatus = iota
	StatusAccepted
	StatusDeclined
	StatusTentative
)

// Statuses lists every response status in a stable order, for callers
// that need one bucket per status.
var Statuses = []ResponseStatus{
	StatusAccepted,
	StatusDeclined,
	StatusNeedsAction,
	StatusTentative,
}

func (s ResponseStatus) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusDeclined:
		return "declined"
	case StatusTentative:
		return "tentative"
	default:
		return "needsAction"
	}
}

// ParseResponseStatus maps a Google Calendar responseStatus string to
// the enum. Unknown or empty values map to StatusNeedsAction.
func ParseResponseStatus(s string) ResponseStatus {
	switch s {
	case "accepted":
		return StatusAccepted
	case "declined":
		return StatusDeclined
	case "tentative":
		return StatusTentative
	default:
		return StatusNeedsAction
	}
}

// Event is a single calendar event within the analysis window.
// Immutable once fetched.
type Event struct {
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Response ResponseStatus
}

// fromGoogleEvent converts a Google Calendar event to the internal
// model. An event is all-day when its start carries a date but no
// dateTime. The response status is taken from the attendee entry
// marked as self; events without one keep StatusNeedsAction.
func fromGoogleEvent(ev *gcal.Event) Event {
	e := Event{Summary: ev.Summary}

	if ev.Start != nil {
		if ev.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
				e.Start = t
			}
		} else if ev.Start.Date != "" {
			e.AllDay = true
			if t, err := time.Parse("2006-01-02", ev.Start.Date); err == nil {
				e.Start = t
			}
		}
	}

	if ev.End != nil && ev.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.End.DateTime); err == nil {
			e.End = t
		}
	}

	for _, att := range ev.Attendees {
		if att.Self {
			e.Response = ParseResponseStatus(att.ResponseStatus)
			break
		}
	}
	return e
}

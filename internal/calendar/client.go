package calendar

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/mweber/meetload/internal/google"
)

// DefaultCalendarID addresses the authenticated user's primary
// calendar.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar Events service
type Client struct {
	svc *gcal.Service
}

// NewClient creates a new Calendar client with OAuth2 authentication.
// It fails if no cached token exists; run `meetload login` first in
// that case.
func NewClient(ctx context.Context) (*Client, error) {
	client, err := google.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found: %w. Run `meetload login` to authenticate", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Events lists all events of a calendar between timeMin and timeMax,
// expanding recurring events into single instances and following page
// tokens until the listing is exhausted. Cancelled events are skipped.
func (c *Client) Events(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Event, error) {
	var events []Event

	pageToken := ""
	for {
		call := c.svc.Events.List(calendarID).
			Context(ctx).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events for calendar %s: %w", calendarID, err)
		}

		for _, item := range res.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, fromGoogleEvent(item))
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	log.Debugf("Fetched %d events from calendar %s between %s and %s",
		len(events), calendarID, timeMin.Format("2006-01-02"), timeMax.Format("2006-01-02"))

	return events, nil
}

// Package calendar provides a client for fetching events from the
// Google Calendar API.
//
// The client lists events of a single calendar over a time window,
// following page tokens and expanding recurring events into single
// instances. API records are converted into the internal Event model:
// all-day events are flagged, and the user's own response status is
// extracted from the attendee list as a closed enumeration.
//
// Authentication:
// This package uses the cached Google OAuth token from the google
// package. Tokens are loaded from the file system (~/.cache/meetload/).
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.Events(ctx, calendar.DefaultCalendarID, from, to)
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar

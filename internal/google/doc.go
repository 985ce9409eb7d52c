// Package google provides OAuth2 authentication and token management
// for the Google Calendar API.
//
// Client credentials are read from ~/.config/meetload/credentials.json
// and the exchanged token is cached in ~/.cache/meetload/google.token.
// Only the read-only calendar scope is requested.
package google

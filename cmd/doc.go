// Package cmd implements the command-line interface for meetload.
//
// This package provides the following commands:
//   - analyze: Fetch calendar events over a date range and chart the meeting load
//   - login: Run the Google OAuth2 flow and cache the token
//   - version: Display version information
//
// The analyze command is the default command when no subcommand is specified.
package cmd

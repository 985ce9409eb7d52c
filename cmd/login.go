package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mweber/meetload/internal/google"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Google Calendar",
		Long: `Run the OAuth2 authorization flow and cache the resulting token.

Requires OAuth client credentials for an installed application in
~/.config/meetload/credentials.json (downloaded from the Google Cloud
console). The token is cached under the user cache directory, so login
is only needed once per machine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasToken() {
				fmt.Println("A cached token already exists; it will be replaced.")
			}

			url, err := google.GetAuthURL()
			if err != nil {
				return err
			}

			fmt.Printf("Visit the following URL to authorize meetload:\n\n  %s\n\n", url)
			fmt.Print("Paste the authorization code here: ")

			var code string
			if _, err := fmt.Scanln(&code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			if err := google.SaveToken(context.Background(), code); err != nil {
				return err
			}

			fmt.Println("Authentication successful, token cached.")
			return nil
		},
	}
	return cmd
}

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetload application
var rootCmd = &cobra.Command{
	Use:   "meetload",
	Short: "Analyzes how much of your working hours go into meetings",
	Long: `meetload fetches your Google Calendar events over a date range and
computes what fraction of your working hours was consumed by meetings,
broken down by response status (accepted, declined, tentative, pending).

The result is rendered as an interactive chart and opened in your
browser.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

var verbose bool

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetload version %s\n" .Version}}`)

	// If no subcommand is provided, run the analyze command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "analyze")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newVersionCmd())
}

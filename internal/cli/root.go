// Package cli provides the command-line interface implementation for hermes_urls.
package cli

import (
	"github.com/spf13/cobra"

	"hermes/internal/logging"
)

var (
	verbose bool
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hermes_urls",
	Short: "Hermes URL Handler",
	Long: `hermes_urls registers custom URL schemes with Windows and dispatches
clicked links to a running Unreal Editor instance, launching the editor
when no instance is running.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(verbose, debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Show help and exit 0 if no subcommand is provided
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "use verbose logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "use debug logging, even more verbose than --verbose")

	// Add subcommands
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(listenCmd)
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hermes/internal/handler"
	"hermes/internal/schema"
)

var listJSON bool

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered URL protocol handlers",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print registrations as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	registrations, err := handler.List()
	if err != nil {
		return fmt.Errorf("failed to list registrations: %w", err)
	}

	if listJSON {
		output := schema.NewOutput("list", "", time.Now())
		output.Registrations = registrations
		return printJSON(output)
	}

	if len(registrations) == 0 {
		fmt.Println("no protocols registered")
		return nil
	}
	for _, registration := range registrations {
		fmt.Println(registration.String())
	}

	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hermes/internal/handler"
	"hermes/internal/protocol"
	"hermes/internal/schema"
)

var unregisterJSON bool

// unregisterCmd represents the unregister command.
var unregisterCmd = &cobra.Command{
	Use:   "unregister <protocol>",
	Short: "Remove all registry entries for a URL protocol handler",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnregister,
}

func init() {
	unregisterCmd.Flags().BoolVar(&unregisterJSON, "json", false, "print the result as JSON")
}

func runUnregister(cmd *cobra.Command, args []string) error {
	scheme, err := protocol.ParseScheme(args[0])
	if err != nil {
		return err
	}

	log.Info().Str("scheme", scheme).Msg("unregistering handler")
	if err := handler.Unregister(scheme); err != nil {
		return fmt.Errorf("failed to unregister %s://: %w", scheme, err)
	}

	if unregisterJSON {
		return printJSON(schema.NewOutput("unregister", scheme, time.Now()))
	}

	return nil
}

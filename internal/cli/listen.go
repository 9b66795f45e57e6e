package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hermes/internal/mailslot"
	"hermes/internal/protocol"
)

// listenCmd represents the listen command, a diagnostic stand-in for the
// engine-side plugin's mailslot receiver.
var listenCmd = &cobra.Command{
	Use:   "listen <protocol>",
	Short: "Receive and print dispatched URL paths (diagnostic)",
	Long: `The listen command creates the scheme's mailslot and prints every path
delivered to it until interrupted. Use it to verify a registration end to
end without the editor running. Only one listener can hold a scheme's
mailslot at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: runListen,
}

func runListen(cmd *cobra.Command, args []string) error {
	scheme, err := protocol.ParseScheme(args[0])
	if err != nil {
		return err
	}

	server, err := mailslot.Listen(scheme)
	if err != nil {
		return fmt.Errorf("failed to listen on %s://: %w", scheme, err)
	}
	defer server.Close()

	log.Info().Str("scheme", scheme).Msg("listening for dispatched paths")
	for {
		payload, err := server.Read()
		if err != nil {
			return fmt.Errorf("failed to read from mailslot: %w", err)
		}
		fmt.Println(string(payload))
	}
}

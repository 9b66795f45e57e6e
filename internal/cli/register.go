package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hermes/internal/handler"
	"hermes/internal/protocol"
	"hermes/internal/schema"
)

var (
	registerWithDebugging bool
	registerJSON          bool
)

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register <protocol> [commandline...]",
	Short: "Register this executable as a URL protocol handler",
	Long: `The register command associates a URL scheme with this executable in the
per-user registry and stores the command line that launches the editor when
no running instance is listening. %1 in the command line is the placeholder
for the URL path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().BoolVar(&registerWithDebugging, "register-with-debugging", false, "enable debug logging for the registered open command")
	registerCmd.Flags().BoolVar(&registerJSON, "json", false, "print the registration result as JSON")
}

func runRegister(cmd *cobra.Command, args []string) error {
	scheme, err := protocol.ParseScheme(args[0])
	if err != nil {
		return err
	}
	commandline := args[1:]

	extraArgs := ""
	if registerWithDebugging {
		extraArgs = "--debug"
	}

	if err := handler.Register(scheme, commandline, extraArgs); err != nil {
		return fmt.Errorf("failed to register command for %s://: %w", scheme, err)
	}

	log.Info().Str("scheme", scheme).Msg("registered URL protocol handler")

	if registerJSON {
		exePath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate own executable: %w", err)
		}

		output := schema.NewOutput("register", scheme, time.Now())
		output.SetRegistration(handler.OpenCommand(exePath, extraArgs), commandline)
		return printJSON(output)
	}

	return nil
}

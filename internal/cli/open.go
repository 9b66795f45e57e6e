package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hermes/internal/core"
	"hermes/internal/handler"
	"hermes/internal/launch"
	"hermes/internal/mailslot"
	"hermes/internal/protocol"
	"hermes/internal/schema"
	"hermes/internal/winutil"
)

var (
	openJSON    bool
	openTimeout time.Duration
)

// openCmd represents the open command.
var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Dispatch a URL to the editor, launching it if needed",
	Long: `The open command parses the given URL, signals a running editor instance
through the scheme's mailslot, and falls back to launching the registered
editor command when no instance is listening.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openJSON, "json", false, "print the dispatch result as JSON")
	openCmd.Flags().DurationVar(&openTimeout, "timeout", 5*time.Second, "per-transport delivery timeout")
}

func runOpen(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parts, err := protocol.Split(rawURL)
	if err != nil {
		return fmt.Errorf("failed to open url %s: %w", rawURL, err)
	}

	log.Trace().
		Str("url", rawURL).
		Str("scheme", parts.Scheme).
		Str("full_path", parts.FullPath).
		Msg("split url")

	command, err := handler.Command(parts.Scheme)
	if err != nil {
		return fmt.Errorf("failed to open url %s: %w", rawURL, err)
	}
	log.Debug().Str("scheme", parts.Scheme).Strs("command", command).Msg("registered handler")

	// Transfer focus "nicely" to the editor we're about to signal or launch.
	if err := winutil.AllowAnyForegroundWindow(); err != nil {
		log.Trace().Err(err).Msg("could not allow foreground transfer")
	}

	dispatcher := core.NewDispatcher(openTimeout, core.SystemClock{})
	dispatcher.Register(mailslotTransport{scheme: parts.Scheme})
	dispatcher.Register(launchTransport{command: command})

	deliveredBy, attempts, err := dispatcher.Dispatch(context.Background(), parts.FullPath)
	if err != nil {
		return fmt.Errorf("failed to open url %s: %w", rawURL, err)
	}

	if openJSON {
		output := schema.NewOutput("open", parts.Scheme, time.Now())
		output.SetDispatch(rawURL, parts.FullPath, deliveredBy, attempts)
		return printJSON(output)
	}

	return nil
}

// mailslotTransport delivers the payload to a running instance's mailslot.
type mailslotTransport struct {
	scheme string
}

func (t mailslotTransport) Name() string {
	return "mailslot"
}

func (t mailslotTransport) Deliver(ctx context.Context, payload string) error {
	err := mailslot.Send(t.scheme, []byte(payload))
	if err == nil {
		log.Trace().Msg("delivered using mailslot")
		return nil
	}
	if errors.Is(err, mailslot.ErrNotRunning) {
		log.Trace().Msg("mailslot not found, assuming application is not running")
		return fmt.Errorf("%v: %w", err, core.ErrNotAvailable)
	}
	// A send failure usually means the application is shutting down; let the
	// launch transport start a new one.
	log.Warn().Err(err).Msg("could not send mailslot message, assuming application is shutting down")
	return err
}

// launchTransport starts the registered editor command with the payload
// substituted for %1.
type launchTransport struct {
	command []string
}

func (t launchTransport) Name() string {
	return "launch"
}

func (t launchTransport) Deliver(ctx context.Context, payload string) error {
	exeName, launchArgs, err := launch.ExpandArgs(t.command, payload)
	if err != nil {
		return err
	}
	return launch.Start(exeName, launchArgs)
}

// Package launch starts the registered editor command when no running
// instance can take a URL.
package launch

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExpandArgs splits a stored launch command into executable and arguments,
// replacing the %1 placeholder in each argument with fullPath. The
// executable itself is never substituted.
func ExpandArgs(command []string, fullPath string) (string, []string, error) {
	if len(command) == 0 {
		return "", nil, fmt.Errorf("empty launch command")
	}

	exeName := command[0]
	args := make([]string, 0, len(command)-1)
	for _, arg := range command[1:] {
		args = append(args, strings.ReplaceAll(arg, "%1", fullPath))
	}

	return exeName, args, nil
}

// Start spawns the command detached, with all standard streams discarded.
// It does not wait for the process to exit.
func Start(exeName string, args []string) error {
	log.Info().Str("exe", exeName).Strs("args", args).Msg("executing launch command")

	cmd := exec.Command(exeName, args...)
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to execute %s %v: %w", exeName, args, err)
	}

	// Let the child outlive us without leaving a zombie behind.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

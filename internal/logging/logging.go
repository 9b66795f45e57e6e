// Package logging configures the global zerolog logger for hermes_urls.
//
// The tool usually runs without a console (invoked by the shell when a link
// is clicked), so everything is appended to hermes.log next to the
// executable. A console writer is added only for verbose and debug runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MaxLogSize is the size at which hermes.log is rotated. We keep one
// current and one old log.
const MaxLogSize = 64 * 1024

const logFileName = "hermes.log"

// Setup initializes the global logger. verbose selects debug level, debug
// selects trace level; debug wins when both are set.
func Setup(verbose, debug bool) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if debug {
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)

	logPath, err := exeRelativePath(logFileName)
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}

	logFile, err := OpenRotated(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	writers := []io.Writer{logFile}
	if verbose || debug {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	return nil
}

// OpenRotated opens path for appending, first rotating it to a .old sibling
// when it has grown past MaxLogSize. If the rename fails (for example, a
// concurrent handler invocation holds the old file), the file is removed;
// if that also fails, it is truncated in place.
func OpenRotated(path string) (*os.File, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		if err := os.Rename(path, oldLogPath(path)); err != nil {
			if err := os.Remove(path); err != nil {
				return os.Create(path)
			}
		}
	}

	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

func oldLogPath(path string) string {
	return path + ".old"
}

func exeRelativePath(filename string) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exePath), filename), nil
}

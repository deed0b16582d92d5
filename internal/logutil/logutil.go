// Package logutil configures the process-wide slog logger for the CLI.
package logutil

import (
	"log/slog"
	"os"
)

// Setup installs a text slog handler on stderr at a level derived from the
// verbosity flags. Quiet wins over verbose.
func Setup(verbose, quiet bool) {
	level := slog.LevelInfo

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

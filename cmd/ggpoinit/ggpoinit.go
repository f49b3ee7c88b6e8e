package main

import (
	"log/slog"
	"os"

	"github.com/ggpo4all/ggpoinit/internal"
	"github.com/ggpo4all/ggpoinit/internal/cli"
	"github.com/ggpo4all/ggpoinit/internal/console"
)

// The entry point for ggpoinit.
//
// Enables ANSI colours on Windows consoles before anything is printed,
// initializes logging and executes the root command. Build failures are
// reported by the command itself; only unexpected errors exit non-zero.
func main() {
	if err := console.EnableVirtualTerminal(); err != nil {
		slog.Warn("ANSI colours unavailable", "error", err)
	}

	cli.LogLevel.Set(logLevel())
	slog.SetDefault(cli.NewLogger(os.Stderr, console.IsTerminal(os.Stderr)))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("ggpoinit is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsVerbose() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}

package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Declaration file path" default:"docconf.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Initialize a new declaration file"`
	Validate ValidateCmd `cmd:"" help:"Load and validate the declaration"`
	Show     ShowCmd     `cmd:"" help:"Print the effective configuration"`
	Render   RenderCmd   `cmd:"" help:"Render conf.py for the documentation renderer"`
	Watch    WatchCmd    `cmd:"" help:"Re-render conf.py whenever the declaration changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

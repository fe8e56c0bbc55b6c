package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cmelnu/docconf/cmd/docconf/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docconf"),
		kong.Description("Manage the build configuration of a Sphinx documentation site."),
		kong.Vars{"version": commands.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

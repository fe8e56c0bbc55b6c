package commands

import (
	"log/slog"

	"github.com/cmelnu/docconf/internal/config"
	"github.com/cmelnu/docconf/internal/sphinx"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string `short:"o" default:"conf.py" help:"Output path for the rendered configuration"`
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if err := sphinx.Write(cfg, r.Output); err != nil {
		return err
	}
	slog.Info("Rendered renderer configuration",
		"output", r.Output,
		"fingerprint", cfg.Snapshot()[:12])
	return nil
}

package commands

import (
	"log/slog"

	"github.com/cmelnu/docconf/internal/config"
)

// ValidateCmd implements the 'validate' command. Load already validates; the
// command exists so CI can gate on the exit code.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	slog.Info("Declaration is valid",
		"path", root.Config,
		"project", cfg.Project,
		"fingerprint", cfg.Snapshot()[:12])
	return nil
}

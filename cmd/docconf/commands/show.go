package commands

import (
	"fmt"
	"os"

	"github.com/cmelnu/docconf/internal/config"
	"gopkg.in/yaml.v3"
)

// ShowCmd prints the effective configuration after defaults are applied.
type ShowCmd struct {
	Format string `short:"f" default:"yaml" help:"Output format" enum:"yaml,fingerprint"`
}

func (s *ShowCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	switch s.Format {
	case "fingerprint":
		fmt.Println(cfg.Snapshot())
	default:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		return enc.Close()
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmelnu/docconf/internal/config"
	"github.com/cmelnu/docconf/internal/sphinx"
	"github.com/cmelnu/docconf/internal/watch"
)

// WatchCmd implements the 'watch' command: render once, then keep the output
// in sync with the declaration until interrupted.
type WatchCmd struct {
	Output string `short:"o" default:"conf.py" help:"Output path for the rendered configuration"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if err := sphinx.Write(cfg, w.Output); err != nil {
		return err
	}
	slog.Info("Initial render complete", "output", w.Output)

	watcher, err := watch.NewConfigWatcher(root.Config, func(cfg *config.BuildConfiguration) error {
		return sphinx.Write(cfg, w.Output)
	})
	if err != nil {
		return err
	}
	watcher.Prime(cfg.Snapshot())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	slog.Info("Shutting down")
	return nil
}

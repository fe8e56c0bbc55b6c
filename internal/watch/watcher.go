// Package watch keeps a rendered conf.py in sync with its declaration file.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/cmelnu/docconf/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// ReloadFunc receives the freshly loaded configuration after a successful
// reload. Returning an error keeps the previous output in place.
type ReloadFunc func(cfg *config.BuildConfiguration) error

// ConfigWatcher monitors the declaration file and triggers debounced reloads.
type ConfigWatcher struct {
	configPath   string
	onReload     ReloadFunc
	watcher      *fsnotify.Watcher
	mu           sync.RWMutex
	stopChan     chan struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration

	lastFingerprint string
}

// NewConfigWatcher creates a watcher for the given declaration file.
func NewConfigWatcher(configPath string, onReload ReloadFunc) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	return &ConfigWatcher{
		configPath:   absPath,
		onReload:     onReload,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 2 * time.Second, // editors fire several events per save
	}, nil
}

// Start begins monitoring the declaration file.
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	// Watch the containing directory; watching the file itself breaks on
	// editors that save via rename.
	configDir := filepath.Dir(cw.configPath)
	if err := cw.watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}

	slog.Info("Watching declaration", "config_path", cw.configPath)

	go cw.watchLoop(ctx)
	go cw.reloadLoop(ctx)

	return nil
}

// Stop stops the watcher and its goroutines.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	close(cw.stopChan)
	if cw.watcher != nil {
		if err := cw.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
	}
	return nil
}

func (cw *ConfigWatcher) watchLoop(ctx context.Context) {
	configFile := filepath.Base(cw.configPath)

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopChan:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write,
				event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("Declaration change detected", "file", event.Name, "op", event.Op.String())
				cw.triggerReload()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Declaration file removed", "file", event.Name)
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

func (cw *ConfigWatcher) reloadLoop(ctx context.Context) {
	var reloadTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return
		case <-cw.stopChan:
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return
		case <-cw.reloadChan:
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(cw.debounceTime, func() {
				if err := cw.performReload(); err != nil {
					slog.Error("Reload failed, keeping last good output", "error", err)
				}
			})
		}
	}
}

// Prime records the fingerprint of the configuration already in effect so
// the first change event is compared against it.
func (cw *ConfigWatcher) Prime(fingerprint string) {
	cw.mu.Lock()
	cw.lastFingerprint = fingerprint
	cw.mu.Unlock()
}

// triggerReload requests a debounced reload; a pending request is enough.
func (cw *ConfigWatcher) triggerReload() {
	select {
	case cw.reloadChan <- struct{}{}:
	default:
	}
}

// performReload loads the declaration and hands it to the reload callback.
// A declaration whose fingerprint matches the previous reload is skipped.
func (cw *ConfigWatcher) performReload() error {
	runID := uuid.NewString()

	cfg, err := config.Load(cw.configPath)
	if err != nil {
		return fmt.Errorf("failed to load declaration: %w", err)
	}

	fingerprint := cfg.Snapshot()
	cw.mu.Lock()
	unchanged := fingerprint == cw.lastFingerprint
	if !unchanged {
		cw.lastFingerprint = fingerprint
	}
	cw.mu.Unlock()
	if unchanged {
		slog.Debug("Declaration unchanged, skipping reload", "run_id", runID)
		return nil
	}

	if err := cw.onReload(cfg); err != nil {
		return fmt.Errorf("reload handler: %w", err)
	}

	slog.Info("Declaration reloaded", "run_id", runID, "fingerprint", fingerprint[:12])
	return nil
}

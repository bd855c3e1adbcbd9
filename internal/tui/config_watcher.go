package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/colonyops/inkwell/internal/core/config"
	"github.com/colonyops/inkwell/internal/core/logging"
)

// configReloadedMsg carries a reloaded config, or the error that kept the
// previous one in place.
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// ConfigWatcher reloads the config file when it changes on disk. The parent
// directory is watched so editors that save by rename are seen.
type ConfigWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
}

// NewConfigWatcher watches path. The directory must exist; the file need not.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &ConfigWatcher{
		watcher:     watcher,
		path:        path,
		debounceDur: 100 * time.Millisecond,
	}, nil
}

// Start returns a command that blocks until the config file changes and
// reports the reloaded config. It returns nil once the watcher is closed.
func (w *ConfigWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				// Editors often write in several steps; let them settle.
				time.Sleep(w.debounceDur)
				w.drain()

				return w.reload()

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				log := logging.Component("config")
				log.Warn().Err(err).Str("path", w.path).Msg("config watcher error")
			}
		}
	}
}

func (w *ConfigWatcher) drain() {
	for {
		select {
		case <-w.watcher.Events:
		default:
			return
		}
	}
}

func (w *ConfigWatcher) reload() configReloadedMsg {
	cfg, err := config.Load(w.path)
	if err != nil {
		return configReloadedMsg{err: err}
	}
	return configReloadedMsg{cfg: cfg}
}

// Close stops the watcher.
func (w *ConfigWatcher) Close() error {
	return w.watcher.Close()
}

package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) (*ConfigWatcher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)
	w.debounceDur = 10 * time.Millisecond
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func startWatcher(w *ConfigWatcher) <-chan tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- w.Start()() }()
	return done
}

func waitMsg(t *testing.T, done <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-done:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher")
		return nil
	}
}

func TestConfigWatcher_Reload(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTheme string
		wantErr   bool
	}{
		{name: "valid", content: "theme: dash-dark\n", wantTheme: "dash-dark"},
		{name: "invalid theme", content: "theme: neon\n", wantErr: true},
		{name: "malformed yaml", content: "theme: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, path := newTestWatcher(t)
			done := startWatcher(w)

			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			msg, ok := waitMsg(t, done).(configReloadedMsg)
			require.True(t, ok)
			if tt.wantErr {
				assert.Error(t, msg.err)
				assert.Nil(t, msg.cfg)
				return
			}
			require.NoError(t, msg.err)
			assert.Equal(t, tt.wantTheme, msg.cfg.Theme)
		})
	}
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	w, path := newTestWatcher(t)
	done := startWatcher(w)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("theme: dash-light\n"), 0o644))

	msg, ok := waitMsg(t, done).(configReloadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, "dash-light", msg.cfg.Theme)
}

func TestConfigWatcher_Close(t *testing.T) {
	w, _ := newTestWatcher(t)
	done := startWatcher(w)

	require.NoError(t, w.Close())
	assert.Nil(t, waitMsg(t, done))
}

func TestNewConfigWatcher_MissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestConfigWatcher_LogsWatchErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	w, path := newTestWatcher(t)
	done := startWatcher(w)

	w.watcher.Errors <- errors.New("event queue overflow")
	require.NoError(t, os.WriteFile(path, []byte("theme: dash-dark\n"), 0o644))

	msg, ok := waitMsg(t, done).(configReloadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	out := buf.String()
	assert.Contains(t, out, "event queue overflow")
	assert.Contains(t, out, `"cmp":"config"`)
	assert.Contains(t, out, `"level":"warn"`)
}

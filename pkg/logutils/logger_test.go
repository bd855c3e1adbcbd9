package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "inkwell.log")

	logger, closer, err := New("info", file)
	require.NoError(t, err)

	logger.Info().Str("cmp", "test").Msg("hello")
	logger.Debug().Msg("filtered")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["cmp"])
	assert.NotContains(t, string(data), "filtered")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}

type countingHook struct{ n *int }

func (h countingHook) Run(*zerolog.Event, zerolog.Level, string) { *h.n++ }

func TestNew_AppliesHooks(t *testing.T) {
	n := 0
	logger, closer, err := New("debug", filepath.Join(t.TempDir(), "x.log"), countingHook{n: &n})
	require.NoError(t, err)
	defer closer()

	logger.Info().Msg("one")
	logger.Warn().Msg("two")
	assert.Equal(t, 2, n)
}

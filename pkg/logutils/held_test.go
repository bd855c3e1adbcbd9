package logutils

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHold(t *testing.T) {
	var direct bytes.Buffer
	base := zerolog.New(&direct).Level(zerolog.InfoLevel)

	logger, held := Hold(base)
	logger.Info().Str("mode", "blur").Msg("starting demo")
	logger.Debug().Msg("filtered")

	assert.Empty(t, direct.String())
	assert.Positive(t, held.Len())

	var out bytes.Buffer
	require.NoError(t, held.Release(&out))
	assert.Contains(t, out.String(), "starting demo")
	assert.Contains(t, out.String(), "mode=")
	assert.NotContains(t, out.String(), "filtered")
	assert.Zero(t, held.Len())
}

func TestHeld_ConcurrentWrites(t *testing.T) {
	h := &Held{}

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Write([]byte("x"))
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, h.Release(&out))
	assert.Len(t, out.String(), 100)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHeld_Release(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty is a no-op", content: ""},
		{name: "writes buffered output", content: "line\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Held{}
			_, _ = h.Write([]byte(tt.content))

			var out bytes.Buffer
			require.NoError(t, h.Release(&out))
			assert.Equal(t, tt.content, out.String())
		})
	}

	t.Run("empty buffer skips the writer", func(t *testing.T) {
		assert.NoError(t, (&Held{}).Release(failingWriter{}))
	})

	t.Run("write errors are returned", func(t *testing.T) {
		h := &Held{}
		_, _ = h.Write([]byte("x"))
		assert.Error(t, h.Release(failingWriter{}))
	})
}

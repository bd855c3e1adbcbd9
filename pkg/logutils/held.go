package logutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Held buffers log output in memory until Release is called. It keeps
// console logs off the screen while a full-screen program owns the terminal.
// Safe for concurrent use.
type Held struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Hold returns a copy of l that writes console formatted output to a new
// Held buffer.
func Hold(l zerolog.Logger) (zerolog.Logger, *Held) {
	h := &Held{}
	return l.Output(zerolog.ConsoleWriter{Out: h, TimeFormat: "15:04:05"}), h
}

func (h *Held) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (h *Held) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Len()
}

// Release writes the buffered output to w and clears the buffer.
func (h *Held) Release(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.buf.Len() == 0 {
		return nil
	}
	_, err := h.buf.WriteTo(w)
	return err
}

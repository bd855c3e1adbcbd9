package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/inkwell/internal/core/notify"
)

// storeChangedMsg tells the model the notification store changed. Events
// holds every mutation since the previous signal.
type storeChangedMsg struct {
	events []notify.Event
}

// ChangeSignal buffers store events and emits coalesced drain signals, so a
// burst of mutations produces a single re-render. Store subscribers run on
// timer goroutines and must never block: push only appends and does a
// non-blocking send.
type ChangeSignal struct {
	mu          sync.Mutex
	events      []notify.Event
	signal      chan struct{}
	unsubscribe func()
}

// subscriber is the part of the notification bus a ChangeSignal needs.
type subscriber interface {
	Subscribe(fn notify.Subscriber) (unsubscribe func())
}

// NewChangeSignal subscribes to src.
func NewChangeSignal(src subscriber) *ChangeSignal {
	c := &ChangeSignal{signal: make(chan struct{}, 1)}
	c.unsubscribe = src.Subscribe(c.push)
	return c
}

func (c *ChangeSignal) push(ev notify.Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()

	select {
	case c.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered events and clears the buffer.
func (c *ChangeSignal) Drain() []notify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) == 0 {
		return nil
	}

	out := make([]notify.Event, len(c.events))
	copy(out, c.events)
	c.events = c.events[:0]
	return out
}

// WaitForSignal blocks until there are events ready to drain.
func (c *ChangeSignal) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-c.signal
		return storeChangedMsg{events: c.Drain()}
	}
}

// Close stops receiving store events.
func (c *ChangeSignal) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

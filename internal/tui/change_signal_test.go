package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inkwell/internal/core/notify"
	tuinotify "github.com/colonyops/inkwell/internal/tui/notify"
	"github.com/colonyops/inkwell/pkg/clock"
)

func newTestBus(opts ...notify.Option) (*tuinotify.Bus, *clock.Fake) {
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return tuinotify.NewBus(notify.NewStore(clk, opts...)), clk
}

func TestChangeSignal_DrainEmpty(t *testing.T) {
	bus, _ := newTestBus()
	c := NewChangeSignal(bus)
	defer c.Close()

	assert.Nil(t, c.Drain())
}

func TestChangeSignal_CoalescesBurst(t *testing.T) {
	bus, _ := newTestBus()
	c := NewChangeSignal(bus)
	defer c.Close()

	bus.Infof("one")
	bus.Infof("two")
	bus.Store().Clear()

	msg := c.WaitForSignal()()
	changed, ok := msg.(storeChangedMsg)
	require.True(t, ok)
	require.Len(t, changed.events, 3)
	assert.Equal(t, notify.EventAdded, changed.events[0].Kind)
	assert.Equal(t, notify.EventCleared, changed.events[2].Kind)

	assert.Nil(t, c.Drain())
	select {
	case <-c.signal:
		t.Fatal("signal should have been consumed")
	default:
	}
}

func TestChangeSignal_ReceivesExpiry(t *testing.T) {
	bus, clk := newTestBus()
	c := NewChangeSignal(bus)
	defer c.Close()

	bus.Infof("short lived")
	clk.Advance(notify.DefaultTTL)

	events := c.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, notify.EventExpired, events[1].Kind)
}

func TestChangeSignal_Close(t *testing.T) {
	bus, _ := newTestBus()
	c := NewChangeSignal(bus)
	c.Close()
	c.Close()

	bus.Infof("ignored")
	assert.Nil(t, c.Drain())
}

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/pkg/clock"
)

func newBus(t *testing.T) (*Bus, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Time{})
	return NewBus(notify.NewStore(clk)), clk
}

func TestBus_Helpers(t *testing.T) {
	bus, _ := newBus(t)

	bus.Successf("saved %d", 3)
	bus.Infof("info")
	bus.Warnf("warn")
	bus.Dangerf("boom")

	items := bus.Store().Items()
	require.Len(t, items, 4)

	assert.Equal(t, notify.VariantSuccess, items[0].Variant)
	assert.Equal(t, "saved 3", items[0].Message)
	assert.Equal(t, notify.RoleLog, items[0].Role)
	assert.Equal(t, notify.VariantInfo, items[1].Variant)
	assert.Equal(t, notify.VariantWarn, items[2].Variant)
	assert.Equal(t, notify.VariantDanger, items[3].Variant)
	assert.Equal(t, notify.RoleAlert, items[3].Role)
}

func TestBus_Publish(t *testing.T) {
	bus, clk := newBus(t)

	id, cancel := bus.Publish(notify.Options{Subject: "Hello", TTL: time.Second})
	assert.Equal(t, "toast-0", id)

	n, ok := bus.Store().Get(id)
	require.True(t, ok)
	assert.Equal(t, "Hello", n.Subject)

	cancel()
	assert.Equal(t, 0, bus.Store().Len())
	assert.Equal(t, 0, clk.Pending())
}

func TestBus_PublishRejected(t *testing.T) {
	bus, _ := newBus(t)

	id, cancel := bus.Publish(notify.Options{})
	assert.Empty(t, id)
	assert.NotPanics(t, func() { cancel() })
	assert.Equal(t, 0, bus.Store().Len())
}

func TestBus_Subscribe(t *testing.T) {
	bus, clk := newBus(t)

	var events []notify.Event
	unsubscribe := bus.Subscribe(func(e notify.Event) { events = append(events, e) })

	bus.Infof("one")
	clk.Advance(notify.DefaultTTL)
	unsubscribe()
	bus.Infof("two")

	assert.Equal(t, []notify.Event{
		{Kind: notify.EventAdded, ID: "toast-0"},
		{Kind: notify.EventExpired, ID: "toast-0"},
	}, events)
}

func TestBus_NilStore(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Infof("dropped")
		bus.Subscribe(func(notify.Event) {})()
	})

	empty := NewBus(nil)
	id, _ := empty.Publish(notify.Options{Message: "x"})
	assert.Empty(t, id)
}

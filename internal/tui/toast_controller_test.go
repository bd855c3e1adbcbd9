package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inkwell/internal/core/notify"
)

func pushToasts(t *testing.T, store *notify.Store, messages ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		id, _ := store.Push(notify.Options{Message: m})
		require.NotEmpty(t, id)
		ids = append(ids, id)
	}
	return ids
}

func paused(store *notify.Store, id string) bool {
	n, ok := store.Get(id)
	return ok && n.Paused
}

func TestToastController_FocusCycle(t *testing.T) {
	bus, _ := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a", "b", "c")
	c := NewToastController(store)

	c.FocusNext()
	assert.Equal(t, ids[2], c.Focused(), "starts at the newest")
	assert.True(t, paused(store, ids[2]))

	c.FocusNext()
	assert.Equal(t, ids[1], c.Focused())
	assert.True(t, paused(store, ids[1]))
	assert.False(t, paused(store, ids[2]), "unfocused toast resumes")

	c.FocusNext()
	c.FocusNext()
	assert.Equal(t, ids[2], c.Focused(), "wraps around")
}

func TestToastController_FocusEmpty(t *testing.T) {
	bus, _ := newTestBus()
	c := NewToastController(bus.Store())
	c.FocusNext()
	assert.Empty(t, c.Focused())
	assert.False(t, c.HasToasts())
}

func TestToastController_BlurResumes(t *testing.T) {
	bus, clk := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a")
	c := NewToastController(store)

	c.FocusNext()
	clk.Advance(time.Minute)
	c.Sync()
	require.True(t, c.HasToasts(), "focused toast does not expire")

	c.Blur()
	assert.Empty(t, c.Focused())
	assert.False(t, paused(store, ids[0]))

	clk.Advance(notify.DefaultTTL)
	c.Sync()
	assert.False(t, c.HasToasts())
}

func TestToastController_Hover(t *testing.T) {
	bus, _ := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a", "b")
	c := NewToastController(store)

	tests := []struct {
		name       string
		hover      string
		wantPaused map[string]bool
	}{
		{"enter first", ids[0], map[string]bool{ids[0]: true, ids[1]: false}},
		{"move to second", ids[1], map[string]bool{ids[0]: false, ids[1]: true}},
		{"leave", "", map[string]bool{ids[0]: false, ids[1]: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Hover(tt.hover)
			assert.Equal(t, tt.hover, c.Hovered())
			for id, want := range tt.wantPaused {
				assert.Equal(t, want, paused(store, id), id)
			}
		})
	}
}

func TestToastController_HoverKeepsFocusedPaused(t *testing.T) {
	bus, _ := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a")
	c := NewToastController(store)

	c.FocusNext()
	c.Hover(ids[0])
	c.Hover("")
	assert.True(t, paused(store, ids[0]), "still focused")

	c.Hover(ids[0])
	c.Blur()
	assert.True(t, paused(store, ids[0]), "still hovered")

	c.Hover("")
	assert.False(t, paused(store, ids[0]))
}

func TestToastController_Dismiss(t *testing.T) {
	bus, _ := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a", "b", "c")
	c := NewToastController(store)

	c.Dismiss()
	assert.Equal(t, []string{ids[0], ids[1]}, toastIDs(c))

	c.FocusNext()
	c.FocusNext()
	require.Equal(t, ids[0], c.Focused())
	c.Dismiss()
	assert.Equal(t, []string{ids[1]}, toastIDs(c))
	assert.Empty(t, c.Focused())

	c.DismissAll()
	assert.False(t, c.HasToasts())

	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_SyncDropsExpiredHover(t *testing.T) {
	bus, _ := newTestBus()
	store := bus.Store()
	ids := pushToasts(t, store, "a")
	c := NewToastController(store)

	c.Hover(ids[0])
	store.Remove(ids[0])
	c.Sync()
	assert.Empty(t, c.Hovered())
}

func toastIDs(c *ToastController) []string {
	out := make([]string, 0, len(c.Toasts()))
	for _, n := range c.Toasts() {
		out = append(out, n.ID)
	}
	return out
}

package tui

import (
	"strings"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/pkg/tuitest"
)

func newTestToastView(t *testing.T) (*ToastView, *ToastController, *notify.Store) {
	t.Helper()
	bus, _ := newTestBus()
	c := NewToastController(bus.Store())
	return NewToastView(c), c, bus.Store()
}

func TestToastView_View_empty(t *testing.T) {
	v, _, _ := newTestToastView(t)
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_variant(t *testing.T) {
	tests := []struct {
		variant notify.Variant
		icon    string
	}{
		{notify.VariantSuccess, styles.IconNotifySuccess},
		{notify.VariantInfo, styles.IconNotifyInfo},
		{notify.VariantWarn, styles.IconNotifyWarning},
		{notify.VariantDanger, styles.IconNotifyDanger},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			v, c, store := newTestToastView(t)
			store.Add(notify.Options{Variant: tt.variant, Message: "test msg"})
			c.Sync()

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_subject_and_message(t *testing.T) {
	v, c, store := newTestToastView(t)
	store.Add(notify.Options{Subject: "Saved", Message: "Your profile was updated"})
	c.Sync()

	lines := strings.Split(tuitest.StripANSI(v.View()), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[1], "Saved")
	assert.Contains(t, lines[2], "Your profile was updated")
}

func TestToastView_View_truncates_long_messages(t *testing.T) {
	v, c, store := newTestToastView(t)
	store.Add(notify.Options{Message: strings.Repeat("x", 200)})
	c.Sync()

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "…")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), toastWidth)
	}
}

func TestToastView_View_paused_icon(t *testing.T) {
	v, c, store := newTestToastView(t)
	store.Add(notify.Options{Message: "hold"})
	c.Sync()
	assert.NotContains(t, v.View(), styles.IconPause)

	c.FocusNext()
	assert.Contains(t, v.View(), styles.IconPause)
}

func TestToastView_View_stacks_multiple(t *testing.T) {
	v, c, store := newTestToastView(t)
	store.Add(notify.Options{Message: "first"})
	store.Add(notify.Options{Variant: notify.VariantDanger, Message: "second"})
	c.Sync()

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	v, _, _ := newTestToastView(t)
	bg := "background content"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))
}

func blankScreen(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestToastView_Overlay_positions_top_right(t *testing.T) {
	v, c, store := newTestToastView(t)
	store.Add(notify.Options{Message: "positioned"})
	c.Sync()

	width, height := 120, 40
	out := tuitest.StripANSI(v.Overlay(blankScreen(width, height), width, height))

	lines := strings.Split(out, "\n")
	toastLine := -1
	for i, line := range lines {
		if strings.Contains(line, "positioned") {
			toastLine = i
			break
		}
	}
	require.NotEqual(t, -1, toastLine, "toast text not found in output lines")
	assert.Less(t, toastLine, height/2, "toast should be in the upper half")
	assert.Greater(t, strings.Index(lines[toastLine], "positioned"), width/2, "toast should be on the right")
}

func TestToastView_ToastAt(t *testing.T) {
	v, c, store := newTestToastView(t)
	first, _ := store.Push(notify.Options{Message: "first"})
	second, _ := store.Push(notify.Options{Message: "second"})
	c.Sync()

	width := 120
	h := lipgloss.Height(v.render()[0])
	x := width - 10

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"above the stack", x, 0, ""},
		{"first toast", x, toastTop, first},
		{"second toast", x, toastTop + h, second},
		{"below the stack", x, toastTop + 2*h, ""},
		{"left of the stack", 0, toastTop, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ToastAt(tt.x, tt.y, width))
		})
	}
}

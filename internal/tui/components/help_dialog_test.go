package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/inkwell/pkg/tuitest"
)

func TestHelpDialog_View(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)

	d := NewHelpDialog("Keys",
		HelpDialogSection{
			Title: "Form",
			Bindings: []key.Binding{
				key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
				disabled,
			},
		},
		HelpDialogSection{
			Title:    "Toasts",
			Bindings: []key.Binding{key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "dismiss"))},
		},
	)

	view := tuitest.StripANSI(d.View())
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "Form")
	assert.Contains(t, view, "next field")
	assert.Contains(t, view, "ctrl+x")
	assert.NotContains(t, view, "hidden")
	assert.Less(t, strings.Index(view, "Form"), strings.Index(view, "Toasts"))
}

func TestFormatKeyDesc_Aligns(t *testing.T) {
	a := tuitest.StripANSI(formatKeyDesc("a", "one"))
	b := tuitest.StripANSI(formatKeyDesc("ctrl+a", "two"))
	assert.Equal(t, strings.Index(a, "one"), strings.Index(b, "two"))
}

func TestCenter(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)
	out := tuitest.StripANSI(Center(bg, "XX", 20, 10))
	lines := strings.Split(out, "\n")
	assert.Equal(t, 9, strings.Index(lines[4], "XX"))
}

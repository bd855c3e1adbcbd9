package tui

import (
	"maps"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/inkwell/internal/core/config"
)

// KeybindingHandler resolves key presses to configured demo actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
	bindings    []key.Binding // sorted by key, for the help line
}

// NewKeybindingHandler creates a handler for the given keybindings.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	keys := slices.Sorted(maps.Keys(keybindings))
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		help := keybindings[k].Help
		if help == "" {
			help = keybindings[k].Action
		}
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, help)))
	}
	return &KeybindingHandler{keybindings: keybindings, bindings: bindings}
}

// Resolve returns the action bound to msg.
func (h *KeybindingHandler) Resolve(msg tea.KeyPressMsg) (string, bool) {
	for _, b := range h.bindings {
		if key.Matches(msg, b) {
			return h.keybindings[b.Keys()[0]].Action, true
		}
	}
	return "", false
}

// Bindings returns the key bindings sorted by key.
func (h *KeybindingHandler) Bindings() []key.Binding {
	return h.bindings
}

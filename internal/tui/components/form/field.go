package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/inkwell/internal/core/validate"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur() tea.Cmd // returns the blur validation, if any
	Focused() bool
	Name() string  // key used in form values and sibling lookups
	Label() string // display label for the field
	Value() any

	// Bind attaches the field to a form: its name for log context and a
	// lookup of sibling values for dynamic schemas.
	Bind(form string, get validate.Getter)
	// Validate starts a validation run for the given event. It returns nil
	// when the field has no validator.
	Validate(ev validate.Event) tea.Cmd
	// Stale reports whether the run stamped stamp was overtaken by a newer
	// run or a value change.
	Stale(stamp uint64) bool
	Errors() []string
}

package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
)

// SubmittedMsg is emitted once a submit passed validation on every field.
type SubmittedMsg struct {
	Form   string
	Values map[string]any
}

// CancelledMsg is emitted when the dialog is cancelled.
type CancelledMsg struct {
	Form string
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields. Submitting validates every field
// with the submit event and completes only when all of them pass.
type Dialog struct {
	fields       []Field
	focusedField int
	submitted    bool
	cancelled    bool
	pending      map[string]bool // fields awaiting their submit validation
	Title        string
}

// NewDialog creates a form dialog with the given fields. The first field is
// focused automatically.
func NewDialog(title string, fields ...Field) *Dialog {
	d := &Dialog{
		fields: fields,
		Title:  title,
	}
	for _, f := range fields {
		f.Bind(title, d.lookup)
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Init returns the focus command of the first field.
func (d *Dialog) Init() tea.Cmd {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField].Focus()
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	switch msg := msg.(type) {
	case ValidatedMsg:
		return d.handleValidated(msg)
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return d.moveFocus(1)
		case "shift+tab", "up":
			return d.moveFocus(-1)
		case "enter":
			return d.Submit()
		case "ctrl+v":
			if len(d.fields) == 0 {
				return d, nil
			}
			return d, d.fields[d.focusedField].Validate(validate.EventUser)
		case "esc":
			d.cancelled = true
			return d, func() tea.Msg { return CancelledMsg{Form: d.Title} }
		}
	}

	return d.updateFocusedField(msg)
}

// Submit validates every field with the submit event. The dialog is
// submitted once all results are in and no field has errors.
func (d *Dialog) Submit() (*Dialog, tea.Cmd) {
	d.submitted = false
	d.pending = make(map[string]bool, len(d.fields))

	var cmds []tea.Cmd
	for _, f := range d.fields {
		if cmd := f.Validate(validate.EventSubmit); cmd != nil {
			d.pending[f.Name()] = true
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) == 0 {
		return d, d.finishSubmit()
	}
	return d, tea.Batch(cmds...)
}

func (d *Dialog) handleValidated(msg ValidatedMsg) (*Dialog, tea.Cmd) {
	var field Field
	for i, f := range d.fields {
		if f.Name() == msg.Field {
			d.fields[i], _ = f.Update(msg)
			field = d.fields[i]
		}
	}

	if d.pending == nil || msg.Event != validate.EventSubmit || !d.pending[msg.Field] {
		return d, nil
	}
	// The value changed while the submit run was in flight; check it again.
	if field != nil && field.Stale(msg.Stamp) {
		if cmd := field.Validate(validate.EventSubmit); cmd != nil {
			return d, cmd
		}
	}
	delete(d.pending, msg.Field)
	if len(d.pending) > 0 {
		return d, nil
	}
	return d, d.finishSubmit()
}

func (d *Dialog) finishSubmit() tea.Cmd {
	d.pending = nil
	for i, f := range d.fields {
		if len(f.Errors()) > 0 {
			return d.focus(i)
		}
	}
	d.submitted = true
	values := d.FormValues()
	return func() tea.Msg { return SubmittedMsg{Form: d.Title, Values: values} }
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	parts := []string{styles.ModalTitleStyle.Render(d.Title), ""}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	button := styles.FormButtonStyle
	if d.Submitting() {
		button = styles.FormButtonFocused
	}
	parts = append(parts, "", button.Render("Submit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of field names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for _, field := range d.fields {
		result[field.Name()] = field.Value()
	}
	return result
}

// Field returns the field with the given name.
func (d *Dialog) Field(name string) (Field, bool) {
	for _, f := range d.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Focused returns the index of the focused field.
func (d *Dialog) Focused() int { return d.focusedField }

// Submitting reports whether submit validations are still in flight.
func (d *Dialog) Submitting() bool { return len(d.pending) > 0 }

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) lookup(name string) (any, bool) {
	f, ok := d.Field(name)
	if !ok {
		return nil, false
	}
	return f.Value(), true
}

func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}
	next := (d.focusedField + delta + len(d.fields)) % len(d.fields)
	return d, d.focus(next)
}

func (d *Dialog) focus(i int) tea.Cmd {
	if i == d.focusedField && d.fields[i].Focused() {
		return nil
	}
	blur := d.fields[d.focusedField].Blur()
	d.focusedField = i
	return tea.Batch(blur, d.fields[i].Focus())
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

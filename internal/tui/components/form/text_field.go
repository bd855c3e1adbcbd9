package form

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
)

// TextFieldOption configures a TextField.
type TextFieldOption func(*TextField)

// WithValidator validates the field with v.
func WithValidator(v validate.Validator) TextFieldOption {
	return func(f *TextField) { f.validation.validator = &v }
}

// WithDefault sets the initial value. The field is dirty once its value
// differs from it.
func WithDefault(s string) TextFieldOption {
	return func(f *TextField) {
		f.initial = s
		f.input.SetValue(s)
	}
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(s string) TextFieldOption {
	return func(f *TextField) { f.input.Placeholder = s }
}

// WithMasked hides the typed characters.
func WithMasked() TextFieldOption {
	return func(f *TextField) { f.input.EchoMode = textinput.EchoPassword }
}

// TextField is a single-line text input with dirty/touched tracking and
// validation.
type TextField struct {
	input   textinput.Model
	name    string
	label   string
	initial string
	focused bool

	validation fieldValidation
}

// NewTextField creates a new single-line text input field.
func NewTextField(name, label string, opts ...TextFieldOption) *TextField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetWidth(40)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Cursor.Blink = false
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	f := &TextField{
		input: ti,
		name:  name,
		label: label,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if m, ok := msg.(ValidatedMsg); ok {
		if m.Field == f.name {
			f.validation.apply(m)
		}
		return f, nil
	}

	if !f.focused {
		return f, nil
	}

	before := f.input.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.input.Value() == before {
		return f, cmd
	}

	if f.input.Value() != f.initial {
		f.validation.dirty = true
	}
	return f, tea.Batch(cmd, f.Validate(validate.EventChange))
}

func (f *TextField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	parts := []string{titleStyle.Render(f.label), f.input.View()}

	errs := f.Errors()
	for _, e := range errs {
		parts = append(parts, styles.FormErrorStyle.Render(validate.Describe(e)))
	}

	borderStyle := styles.FormFieldStyle
	switch {
	case len(errs) > 0:
		borderStyle = styles.FormFieldErrorStyle
	case f.focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur marks the field touched and runs the blur validation.
func (f *TextField) Blur() tea.Cmd {
	if !f.focused {
		return nil
	}
	f.focused = false
	f.input.Blur()
	f.validation.touched = true
	return f.Validate(validate.EventBlur)
}

func (f *TextField) Validate(ev validate.Event) tea.Cmd {
	return f.validation.run(validate.FieldState{
		Name:  f.name,
		Value: f.input.Value(),
		Event: ev,
	})
}

func (f *TextField) Stale(stamp uint64) bool { return f.validation.seq.Stale(stamp) }

func (f *TextField) Bind(form string, get validate.Getter) {
	f.validation.form = form
	f.validation.get = get
}

// Reset restores the initial value and clears validation state.
func (f *TextField) Reset() {
	f.input.SetValue(f.initial)
	f.validation.dirty = false
	f.validation.touched = false
	f.validation.errors = nil
	f.validation.seq.Next() // drop runs still in flight
}

func (f *TextField) Focused() bool    { return f.focused }
func (f *TextField) Name() string     { return f.name }
func (f *TextField) Label() string    { return f.label }
func (f *TextField) Value() any       { return f.input.Value() }
func (f *TextField) Text() string     { return strings.TrimSpace(f.input.Value()) }
func (f *TextField) Dirty() bool      { return f.validation.dirty }
func (f *TextField) Touched() bool    { return f.validation.touched }
func (f *TextField) Errors() []string { return f.validation.errors }

// SetValue replaces the value as if typed by the user, without running
// validation. Runs still in flight are dropped.
func (f *TextField) SetValue(s string) {
	f.input.SetValue(s)
	f.validation.seq.Next()
	if s != f.initial {
		f.validation.dirty = true
	}
}

package form

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/inkwell/internal/core/logging"
	"github.com/colonyops/inkwell/internal/core/validate"
)

// ValidatedMsg carries a finished validation run back to the field that
// started it.
type ValidatedMsg struct {
	Field string
	Event validate.Event
	validate.Stamped
}

// fieldValidation holds the validation state shared by field types.
type fieldValidation struct {
	validator *validate.Validator
	seq       validate.Sequencer
	form      string
	get       validate.Getter

	dirty   bool
	touched bool
	errors  []string
}

// run starts a stamped validation for state. Older runs still in flight are
// discarded when they report back.
func (v *fieldValidation) run(state validate.FieldState) tea.Cmd {
	if v.validator == nil {
		return nil
	}
	state.Get = v.get
	state.Dirty = v.dirty
	state.Touched = v.touched

	ctx := logging.WithField(logging.WithForm(context.Background(), v.form), state.Name)
	exec := v.seq.Run(ctx, *v.validator, state)
	return func() tea.Msg {
		return ValidatedMsg{Field: state.Name, Event: state.Event, Stamped: exec()}
	}
}

// apply records the outcome of a run. It reports false for stale results.
func (v *fieldValidation) apply(msg ValidatedMsg) bool {
	if v.seq.Stale(msg.Stamp) {
		return false
	}
	if msg.Err != nil {
		log := logging.Component("form")
		log.Error().
			Err(msg.Err).
			Str("field", msg.Field).
			Str("event", string(msg.Event)).
			Msg("validation failed to run")
		v.errors = []string{msg.Err.Error()}
		return true
	}
	// A run no rule matched leaves the previous errors in place.
	if msg.Result.Evaluated {
		v.errors = msg.Result.Errors
	}
	return true
}

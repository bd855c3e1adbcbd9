// Package validate decides when a form field should be checked against a
// schema and turns the schema's verdict into a flat list of error strings.
package validate

import (
	"fmt"
	"slices"
)

// Event names the interaction that triggered a validation.
type Event string

const (
	EventSubmit Event = "submit"
	EventBlur   Event = "blur"
	EventChange Event = "change"
	EventUser   Event = "user"
)

// ParseEvent converts a string to an Event.
func ParseEvent(s string) (Event, error) {
	e := Event(s)
	switch e {
	case EventSubmit, EventBlur, EventChange, EventUser:
		return e, nil
	}
	return "", fmt.Errorf("unknown event %q", s)
}

// Getter looks up values outside the field, such as sibling fields, so a
// schema can be resolved dynamically.
type Getter func(key string) (any, bool)

// FieldState is the snapshot of a field handed to a Validator.
type FieldState struct {
	Name    string
	Value   any
	Get     Getter
	Event   Event
	Dirty   bool // value changed from its initial value at least once
	Touched bool // field received and lost focus at least once
}

// Filter is a tri-state condition on a boolean field property.
type Filter uint8

const (
	Any Filter = iota // matches regardless of the property
	Yes               // matches only when the property is true
	No                // matches only when the property is false
)

// When converts a bool into a Filter that requires that exact value.
func When(b bool) Filter {
	if b {
		return Yes
	}
	return No
}

func (f Filter) matches(v bool) bool {
	switch f {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

func (f Filter) String() string {
	switch f {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "any"
	}
}

// rule is one independently filtered attempt within a chain.
type rule struct {
	on        []Event
	ifDirty   Filter
	ifTouched Filter
}

func (r rule) matches(state FieldState) bool {
	if len(r.on) > 0 && !slices.Contains(r.on, state.Event) {
		return false
	}
	return r.ifDirty.matches(state.Dirty) && r.ifTouched.matches(state.Touched)
}

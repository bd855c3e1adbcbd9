package validate

import (
	"context"
	"fmt"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/inkwell/internal/core/logging"
)

// Formatter turns a validation failure into the strings stored on the field.
type Formatter func(criterio.FieldErrors) []string

// Messages is the default Formatter: the raw message of every field error.
func Messages(errs criterio.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Err == nil {
			continue
		}
		out = append(out, fe.Err.Error())
	}
	return out
}

// Config configures a Validator.
type Config struct {
	On          []Event // events that run the check; empty means every event
	IfDirty     Filter
	IfTouched   Filter
	FormatError Formatter // defaults to Messages
	AbortEarly  bool
}

// OrConfig configures an alternative. Alternatives share the schema source,
// formatter and abort policy of the chain they are attached to.
type OrConfig struct {
	On        []Event
	IfDirty   Filter
	IfTouched Filter
}

func (c OrConfig) rule() rule {
	return rule{on: slices.Clone(c.On), ifDirty: c.IfDirty, ifTouched: c.IfTouched}
}

// Result is the outcome of a Validator run.
type Result struct {
	// Evaluated is false when no rule in the chain matched the field state;
	// Errors is nil in that case.
	Evaluated bool
	Errors    []string
}

// Valid reports whether the run produced no errors. A run that was not
// evaluated is considered valid.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Validator gates a schema check on the triggering event and on the field's
// dirty/touched history. Validators are immutable: Or returns a new value, so
// a chain can be shared and extended without affecting other holders.
type Validator struct {
	source     Source
	format     Formatter
	abortEarly bool
	primary    rule
	alts       []rule
}

// New creates a Validator whose schema comes from source.
func New(source Source, cfg Config) Validator {
	format := cfg.FormatError
	if format == nil {
		format = Messages
	}
	return Validator{
		source:     source,
		format:     format,
		abortEarly: cfg.AbortEarly,
		primary: rule{
			on:        slices.Clone(cfg.On),
			ifDirty:   cfg.IfDirty,
			ifTouched: cfg.IfTouched,
		},
	}
}

// NewSchema creates a Validator for a fixed schema.
func NewSchema(s Schema, cfg Config) Validator {
	return New(Static(s), cfg)
}

// Or returns a copy of v with an additional alternative rule. Alternatives
// run after the primary rule, in the order they were added.
func (v Validator) Or(cfg OrConfig) Validator {
	next := v
	next.alts = append(slices.Clone(v.alts), cfg.rule())
	return next
}

// WithAbortEarly returns a copy of v that stops at the first failing check.
func (v Validator) WithAbortEarly(abort bool) Validator {
	next := v
	next.abortEarly = abort
	return next
}

// Alternatives returns the number of rules attached with Or.
func (v Validator) Alternatives() int { return len(v.alts) }

// Validate runs the chain against state.
//
// The primary rule runs first when its filters match. Every alternative is
// then tried in order: a non-empty error list replaces the result and ends
// the loop, an empty list replaces the result only when no errors are held.
// Errors other than validation failures are returned unchanged.
func (v Validator) Validate(ctx context.Context, state FieldState) (Result, error) {
	var res Result

	errs, ok, err := v.run(ctx, v.primary, state)
	if err != nil {
		return Result{}, err
	}
	if ok {
		res = Result{Evaluated: true, Errors: errs}
	}

	for _, alt := range v.alts {
		errs, ok, err := v.run(ctx, alt, state)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			continue
		}
		if len(errs) > 0 {
			res = Result{Evaluated: true, Errors: errs}
			break
		}
		if len(res.Errors) == 0 {
			res = Result{Evaluated: true, Errors: errs}
		}
	}

	log := logging.Component("validate")
	log.Debug().Ctx(ctx).
		Str("event", string(state.Event)).
		Bool("evaluated", res.Evaluated).
		Int("errors", len(res.Errors)).
		Msg("field validated")

	return res, nil
}

// run evaluates a single rule. ok is false when the rule's filters did not
// match.
func (v Validator) run(ctx context.Context, r rule, state FieldState) (errs []string, ok bool, err error) {
	if !r.matches(state) {
		return nil, false, nil
	}
	if v.source == nil {
		return nil, false, fmt.Errorf("validator has no schema")
	}

	schema, err := v.source.Resolve(state.Get)
	if err != nil {
		return nil, false, err
	}

	err = schema.Validate(ctx, state.Value, Options{
		AbortEarly: v.abortEarly,
		Strict:     true,
		Path:       state.Name,
	})
	if err == nil {
		return []string{}, true, nil
	}

	fieldErrs, isValidation := AsValidationError(err)
	if !isValidation {
		return nil, false, err
	}

	formatted := v.format(fieldErrs)
	if formatted == nil {
		formatted = []string{}
	}
	return formatted, true, nil
}

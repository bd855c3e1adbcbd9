package validate

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
)

// Options tune a single schema run.
type Options struct {
	// AbortEarly stops at the first failing check instead of collecting all.
	AbortEarly bool
	// Strict disables coercion: values of the wrong type fail validation.
	Strict bool
	// Path is the field name errors are reported under.
	Path string
}

// Schema checks a value. Validation failures are reported as
// criterio.FieldErrors; any other error is treated as fatal by the gate.
type Schema interface {
	Validate(ctx context.Context, value any, opts Options) error
}

// Source produces the Schema for a field, possibly from external state.
type Source interface {
	Resolve(get Getter) (Schema, error)
}

// ResolverFunc computes a Schema on every run.
type ResolverFunc func(get Getter) (Schema, error)

func (f ResolverFunc) Resolve(get Getter) (Schema, error) { return f(get) }

type staticSource struct{ schema Schema }

func (s staticSource) Resolve(Getter) (Schema, error) { return s.schema, nil }

// Static wraps a fixed Schema as a Source.
func Static(s Schema) Source { return staticSource{schema: s} }

// Func adapts a check function into a Schema. Returning criterio.FieldErrors
// marks a validation failure; a plain error is fatal. Use Fail to build a
// failure from a message.
type Func func(ctx context.Context, value any) error

func (f Func) Validate(ctx context.Context, value any, _ Options) error {
	return f(ctx, value)
}

func (f Func) Resolve(Getter) (Schema, error) { return f, nil }

// Fail returns a validation failure for field carrying msg.
func Fail(field, msg string) error {
	return criterio.NewFieldErrors(field, errors.New(msg))
}

// AsValidationError reports whether err is a validation failure and returns
// its field errors.
func AsValidationError(err error) (criterio.FieldErrors, bool) {
	var fe criterio.FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

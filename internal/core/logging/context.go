package logging

import "context"

type contextKey string

const (
	formKey  contextKey = "form"
	fieldKey contextKey = "field"
)

// WithForm adds a form name to the context.
func WithForm(ctx context.Context, form string) context.Context {
	return context.WithValue(ctx, formKey, form)
}

// WithField adds a field name to the context.
func WithField(ctx context.Context, field string) context.Context {
	return context.WithValue(ctx, fieldKey, field)
}

// GetForm retrieves the form name from the context.
// Returns empty string if not present.
func GetForm(ctx context.Context) string {
	if v, ok := ctx.Value(formKey).(string); ok {
		return v
	}
	return ""
}

// GetField retrieves the field name from the context.
// Returns empty string if not present.
func GetField(ctx context.Context) string {
	if v, ok := ctx.Value(fieldKey).(string); ok {
		return v
	}
	return ""
}

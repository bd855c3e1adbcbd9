package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts form and field names from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if form := GetForm(ctx); form != "" {
		e.Str("form", form)
	}

	if field := GetField(ctx); field != "" {
		e.Str("field", field)
	}
}

package validate

import (
	"context"
	"errors"
	"strings"
)

// TextFunc adapts v into a func(string) error, the validator shape used by
// huh prompts. Errors are rendered with Describe and joined by newlines.
func TextFunc(v Validator, event Event) func(string) error {
	return func(s string) error {
		res, err := v.Validate(context.Background(), FieldState{
			Value:   s,
			Event:   event,
			Dirty:   true,
			Touched: true,
		})
		if err != nil {
			return err
		}
		if res.Valid() {
			return nil
		}
		lines := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			lines[i] = Describe(e)
		}
		return errors.New(strings.Join(lines, "\n"))
	}
}

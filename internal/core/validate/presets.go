package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
)

// Preset schemas shared by the sign-up and account forms.
var (
	Email    = String().Email(MsgEmail)
	Password = String().Min(10, MsgMin)
	URL      = String().URL(MsgURL)

	DisplayName = String().
			Matches(regexp.MustCompile(`^\w`), Text("Your display name must start with a letter, a number, or an underscore")).
			Matches(displayNameRe, illegalChars).
			Min(2, MsgMin).
			Max(39, MsgMax).
			Required(Text("Required"))
)

var displayNameRe = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)

func illegalChars(p MessageParams) string {
	var seen []rune
	for _, r := range p.OriginalValue {
		if displayNameRe.MatchString(string(r)) || slices.Contains(seen, r) {
			continue
		}
		seen = append(seen, r)
	}
	return "Your display name contains illegal characters: " + string(seen)
}

var presets = map[string]StringSchema{
	"display-name": DisplayName,
	"email":        Email,
	"password":     Password,
	"url":          URL,
}

// LookupPreset returns the preset schema registered under name.
func LookupPreset(name string) (StringSchema, bool) {
	s, ok := presets[name]
	return s, ok
}

// PresetNames returns the sorted names accepted by LookupPreset.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validation modes select between Default, OnBlur and OnChange.
const (
	ModeSubmit = "submit"
	ModeBlur   = "blur"
	ModeChange = "change"
)

// ForMode returns the preset constructor for a validation mode.
func ForMode(mode string) (func(Source, OrConfig) Validator, error) {
	switch mode {
	case ModeSubmit:
		return Default, nil
	case ModeBlur:
		return OnBlur, nil
	case ModeChange:
		return OnChange, nil
	}
	return nil, fmt.Errorf("unknown mode %q (available: %s, %s, %s)", mode, ModeSubmit, ModeBlur, ModeChange)
}

// DefaultOn are the events the Default preset validates on.
var DefaultOn = []Event{EventSubmit, EventUser}

// Default validates on submit and user events and reports errors as JSON
// encoded Issues. Non-empty fields of cfg override the defaults.
func Default(source Source, cfg OrConfig) Validator {
	return New(source, Config{
		On:          firstNonEmpty(cfg.On, DefaultOn),
		IfDirty:     cfg.IfDirty,
		IfTouched:   cfg.IfTouched,
		FormatError: FormatJSON,
	})
}

// OnBlur is Default plus an alternative that validates touched fields when
// they lose focus.
func OnBlur(source Source, cfg OrConfig) Validator {
	return Default(source, OrConfig{}).Or(merge(OrConfig{
		On:        []Event{EventBlur},
		IfTouched: Yes,
	}, cfg))
}

// OnChange is Default plus an alternative that validates touched fields on
// every change and blur.
func OnChange(source Source, cfg OrConfig) Validator {
	return Default(source, OrConfig{}).Or(merge(OrConfig{
		On:        []Event{EventBlur, EventChange},
		IfTouched: Yes,
	}, cfg))
}

func merge(base, over OrConfig) OrConfig {
	base.On = firstNonEmpty(over.On, base.On)
	if over.IfDirty != Any {
		base.IfDirty = over.IfDirty
	}
	if over.IfTouched != Any {
		base.IfTouched = over.IfTouched
	}
	return base
}

func firstNonEmpty(a, b []Event) []Event {
	if len(a) > 0 {
		return a
	}
	return b
}

// Issue is a single validation failure in the JSON error format.
type Issue struct {
	Type    string `json:"type,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Detail decodes the issue message when it was produced by a JSON preset.
func (i Issue) Detail() (MessageDetail, bool) { return ParseDetail(i.Message) }

// Text is a human readable rendering of the issue.
func (i Issue) Text() string {
	if d, ok := i.Detail(); ok {
		return d.Text()
	}
	return i.Message
}

// Text is a human readable rendering of the detail.
func (d MessageDetail) Text() string {
	if d.AriaLabel != "" {
		return d.AriaLabel
	}
	switch d.Type {
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	default:
		return fmt.Sprintf("Invalid value (%s).", d.Type)
	}
}

// FormatJSON is a Formatter that encodes every field error as an Issue.
func FormatJSON(errs criterio.FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Err == nil {
			continue
		}
		issue := Issue{Path: fe.Field, Message: fe.Err.Error()}
		var ce CheckError
		if errors.As(fe.Err, &ce) {
			issue.Type = ce.Type
		}
		b, err := json.Marshal(issue)
		if err != nil {
			out = append(out, fe.Err.Error())
			continue
		}
		out = append(out, string(b))
	}
	return out
}

// ParseErrors decodes errors produced by FormatJSON.
func ParseErrors(errs []string) ([]Issue, error) {
	issues := make([]Issue, 0, len(errs))
	for i, s := range errs {
		var issue Issue
		if err := json.Unmarshal([]byte(s), &issue); err != nil {
			return nil, fmt.Errorf("parse error %d: %w", i, err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// Describe renders an error string for display. JSON issues and JSON preset
// messages are decoded; anything else is returned as is.
func Describe(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if !strings.HasPrefix(trimmed, "{") {
		return msg
	}
	var issue Issue
	if err := json.Unmarshal([]byte(trimmed), &issue); err == nil && issue.Message != "" {
		return issue.Text()
	}
	if d, ok := ParseDetail(trimmed); ok {
		return d.Text()
	}
	return msg
}

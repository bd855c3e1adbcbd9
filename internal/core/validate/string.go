package validate

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

var (
	// emailRe follows the WHATWG definition of a valid email address.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	urlRe   = regexp.MustCompile(`^(?i:https?|ftp)://[^\s/$.?#][^\s]*$`)
)

// CheckError is the error stored in a criterio.FieldError by the built-in
// schemas. Type names the failing check.
type CheckError struct {
	Type    string
	Message string
}

func (e CheckError) Error() string { return e.Message }

type check struct {
	kind         string
	skipEmpty    bool
	test         func(string) bool
	message      Message
	defaultMsg   func(MessageParams) string
	configureMsg func(*MessageParams)
}

// StringSchema validates string values with an ordered list of checks.
// Build one with String and chain checks; every method returns a new schema.
type StringSchema struct {
	label    string
	required *check
	checks   []check
}

// String starts an empty string schema.
func String() StringSchema { return StringSchema{} }

// Label sets the human readable name passed to messages.
func (s StringSchema) Label(label string) StringSchema {
	s.label = label
	return s
}

// Required fails on missing or empty values.
func (s StringSchema) Required(msg Message) StringSchema {
	s.required = &check{
		kind:       "required",
		message:    msg,
		defaultMsg: func(p MessageParams) string { return fmt.Sprintf("%s is a required field", p.name()) },
	}
	return s
}

// Min requires at least n characters.
func (s StringSchema) Min(n int, msg Message) StringSchema {
	return s.with(check{
		kind:         "min",
		test:         func(v string) bool { return utf8.RuneCountInString(v) >= n },
		message:      msg,
		defaultMsg:   func(p MessageParams) string { return fmt.Sprintf("%s must be at least %d characters", p.name(), n) },
		configureMsg: func(p *MessageParams) { p.Min = n },
	})
}

// Max allows at most n characters.
func (s StringSchema) Max(n int, msg Message) StringSchema {
	return s.with(check{
		kind:         "max",
		test:         func(v string) bool { return utf8.RuneCountInString(v) <= n },
		message:      msg,
		defaultMsg:   func(p MessageParams) string { return fmt.Sprintf("%s must be at most %d characters", p.name(), n) },
		configureMsg: func(p *MessageParams) { p.Max = n },
	})
}

// Matches requires the value to match re. Empty values are tested too.
func (s StringSchema) Matches(re *regexp.Regexp, msg Message) StringSchema {
	return s.with(check{
		kind:    "matches",
		test:    re.MatchString,
		message: msg,
		defaultMsg: func(p MessageParams) string {
			return fmt.Sprintf("%s must match the following: %q", p.name(), p.Regex)
		},
		configureMsg: func(p *MessageParams) { p.Regex = re.String() },
	})
}

// Email requires a valid email address. Empty values pass.
func (s StringSchema) Email(msg Message) StringSchema {
	return s.with(check{
		kind:         "email",
		skipEmpty:    true,
		test:         emailRe.MatchString,
		message:      msg,
		defaultMsg:   func(p MessageParams) string { return fmt.Sprintf("%s must be a valid email", p.name()) },
		configureMsg: func(p *MessageParams) { p.Regex = emailRe.String() },
	})
}

// URL requires an http, https or ftp URL. Empty values pass.
func (s StringSchema) URL(msg Message) StringSchema {
	return s.with(check{
		kind:         "url",
		skipEmpty:    true,
		test:         urlRe.MatchString,
		message:      msg,
		defaultMsg:   func(p MessageParams) string { return fmt.Sprintf("%s must be a valid URL", p.name()) },
		configureMsg: func(p *MessageParams) { p.Regex = urlRe.String() },
	})
}

func (s StringSchema) with(c check) StringSchema {
	checks := make([]check, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	s.checks = append(checks, c)
	return s
}

// Resolve makes a StringSchema usable as its own Source.
func (s StringSchema) Resolve(Getter) (Schema, error) { return s, nil }

// Validate implements Schema. A nil value is treated as absent: only
// Required can fail it. In strict mode any non-string value fails.
func (s StringSchema) Validate(ctx context.Context, value any, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	field := opts.Path
	if field == "" {
		field = "value"
	}

	var (
		str    string
		absent bool
	)
	switch v := value.(type) {
	case nil:
		absent = true
	case string:
		str = v
	default:
		if opts.Strict {
			return criterio.NewFieldErrors(field, CheckError{Type: "typeError", Message: fmt.Sprintf("%s must be a `string` type", s.nameOr(field))})
		}
		str = fmt.Sprint(v)
	}

	var errs criterio.FieldErrorsBuilder
	fail := func(c check) {
		params := MessageParams{OriginalValue: str, Label: s.label, Path: field}
		if c.configureMsg != nil {
			c.configureMsg(&params)
		}
		msg := c.defaultMsg(params)
		if c.message != nil {
			msg = c.message(params)
		}
		errs = errs.Append(field, CheckError{Type: c.kind, Message: msg})
	}

	if s.required != nil && (absent || str == "") {
		fail(*s.required)
		if opts.AbortEarly {
			return errs.ToError()
		}
	}

	if absent {
		return errs.ToError()
	}

	for _, c := range s.checks {
		if c.skipEmpty && str == "" {
			continue
		}
		if c.test(str) {
			continue
		}
		fail(c)
		if opts.AbortEarly {
			break
		}
	}

	return errs.ToError()
}

func (s StringSchema) nameOr(field string) string {
	if s.label != "" {
		return s.label
	}
	return field
}

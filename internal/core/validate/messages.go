package validate

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// MessageParams are handed to a Message when a check fails.
type MessageParams struct {
	OriginalValue string
	Label         string
	Path          string
	Min           int
	Max           int
	Regex         string
}

func (p MessageParams) name() string {
	switch {
	case p.Label != "":
		return p.Label
	case p.Path != "":
		return p.Path
	default:
		return "this field"
	}
}

// Message renders the error text for a failed check.
type Message func(MessageParams) string

// Text returns a Message that always renders s.
func Text(s string) Message {
	return func(MessageParams) string { return s }
}

// MessageDetail is the payload encoded by the JSON message presets.
type MessageDetail struct {
	Type          string `json:"type"`
	Min           int    `json:"min,omitempty"`
	Max           int    `json:"max,omitempty"`
	Regex         string `json:"regex,omitempty"`
	Label         string `json:"label,omitempty"`
	Path          string `json:"path,omitempty"`
	OriginalValue string `json:"originalValue"`
	AriaLabel     string `json:"aria-label,omitempty"`
}

func encodeDetail(d MessageDetail) string {
	b, err := json.Marshal(d)
	if err != nil {
		// MessageDetail only holds strings and ints.
		panic(fmt.Sprintf("validate: marshal message detail: %v", err))
	}
	return string(b)
}

// MsgMin encodes a min-length failure as JSON with an accessible summary.
func MsgMin(p MessageParams) string {
	return encodeDetail(MessageDetail{
		Type:          "min",
		Min:           p.Min,
		Label:         p.Label,
		Path:          p.Path,
		OriginalValue: p.OriginalValue,
		AriaLabel: fmt.Sprintf(
			"The minimum number of characters required by this field is: %d. The current value contains %d characters.",
			p.Min, utf8.RuneCountInString(p.OriginalValue),
		),
	})
}

// MsgMax encodes a max-length failure as JSON with an accessible summary.
func MsgMax(p MessageParams) string {
	return encodeDetail(MessageDetail{
		Type:          "max",
		Max:           p.Max,
		Label:         p.Label,
		Path:          p.Path,
		OriginalValue: p.OriginalValue,
		AriaLabel: fmt.Sprintf(
			"The maximum number of characters allowed for this field is: %d. The current value contains %d characters.",
			p.Max, utf8.RuneCountInString(p.OriginalValue),
		),
	})
}

// MsgEmail encodes an email failure as JSON.
func MsgEmail(p MessageParams) string {
	return encodeDetail(MessageDetail{
		Type:          "email",
		Regex:         p.Regex,
		Label:         p.Label,
		Path:          p.Path,
		OriginalValue: p.OriginalValue,
	})
}

// MsgURL encodes a URL failure as JSON.
func MsgURL(p MessageParams) string {
	return encodeDetail(MessageDetail{
		Type:          "url",
		Regex:         p.Regex,
		Label:         p.Label,
		Path:          p.Path,
		OriginalValue: p.OriginalValue,
	})
}

// MsgURLFor is MsgURL reported under a fixed field name.
func MsgURLFor(field string) Message {
	return func(p MessageParams) string {
		p.Path = field
		return MsgURL(p)
	}
}

// ParseDetail decodes a message produced by one of the JSON presets.
func ParseDetail(msg string) (MessageDetail, bool) {
	var d MessageDetail
	if err := json.Unmarshal([]byte(msg), &d); err != nil || d.Type == "" {
		return MessageDetail{}, false
	}
	return d, true
}

// Package notify implements the toast notification store: an ordered set of
// transient notifications, each with its own pausable expiration timer.
package notify

import (
	"fmt"
	"time"
)

// DefaultTTL is the lifetime given to notifications that do not set one.
const DefaultTTL = 6500 * time.Millisecond

// Variant controls how a notification is presented.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantInfo    Variant = "info"
	VariantDanger  Variant = "danger"
	VariantWarn    Variant = "warn"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantSuccess, VariantInfo, VariantDanger, VariantWarn:
		return true
	}
	return false
}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown variant %q", s)
	}
	return v, nil
}

// Role governs how assertively consumers announce a notification.
//   - RoleAlert interrupts whatever is being announced.
//   - RoleLog waits for the current announcement to finish.
type Role string

const (
	RoleAlert Role = "alert"
	RoleLog   Role = "log"
)

// Options describe a notification to add. At least one of Subject or Message
// must be set. Zero values fall back to the store defaults.
type Options struct {
	TTL     time.Duration
	Variant Variant
	Role    Role
	Subject string
	Message string
}

// Validate checks the invariants a notification must satisfy.
func (o Options) Validate() error {
	if o.Subject == "" && o.Message == "" {
		return fmt.Errorf("subject or message is required")
	}
	if o.TTL < 0 {
		return fmt.Errorf("ttl must not be negative")
	}
	if o.Variant != "" && !o.Variant.Valid() {
		return fmt.Errorf("unknown variant %q", o.Variant)
	}
	if o.Role != "" && o.Role != RoleAlert && o.Role != RoleLog {
		return fmt.Errorf("unknown role %q", o.Role)
	}
	return nil
}

// Notification is a snapshot of an active notification.
type Notification struct {
	ID        string
	Variant   Variant
	Role      Role
	Subject   string
	Message   string
	TTL       time.Duration // remaining lifetime as of StartedAt
	StartedAt time.Time
	Paused    bool
}

// Deadline returns the instant the notification expires, or the zero time
// while it is paused.
func (n Notification) Deadline() time.Time {
	if n.Paused {
		return time.Time{}
	}
	return n.StartedAt.Add(n.TTL)
}

// CancelFunc dismisses a notification. Calling it more than once is a no-op.
type CancelFunc func()

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRemoved EventKind = "removed"
	EventExpired EventKind = "expired"
	EventPaused  EventKind = "paused"
	EventResumed EventKind = "resumed"
	EventCleared EventKind = "cleared"
)

// Event describes a single store mutation. ID is empty for EventCleared.
type Event struct {
	Kind EventKind
	ID   string
}

// Subscriber is invoked after every store mutation.
type Subscriber func(Event)

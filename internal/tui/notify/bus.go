// Package notify is the producer side of toast notifications. Components
// publish through a Bus instead of touching the store directly.
package notify

import (
	"fmt"

	"github.com/colonyops/inkwell/internal/core/notify"
)

// Bus publishes notifications into a notify.Store. A Bus with a nil store
// drops everything, which keeps callers free of nil checks.
type Bus struct {
	store *notify.Store
}

// NewBus creates a notification bus backed by the given store.
func NewBus(store *notify.Store) *Bus {
	return &Bus{store: store}
}

// Store returns the backing store.
func (b *Bus) Store() *notify.Store { return b.store }

// Publish adds a notification and returns its id and cancel function. The
// id is empty when the store rejected the notification.
func (b *Bus) Publish(opts notify.Options) (string, notify.CancelFunc) {
	if b == nil || b.store == nil {
		return "", func() {}
	}

	return b.store.Push(opts)
}

// Subscribe registers fn for every store mutation.
func (b *Bus) Subscribe(fn notify.Subscriber) (unsubscribe func()) {
	if b == nil || b.store == nil {
		return func() {}
	}
	return b.store.Subscribe(fn)
}

// Successf publishes a success notification.
func (b *Bus) Successf(format string, args ...any) notify.CancelFunc {
	return b.publishf(notify.VariantSuccess, format, args...)
}

// Infof publishes an info notification.
func (b *Bus) Infof(format string, args ...any) notify.CancelFunc {
	return b.publishf(notify.VariantInfo, format, args...)
}

// Warnf publishes a warning notification.
func (b *Bus) Warnf(format string, args ...any) notify.CancelFunc {
	return b.publishf(notify.VariantWarn, format, args...)
}

// Dangerf publishes a danger notification. Danger notifications use the
// alert role so they interrupt pending announcements.
func (b *Bus) Dangerf(format string, args ...any) notify.CancelFunc {
	return b.publishf(notify.VariantDanger, format, args...)
}

func (b *Bus) publishf(variant notify.Variant, format string, args ...any) notify.CancelFunc {
	role := notify.RoleLog
	if variant == notify.VariantDanger {
		role = notify.RoleAlert
	}
	_, cancel := b.Publish(notify.Options{
		Variant: variant,
		Role:    role,
		Message: fmt.Sprintf(format, args...),
	})
	return cancel
}

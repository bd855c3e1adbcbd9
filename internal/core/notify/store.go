package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/inkwell/internal/core/logging"
	"github.com/colonyops/inkwell/pkg/clock"
)

type entry struct {
	Notification
	timer clock.Timer
	gen   uint64 // bumped whenever the timer is replaced or cancelled
}

// Store holds the ordered list of visible notifications and their timers.
// A zero Store has no timer facility: Add is a no-op that returns an inert
// CancelFunc.
type Store struct {
	mu          sync.Mutex
	clock       clock.Clock
	defaultTTL  time.Duration
	maxVisible  int
	nextID      uint64
	entries     []*entry
	subscribers map[int]Subscriber
	nextSub     int
	log         zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultTTL sets the lifetime used when Options.TTL is zero.
func WithDefaultTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.defaultTTL = d
		}
	}
}

// WithMaxVisible caps the number of notifications. When exceeded the oldest
// notification is removed. Zero means unlimited.
func WithMaxVisible(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.maxVisible = n
		}
	}
}

// NewStore creates a store that schedules expirations on clk. A nil clock
// produces a store that silently ignores Add.
func NewStore(clk clock.Clock, opts ...Option) *Store {
	s := &Store{
		clock:      clk,
		defaultTTL: DefaultTTL,
		log:        logging.Component("notify"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a notification and starts its expiration timer. The returned
// CancelFunc stops the timer and removes the notification.
func (s *Store) Add(opts Options) CancelFunc {
	_, cancel := s.Push(opts)
	return cancel
}

// Push is Add that also returns the assigned ID. The ID is empty when the
// notification was rejected.
func (s *Store) Push(opts Options) (string, CancelFunc) {
	if s.clock == nil {
		return "", func() {}
	}

	if err := opts.Validate(); err != nil {
		s.log.Warn().Err(err).Msg("notification rejected")
		return "", func() {}
	}

	if opts.TTL == 0 {
		opts.TTL = s.ttlOrDefault()
	}
	if opts.Variant == "" {
		opts.Variant = VariantInfo
	}
	if opts.Role == "" {
		opts.Role = RoleAlert
	}

	s.mu.Lock()
	id := fmt.Sprintf("toast-%d", s.nextID)
	s.nextID++

	e := &entry{
		Notification: Notification{
			ID:        id,
			Variant:   opts.Variant,
			Role:      opts.Role,
			Subject:   opts.Subject,
			Message:   opts.Message,
			TTL:       opts.TTL,
			StartedAt: s.clock.Now(),
		},
	}
	s.schedule(e)
	s.entries = append(s.entries, e)

	events := []Event{{Kind: EventAdded, ID: id}}
	for s.maxVisible > 0 && len(s.entries) > s.maxVisible {
		oldest := s.entries[0]
		s.stop(oldest)
		s.entries = s.entries[1:]
		events = append(events, Event{Kind: EventRemoved, ID: oldest.ID})
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("id", id).
		Str("variant", string(opts.Variant)).
		Dur("ttl", opts.TTL).
		Msg("notification added")

	s.emit(events...)

	var once sync.Once
	return id, func() {
		once.Do(func() { s.Remove(id) })
	}
}

// PauseTimeout stops the expiration timer of id and records the remaining
// lifetime. It does nothing when id is unknown or already paused.
func (s *Store) PauseTimeout(id string) {
	s.mu.Lock()
	e := s.find(id)
	if e == nil || e.timer == nil {
		s.mu.Unlock()
		return
	}

	s.stop(e)
	elapsed := s.clock.Now().Sub(e.StartedAt)
	e.TTL -= elapsed
	if e.TTL < 0 {
		e.TTL = 0
	}
	e.Paused = true
	s.mu.Unlock()

	s.emit(Event{Kind: EventPaused, ID: id})
}

// ResumeTimeout restarts the expiration timer of id with its remaining
// lifetime. It does nothing when id is unknown or its timer is running.
func (s *Store) ResumeTimeout(id string) {
	s.mu.Lock()
	e := s.find(id)
	if e == nil || e.timer != nil {
		s.mu.Unlock()
		return
	}

	e.StartedAt = s.clock.Now()
	e.Paused = false
	s.schedule(e)
	s.mu.Unlock()

	s.emit(Event{Kind: EventResumed, ID: id})
}

// Remove cancels the timer of id and deletes it, keeping the relative order
// of the remaining notifications.
func (s *Store) Remove(id string) {
	if s.remove(id, 0, false) {
		s.emit(Event{Kind: EventRemoved, ID: id})
	}
}

// Clear removes every notification and cancels their timers.
func (s *Store) Clear() {
	s.mu.Lock()
	for _, e := range s.entries {
		s.stop(e)
	}
	s.entries = nil
	s.mu.Unlock()

	s.emit(Event{Kind: EventCleared})
}

// Items returns a snapshot of the notifications in insertion order.
func (s *Store) Items() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Notification
	}
	return out
}

// Get returns the notification with the given id.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.find(id); e != nil {
		return e.Notification, true
	}
	return Notification{}, false
}

// Len returns the number of visible notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subscribe registers fn to receive every mutation event. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribers == nil {
		s.subscribers = make(map[int]Subscriber)
	}
	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, key)
	}
}

func (s *Store) ttlOrDefault() time.Duration {
	if s.defaultTTL > 0 {
		return s.defaultTTL
	}
	return DefaultTTL
}

// schedule arms a fresh timer for e. Caller must hold s.mu.
func (s *Store) schedule(e *entry) {
	e.gen++
	gen, id := e.gen, e.ID
	e.timer = s.clock.AfterFunc(e.TTL, func() { s.expire(id, gen) })
}

// stop cancels the timer of e. Caller must hold s.mu.
func (s *Store) stop(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (s *Store) expire(id string, gen uint64) {
	if s.remove(id, gen, true) {
		s.log.Debug().Str("id", id).Msg("notification expired")
		s.emit(Event{Kind: EventExpired, ID: id})
	}
}

// remove deletes id. When checkGen is set the entry is only removed if its
// timer generation still matches, so a timer that lost a race with pause or
// resume cannot remove a notification it no longer owns.
func (s *Store) remove(id string, gen uint64, checkGen bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx == -1 {
		return false
	}
	e := s.entries[idx]
	if checkGen && (e.gen != gen || e.timer == nil) {
		return false
	}

	s.stop(e)
	s.entries = slices.Delete(s.entries, idx, idx+1)
	return true
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.entries, func(e *entry) bool { return e.ID == id })
}

func (s *Store) find(id string) *entry {
	if idx := s.index(id); idx != -1 {
		return s.entries[idx]
	}
	return nil
}

func (s *Store) emit(events ...Event) {
	s.mu.Lock()
	subs := make([]Subscriber, 0, len(s.subscribers))
	keys := make([]int, 0, len(s.subscribers))
	for k := range s.subscribers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		subs = append(subs, s.subscribers[k])
	}
	s.mu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}

package validate

import (
	"context"
	"sync/atomic"
)

// Sequencer stamps validation runs so a caller can drop results that were
// overtaken by a newer run. The zero value is ready to use.
type Sequencer struct {
	seq atomic.Uint64
}

// Next starts a run and returns its stamp.
func (s *Sequencer) Next() uint64 { return s.seq.Add(1) }

// Current returns the stamp of the latest run.
func (s *Sequencer) Current() uint64 { return s.seq.Load() }

// Stale reports whether stamp was superseded by a newer run.
func (s *Sequencer) Stale(stamp uint64) bool { return stamp != s.seq.Load() }

// Stamped is a Result tagged with the run that produced it.
type Stamped struct {
	Stamp  uint64
	Result Result
	Err    error
}

// Run stamps a new run and returns a function that executes it. The returned
// function is safe to call from another goroutine.
func (s *Sequencer) Run(ctx context.Context, v Validator, state FieldState) func() Stamped {
	stamp := s.Next()
	return func() Stamped {
		res, err := v.Validate(ctx, state)
		return Stamped{Stamp: stamp, Result: res, Err: err}
	}
}

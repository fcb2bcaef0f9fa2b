// SPDX-License-Identifier: MIT

package stepper

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Observer receives the live field after every completed step of Run.
// The field is owned by the stepper: clone it to keep a snapshot.
// Returning an error aborts Run.
type Observer interface {
	OnStep(step int, f *VelocityField) error
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(step int, f *VelocityField) error

// OnStep calls fn(step, f).
func (fn ObserverFunc) OnStep(step int, f *VelocityField) error { return fn(step, f) }

// Option configures a Stepper via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Stepper.
type Options struct {
	// Ctx allows an external cancellation, checked once per step by Run.
	Ctx context.Context

	// Workers is the number of goroutines sharing the interior rows of one step.
	// 1 keeps the update sequential.
	Workers int

	// Observers are notified, in registration order, after every step of Run.
	Observers []Observer

	// CheckFinite rejects NaN/±Inf after each step with ErrNonFinite.
	CheckFinite bool

	// Logger receives structured progress records.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background() (never cancels),
//   - one worker (sequential update),
//   - no observers,
//   - no divergence check,
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Workers:     1,
		Observers:   nil,
		CheckFinite: false,
		Logger:      zap.NewNop(),
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation of Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers splits the interior rows of each step across n goroutines.
//
//	n >= 1: use n workers (capped at the number of interior rows)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithObserver registers an Observer called after every step of Run.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithOnStep registers a callback to run after every step; returning an
// error from this callback stops Run.
func WithOnStep(fn func(step int, f *VelocityField) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observers = append(o.Observers, ObserverFunc(fn))
		}
	}
}

// WithFiniteCheck toggles the post-step NaN/±Inf diagnostic.
func WithFiniteCheck(on bool) Option {
	return func(o *Options) { o.CheckFinite = on }
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

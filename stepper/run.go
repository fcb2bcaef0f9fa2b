// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Run invokes Step exactly Params().Steps times on f, notifying every
// observer after each step with the running step count.
// There is no convergence test and no early exit other than an error,
// an observer abort (ErrObserver) or cancellation of the configured context.
func (s *Stepper) Run(f *VelocityField) error {
	if err := f.validate(s.params.NY, s.params.NX); err != nil {
		return err
	}
	ctx := s.opts.Ctx
	start := time.Now()
	s.log.Info("run started",
		zap.Int("steps", s.params.Steps),
		zap.Float64("dt", s.params.Dt),
		zap.Float64("nu", s.params.Nu),
		zap.Int("workers", s.opts.Workers),
	)

	for n := 0; n < s.params.Steps; n++ {
		// cancellation check (once per step)
		select {
		case <-ctx.Done():
			s.log.Info("run canceled", zap.Int("completed", s.completed), zap.Error(ctx.Err()))
			return ctx.Err()
		default:
		}

		if err := s.Step(f); err != nil {
			return err
		}
		s.log.Debug("step done", zap.Int("step", s.completed))
		if err := s.notify(f); err != nil {
			return err
		}
	}

	s.log.Info("run finished",
		zap.Int("completed", s.completed),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// notify calls every observer in registration order.
func (s *Stepper) notify(f *VelocityField) error {
	for _, obs := range s.opts.Observers {
		if err := obs.OnStep(s.completed, f); err != nil {
			return fmt.Errorf("%w at step %d: %w", ErrObserver, s.completed, err)
		}
	}

	return nil
}

// Result is the output handed to downstream analysis:
// the final field plus the coordinate vectors of its columns (X) and rows (Y).
type Result struct {
	Field *VelocityField
	X     []float64 // NX points on [0, LX]
	Y     []float64 // NY points on [0, LY]
	Steps int       // steps actually executed
}

// Simulate runs the whole pipeline for p: seed the field, run p.Steps steps,
// and return the final field with its coordinates.
//
// Example:
//
//	res, err := stepper.Simulate(stepper.DefaultParams())
//	if err != nil {
//	  // handle ErrInvalidParams, ErrNonFinite, ...
//	}
//	u := res.Field.U // ny×nx
func Simulate(p GridParameters, opts ...Option) (*Result, error) {
	f, err := NewField(p)
	if err != nil {
		return nil, err
	}
	s, err := New(p, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.Run(f); err != nil {
		return nil, err
	}
	x, y := p.Coordinates()

	return &Result{Field: f, X: x, Y: y, Steps: s.Completed()}, nil
}

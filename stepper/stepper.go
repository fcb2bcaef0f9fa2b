// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blayer/matrix"
)

// Stepper advances a VelocityField one explicit time step at a time.
// It owns the previous-step snapshot buffers (un, vn) so Step never
// allocates and never reads partially updated values.
type Stepper struct {
	params GridParameters
	opts   Options
	log    *zap.Logger

	// precomputed coefficients
	nuDt     float64
	dx, dy   float64
	dx2, dy2 float64

	un, vn    *matrix.Dense
	completed int
}

// New validates p and opts and allocates the snapshot buffers.
// Returns ErrGridTooSmall / ErrInvalidParams for bad parameters and
// ErrOptionViolation for bad options.
// Complexity: O(nx×ny) memory.
func New(p GridParameters, opts ...Option) (*Stepper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	un, err := matrix.NewDense(p.NY, p.NX)
	if err != nil {
		return nil, err
	}
	vn, err := matrix.NewDense(p.NY, p.NX)
	if err != nil {
		return nil, err
	}

	dx, dy := p.DX(), p.DY()

	return &Stepper{
		params: p,
		opts:   o,
		log:    o.Logger.With(zap.Int("nx", p.NX), zap.Int("ny", p.NY)),
		nuDt:   p.Nu * p.Dt,
		dx:     dx,
		dy:     dy,
		dx2:    dx * dx,
		dy2:    dy * dy,
		un:     un,
		vn:     vn,
	}, nil
}

// Params returns the parameters the stepper was built with.
func (s *Stepper) Params() GridParameters { return s.params }

// Completed reports how many steps have been executed so far.
func (s *Stepper) Completed() int { return s.completed }

// Step advances f by one time step in place and re-applies the boundary
// conditions. f must be NY×NX in both components.
//
// Stage 1 (Validate): non-nil field with the configured shape.
// Stage 2 (Snapshot): un ← U, vn ← V.
// Stage 3 (Interior): stencil update for 1 ≤ j ≤ ny-2, 1 ≤ i ≤ nx-2.
// Stage 4 (Boundaries): unconditional overwrite of all four edges.
// Stage 5 (Diagnose): optional NaN/±Inf check.
//
// Complexity: O(nx×ny).
func (s *Stepper) Step(f *VelocityField) error {
	if err := f.validate(s.params.NY, s.params.NX); err != nil {
		return err
	}
	if err := s.un.CopyFrom(f.U); err != nil {
		return err
	}
	if err := s.vn.CopyFrom(f.V); err != nil {
		return err
	}

	u, v := f.U.RawData(), f.V.RawData()
	parallelRows(1, s.params.NY-1, s.opts.Workers, func(j int) {
		s.updateRow(j, u, v)
	})

	if err := applyBoundaries(f, s.params); err != nil {
		return err
	}
	s.completed++

	if s.opts.CheckFinite {
		if err := checkFinite(f); err != nil {
			s.log.Warn("velocity field diverged", zap.Int("step", s.completed), zap.Error(err))
			return fmt.Errorf("%w: step %d: %w", ErrNonFinite, s.completed, err)
		}
	}

	return nil
}

// updateRow writes the new interior values of row j into u and v, reading
// only the snapshot. The arithmetic order is fixed so sequential and
// parallel runs agree bit for bit.
func (s *Stepper) updateRow(j int, u, v []float64) {
	nx := s.params.NX
	un, vn := s.un.RawData(), s.vn.RawData()
	dt, nuDt := s.params.Dt, s.nuDt
	dx, dy, dx2, dy2 := s.dx, s.dy, s.dx2, s.dy2

	row := j * nx
	north := row + nx // j+1
	south := row - nx // j-1
	for i := 1; i < nx-1; i++ {
		c := row + i
		uc, vc := un[c], vn[c]

		u[c] = uc + nuDt*(
			(un[north+i]-2*uc+un[south+i])/dy2+
				(un[c+1]-2*uc+un[c-1])/dx2) -
			dt*(uc*(uc-un[c-1])/dx+vc*(uc-un[south+i])/dy)

		v[c] = vc + nuDt*(
			(vn[north+i]-2*vc+vn[south+i])/dy2+
				(vn[c+1]-2*vc+vn[c-1])/dx2) -
			dt*(uc*(vc-vn[c-1])/dx+vc*(vc-vn[south+i])/dy)
	}
}

// checkFinite runs the matrix validator over both components.
func checkFinite(f *VelocityField) error {
	if err := matrix.ValidateFinite(f.U); err != nil {
		return fmt.Errorf("u: %w", err)
	}
	if err := matrix.ValidateFinite(f.V); err != nil {
		return fmt.Errorf("v: %w", err)
	}

	return nil
}

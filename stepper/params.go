// SPDX-License-Identifier: MIT

package stepper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Defaults reproduce the reference boundary-layer run.
const (
	DefaultNX         = 100
	DefaultNY         = 50
	DefaultLX         = 2.0
	DefaultLY         = 1.0
	DefaultNu         = 0.01
	DefaultDt         = 0.001
	DefaultSteps      = 500
	DefaultFreestream = 1.0
	DefaultInlet      = 1.0

	// MinPoints is the smallest grid count per axis with an interior point.
	MinPoints = 3
)

// GridParameters is the immutable scalar configuration of one simulation run.
//
// Fields:
//   - NX, NY      : grid points along x (columns) and y (rows).
//   - LX, LY      : physical domain lengths; spacing is L/(N-1).
//   - Nu          : kinematic viscosity.
//   - Dt          : time step.
//   - Steps       : number of steps Run executes.
//   - Freestream  : u imposed on the top row (row 0).
//   - Inlet       : u imposed on the left column (column 0).
type GridParameters struct {
	NX         int     `yaml:"nx"`
	NY         int     `yaml:"ny"`
	LX         float64 `yaml:"lx"`
	LY         float64 `yaml:"ly"`
	Nu         float64 `yaml:"nu"`
	Dt         float64 `yaml:"dt"`
	Steps      int     `yaml:"steps"`
	Freestream float64 `yaml:"freestream"`
	Inlet      float64 `yaml:"inlet"`
}

// DefaultParams returns the reference configuration:
// nx=100, ny=50, lx=2, ly=1, nu=0.01, dt=0.001, 500 steps, unit free stream and inlet.
func DefaultParams() GridParameters {
	return GridParameters{
		NX:         DefaultNX,
		NY:         DefaultNY,
		LX:         DefaultLX,
		LY:         DefaultLY,
		Nu:         DefaultNu,
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		Freestream: DefaultFreestream,
		Inlet:      DefaultInlet,
	}
}

// DX returns the grid spacing along x.
func (p GridParameters) DX() float64 { return p.LX / float64(p.NX-1) }

// DY returns the grid spacing along y.
func (p GridParameters) DY() float64 { return p.LY / float64(p.NY-1) }

// Coordinates returns x (NX points on [0, LX]) and y (NY points on [0, LY]).
// The caller must have validated p.
func (p GridParameters) Coordinates() (x, y []float64) {
	x = floats.Span(make([]float64, p.NX), 0, p.LX)
	y = floats.Span(make([]float64, p.NY), 0, p.LY)

	return x, y
}

// Validate checks the parameters once, before any allocation.
// Returns ErrGridTooSmall for NX/NY < 3 and ErrInvalidParams otherwise.
func (p GridParameters) Validate() error {
	if p.NX < MinPoints || p.NY < MinPoints {
		return fmt.Errorf("%w: nx=%d ny=%d", ErrGridTooSmall, p.NX, p.NY)
	}
	switch {
	case !positive(p.LX) || !positive(p.LY):
		return fmt.Errorf("%w: domain lengths must be finite and > 0 (lx=%g ly=%g)", ErrInvalidParams, p.LX, p.LY)
	case !finite(p.Nu) || p.Nu < 0:
		return fmt.Errorf("%w: viscosity must be finite and >= 0 (nu=%g)", ErrInvalidParams, p.Nu)
	case !positive(p.Dt):
		return fmt.Errorf("%w: time step must be finite and > 0 (dt=%g)", ErrInvalidParams, p.Dt)
	case p.Steps < 0:
		return fmt.Errorf("%w: step count must be >= 0 (steps=%d)", ErrInvalidParams, p.Steps)
	case !finite(p.Freestream) || !finite(p.Inlet):
		return fmt.Errorf("%w: boundary velocities must be finite", ErrInvalidParams)
	}

	return nil
}

// ParseParams decodes a YAML document on top of DefaultParams and validates
// the result. Unknown keys are rejected; an empty document yields the defaults.
//
// Example:
//
//	nx: 60
//	ny: 30
//	steps: 200
func ParseParams(data []byte) (GridParameters, error) {
	p := DefaultParams()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return GridParameters{}, fmt.Errorf("%w: %v", ErrParamsDecode, err)
	}
	if err := p.Validate(); err != nil {
		return GridParameters{}, err
	}

	return p, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }

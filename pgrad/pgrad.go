// SPDX-License-Identifier: MIT

package pgrad

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrTransitionRange indicates t outside [0, 1].
	ErrTransitionRange = errors.New("pgrad: transition parameter out of [0, 1]")

	// ErrFrames indicates fewer than two requested frames.
	ErrFrames = errors.New("pgrad: at least two frames required")

	// ErrNegativeX indicates a domain point where √x is undefined.
	ErrNegativeX = errors.New("pgrad: negative x in domain")
)

const (
	// DomainStart and DomainEnd bound the reference x-domain.
	DomainStart = 0.0
	DomainEnd   = 10.0
	// DomainPoints is the reference sample count.
	DomainPoints = 1000
	// DefaultFrames is the number of frames of the reference animation.
	DefaultFrames = 100
	// SliderStep is the resolution of interactive t input.
	SliderStep = 0.01
)

// Curve is both profiles evaluated over a shared domain at one t.
type Curve struct {
	T         float64
	X         []float64
	Gradient  []float64
	Thickness []float64
}

// DefaultDomain returns DomainPoints points evenly spaced on [DomainStart, DomainEnd].
func DefaultDomain() []float64 {
	return floats.Span(make([]float64, DomainPoints), DomainStart, DomainEnd)
}

// Favorable is the initial, decreasing pressure gradient.
func Favorable(x float64) float64 { return -0.1*x + 2 }

// Adverse blends towards the quadratic adverse gradient as t goes from 0 to 1.
func Adverse(x, t float64) float64 {
	return -0.1*(1-t)*x + 2 + 0.1*t*x*x
}

// Thickness is the simplified boundary-layer thickness: a √x growth under the
// favorable gradient, a parabola centred on x = 5 under the adverse one.
// NaN for x < 0.
func Thickness(x, t float64) float64 {
	d := x - 5
	return 0.1*(1-t)*math.Sqrt(x) + 0.2*t*d*d/25
}

// Sample evaluates both curves over xs at t. xs is copied into the result.
// Complexity: O(len(xs)).
func Sample(xs []float64, t float64) (Curve, error) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return Curve{}, fmt.Errorf("%w: t=%g", ErrTransitionRange, t)
	}
	for k, x := range xs {
		if x < 0 {
			return Curve{}, fmt.Errorf("%w: x[%d]=%g", ErrNegativeX, k, x)
		}
	}

	c := Curve{
		T:         t,
		X:         append([]float64(nil), xs...),
		Gradient:  make([]float64, len(xs)),
		Thickness: make([]float64, len(xs)),
	}
	for k, x := range xs {
		c.Gradient[k] = Adverse(x, t)
		c.Thickness[k] = Thickness(x, t)
	}

	return c, nil
}

// Transition returns frames curves for t evenly spaced on [0, 1], first frame
// at t = 0 and last at t = 1.
// Complexity: O(frames × len(xs)).
func Transition(xs []float64, frames int) ([]Curve, error) {
	if frames < 2 {
		return nil, fmt.Errorf("%w: frames=%d", ErrFrames, frames)
	}

	ts := floats.Span(make([]float64, frames), 0, 1)
	out := make([]Curve, frames)
	for k, t := range ts {
		c, err := Sample(xs, t)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}

	return out, nil
}

// Snap clamps t to [0, 1] and rounds it to the nearest SliderStep. NaN maps to 0.
func Snap(t float64) float64 {
	switch {
	case math.IsNaN(t) || t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	return math.Round(t/SliderStep) * SliderStep
}

// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blayer/matrix"
)

// Sentinel errors for profile analysis.
var (
	// ErrEmpty indicates an empty (or too short) coordinate vector.
	ErrEmpty = errors.New("profile: coordinate vector is empty")

	// ErrLengthMismatch indicates coordinates that disagree with the field shape.
	ErrLengthMismatch = errors.New("profile: coordinate length does not match field")

	// ErrThresholdNotReached indicates a column whose velocity never reaches
	// the requested fraction of the free stream.
	ErrThresholdNotReached = errors.New("profile: threshold not reached in column")
)

// DefaultThreshold is the velocity fraction defining the boundary-layer edge.
const DefaultThreshold = 0.99

// DefaultPositions are the x-stations sampled by the reference analysis.
var DefaultPositions = []float64{0.1, 0.5, 1.0, 1.5}

// Linspace returns n points evenly spaced on [start, stop], endpoints included.
// Returns ErrEmpty for n < 2.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: linspace needs n >= 2 (n=%d)", ErrEmpty, n)
	}

	return floats.Span(make([]float64, n), start, stop), nil
}

// NearestIndex returns argmin_k |xs[k] - x|; the first index wins on ties.
// Complexity: O(len(xs)).
func NearestIndex(xs []float64, x float64) (int, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	best, bestDist := 0, math.Abs(xs[0]-x)
	for k := 1; k < len(xs); k++ {
		if d := math.Abs(xs[k] - x); d < bestDist {
			best, bestDist = k, d
		}
	}

	return best, nil
}

// checkField validates u against the coordinate vectors (either may be nil
// to skip that axis).
func checkField(u *matrix.Dense, xs, ys []float64) error {
	if err := matrix.ValidateNotNil(u); err != nil {
		return err
	}
	if xs != nil && len(xs) != u.Cols() {
		return fmt.Errorf("%w: len(x)=%d, field has %d columns", ErrLengthMismatch, len(xs), u.Cols())
	}
	if ys != nil && len(ys) != u.Rows() {
		return fmt.Errorf("%w: len(y)=%d, field has %d rows", ErrLengthMismatch, len(ys), u.Rows())
	}

	return nil
}

// VelocityProfile returns the u(y) column at the x-station nearest to x.
// The result has one entry per row of u (same order as the y vector).
// Complexity: O(nx×ny), dominated by the gonum export.
func VelocityProfile(u *matrix.Dense, xs []float64, x float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	if err := checkField(u, xs, nil); err != nil {
		return nil, err
	}
	i, err := NearestIndex(xs, x)
	if err != nil {
		return nil, err
	}

	return mat.Col(nil, i, u.ToGonum()), nil
}

// Station is one velocity profile taken at a requested x-position.
type Station struct {
	X       float64   // requested position
	Index   int       // nearest column index
	Profile []float64 // u(y) at that column
}

// Profiles samples u at every requested position (DefaultPositions when
// positions is empty), in input order.
// Complexity: O(nx×ny) for the export plus O(len(positions)×(nx+ny)).
func Profiles(u *matrix.Dense, xs []float64, positions []float64) ([]Station, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	if err := checkField(u, xs, nil); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		positions = DefaultPositions
	}

	g := u.ToGonum()
	out := make([]Station, 0, len(positions))
	for _, x := range positions {
		i, _ := NearestIndex(xs, x)
		out = append(out, Station{X: x, Index: i, Profile: mat.Col(nil, i, g)})
	}

	return out, nil
}

// Thickness returns, for each column i, ys[j] of the first row j (scanning
// from row 0) with u[j][i] ≥ threshold. A threshold ≤ 0 selects
// DefaultThreshold. Columns that never reach it yield ErrThresholdNotReached.
// Complexity: O(nx×ny) worst case.
func Thickness(u *matrix.Dense, ys []float64, threshold float64) ([]float64, error) {
	if len(ys) == 0 {
		return nil, ErrEmpty
	}
	if err := checkField(u, nil, ys); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	ny, nx := u.Shape()
	data := u.RawData()
	out := make([]float64, nx)
	for i := 0; i < nx; i++ {
		found := false
		for j := 0; j < ny; j++ {
			if data[j*nx+i] >= threshold {
				out[i], found = ys[j], true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: column %d (threshold %g)", ErrThresholdNotReached, i, threshold)
		}
	}

	return out, nil
}

// WallGradient returns, for each column i, (u[1][i]-u[0][i]) / (ys[1]-ys[0]).
// Requires at least two rows.
// Complexity: O(nx).
func WallGradient(u *matrix.Dense, ys []float64) ([]float64, error) {
	if len(ys) < 2 {
		return nil, fmt.Errorf("%w: wall gradient needs two rows", ErrEmpty)
	}
	if err := checkField(u, nil, ys); err != nil {
		return nil, err
	}

	row0, err := u.Row(0)
	if err != nil {
		return nil, err
	}
	row1, err := u.Row(1)
	if err != nil {
		return nil, err
	}
	dy := ys[1] - ys[0]
	floats.Sub(row1, row0) // row1 ← row1 - row0
	for k := range row1 {
		row1[k] /= dy
	}

	return row1, nil
}

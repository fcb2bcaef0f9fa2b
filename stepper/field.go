// SPDX-License-Identifier: MIT

package stepper

import (
	"fmt"

	"github.com/katalvlaran/blayer/matrix"
)

// VelocityField holds the two velocity components on an ny×nx grid.
// U and V always share the same shape; row j ↔ y = j*dy, column i ↔ x = i*dx.
type VelocityField struct {
	U *matrix.Dense // x-direction velocity
	V *matrix.Dense // y-direction velocity
}

// NewField allocates a zero field for p and seeds the free-stream row
// (row 0 of U = p.Freestream). No other boundary is imposed, so a zero-step
// run returns exactly this state.
// Complexity: O(nx×ny).
func NewField(p GridParameters) (*VelocityField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	u, err := matrix.NewDense(p.NY, p.NX)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewDense(p.NY, p.NX)
	if err != nil {
		return nil, err
	}
	if err = u.FillRow(0, p.Freestream); err != nil {
		return nil, err
	}

	return &VelocityField{U: u, V: v}, nil
}

// Shape returns (ny, nx) of the field.
func (f *VelocityField) Shape() (ny, nx int) { return f.U.Shape() }

// Clone returns an independent deep copy of the field.
func (f *VelocityField) Clone() *VelocityField {
	return &VelocityField{U: f.U.Clone(), V: f.V.Clone()}
}

// Equal reports whether both components are bit-identical.
func (f *VelocityField) Equal(o *VelocityField) bool {
	if f == nil || o == nil {
		return f == o
	}

	return f.U.Equal(o.U) && f.V.Equal(o.V)
}

// validate checks non-nil buffers and the ny×nx shape of both components.
func (f *VelocityField) validate(ny, nx int) error {
	if f == nil || f.U == nil || f.V == nil {
		return ErrNilField
	}
	if err := matrix.ValidateShape(f.U, ny, nx); err != nil {
		return fmt.Errorf("%w: u: %v", ErrFieldShape, err)
	}
	if err := matrix.ValidateShape(f.V, ny, nx); err != nil {
		return fmt.Errorf("%w: v: %v", ErrFieldShape, err)
	}

	return nil
}

// ValidateField reports whether f is usable on the grid described by p.
// Returns ErrNilField or ErrFieldShape.
func ValidateField(f *VelocityField, p GridParameters) error {
	return f.validate(p.NY, p.NX)
}

// ApplyBoundaries imposes the domain boundary conditions on f in place.
//
//	u: column 0 = Inlet, column nx-1 = column nx-2,
//	   row ny-1 = row ny-2, row 0 = Freestream.
//	v: column 0 = 0, column nx-1 = column nx-2, row ny-1 = 0, row 0 = 0.
//
// The order matters at the corners and is fixed. The bottom row of u copies
// its neighbour (zero gradient), it is not forced to zero.
func ApplyBoundaries(f *VelocityField, p GridParameters) error {
	if err := f.validate(p.NY, p.NX); err != nil {
		return err
	}

	return applyBoundaries(f, p)
}

func applyBoundaries(f *VelocityField, p GridParameters) error {
	last, lastRow := p.NX-1, p.NY-1
	u, v := f.U, f.V

	steps := []func() error{
		func() error { return u.FillCol(0, p.Inlet) },
		func() error { return u.CopyCol(last, last-1) },
		func() error { return u.CopyRow(lastRow, lastRow-1) },
		func() error { return u.FillRow(0, p.Freestream) },

		func() error { return v.FillCol(0, 0) },
		func() error { return v.CopyCol(last, last-1) },
		func() error { return v.FillRow(lastRow, 0) },
		func() error { return v.FillRow(0, 0) },
	}
	for _, apply := range steps {
		if err := apply(); err != nil {
			return fmt.Errorf("stepper: boundary: %w", err)
		}
	}

	return nil
}

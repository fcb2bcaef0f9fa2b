// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense,
// so downstream analysis can reuse gonum's column/row extraction and
// linear-algebra routines without touching the stepper's buffers.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns an independent *mat.Dense holding a copy of m.
// Mutating the result never affects m.
//
// Time Complexity: O(r*c)
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Returns ErrNilMatrix for a nil input and ErrInvalidDimensions for empty ones.
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = src.At(i, j)
		}
	}

	return out, nil
}

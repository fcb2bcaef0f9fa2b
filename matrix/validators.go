// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape, nil and finiteness checks.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap again uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on the success path.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilMatrix catches both a nil interface and a typed nil *Dense.
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: have %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Errors: ErrNilMatrix if either is nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if isNilMatrix(a) || isNilMatrix(b) {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m for NaN or ±Inf and reports the first offending
// coordinate (row-major order) wrapped around ErrNaNInf.
// Complexity: O(r*c) worst case.
func ValidateFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(
				fmt.Sprintf("ValidateFinite(%d,%d)", k/m.c, k%m.c),
				ErrNaNInf,
			)
		}
	}

	return nil
}

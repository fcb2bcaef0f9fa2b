// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests,
//     benchmarks and examples.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/blayer/matrix"
)

// mustDense allocates an r×c *Dense or fails the test (fatal on error).
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values in [-1,1).
func fillDenseRand(m *matrix.Dense, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for k := range data {
		data[k] = 2*rng.Float64() - 1
	}
}

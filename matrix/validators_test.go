package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blayer/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, 1, 1)))
}

func TestValidateShape(t *testing.T) {
	m := mustDense(t, 3, 4)

	require.NoError(t, matrix.ValidateShape(m, 3, 4))
	require.ErrorIs(t, matrix.ValidateShape(m, 4, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 1), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a := mustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateSameShape(a, mustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateFinite(m))

	m.RawData()[3] = math.Inf(1) // bypasses Set's guard on purpose
	err := matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,1)")

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/blayer/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonum_Independent(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g := m.ToGonum()
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))
	require.Equal(t, []float64{2, 5}, mat.Col(nil, 1, g))

	g.Set(0, 0, 42)
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestFromGonum_RoundTrip(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	m, err := matrix.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
	require.True(t, mat.Equal(src, m.ToGonum()))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

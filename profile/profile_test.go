package profile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blayer/matrix"
	"github.com/katalvlaran/blayer/profile"
	"github.com/katalvlaran/blayer/stepper"
)

// field3x4 is a 3-row × 4-column u fixture:
//
//	row 0: free stream
//	row 1: partially developed
//	row 2: slow near-wall row
func field3x4(t *testing.T) *matrix.Dense {
	t.Helper()
	u, err := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1, 1},
		{1, 0.995, 0.5, 0.2},
		{1, 0.2, 0.1, 0.99},
	})
	require.NoError(t, err)

	return u
}

func TestLinspace(t *testing.T) {
	xs, err := profile.Linspace(0, 2, 5)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2}, xs, 1e-15)

	_, err = profile.Linspace(0, 1, 1)
	require.ErrorIs(t, err, profile.ErrEmpty)
}

func TestNearestIndex(t *testing.T) {
	xs := []float64{0, 0.5, 1, 1.5, 2}
	cases := []struct {
		x    float64
		want int
	}{
		{-3, 0},
		{0.2, 0},
		{0.25, 0}, // tie: first index wins
		{0.3, 1},
		{1.0, 2},
		{1.74, 3},
		{99, 4},
	}
	for _, tc := range cases {
		got, err := profile.NearestIndex(xs, tc.x)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "x=%g", tc.x)
	}

	_, err := profile.NearestIndex(nil, 1)
	require.ErrorIs(t, err, profile.ErrEmpty)
}

func TestVelocityProfile(t *testing.T) {
	u := field3x4(t)
	xs := []float64{0, 1, 2, 3}

	got, err := profile.VelocityProfile(u, xs, 2.2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.5, 0.1}, got)

	_, err = profile.VelocityProfile(u, xs[:3], 1)
	require.ErrorIs(t, err, profile.ErrLengthMismatch)
	_, err = profile.VelocityProfile(nil, xs, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = profile.VelocityProfile(u, nil, 1)
	require.ErrorIs(t, err, profile.ErrEmpty)
}

func TestProfiles(t *testing.T) {
	u := field3x4(t)
	xs := []float64{0, 0.5, 1, 1.5}

	st, err := profile.Profiles(u, xs, nil)
	require.NoError(t, err)
	require.Len(t, st, len(profile.DefaultPositions))
	require.Equal(t, 0.1, st[0].X)
	require.Equal(t, 0, st[0].Index)
	require.Equal(t, 3, st[3].Index)
	require.Equal(t, []float64{1, 0.2, 0.99}, st[3].Profile)

	st, err = profile.Profiles(u, xs, []float64{0.6})
	require.NoError(t, err)
	require.Len(t, st, 1)
	require.Equal(t, []float64{1, 0.995, 0.2}, st[0].Profile)
}

// TestThickness scans from row 0, so a free-stream top row always wins.
func TestThickness(t *testing.T) {
	u := field3x4(t)
	ys := []float64{0, 0.5, 1}

	got, err := profile.Thickness(u, ys, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, got)

	// a field without the free-stream row exposes the scan order
	low, err := matrix.NewDenseFromRows([][]float64{
		{0.1, 0.2},
		{0.995, 0.3},
		{1, 0.99},
	})
	require.NoError(t, err)
	got, err = profile.Thickness(low, ys, profile.DefaultThreshold)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1}, got)

	_, err = profile.Thickness(low, ys, 0.999999)
	require.ErrorIs(t, err, profile.ErrThresholdNotReached)
	_, err = profile.Thickness(low, ys[:2], 0)
	require.ErrorIs(t, err, profile.ErrLengthMismatch)
}

func TestWallGradient(t *testing.T) {
	u := field3x4(t)
	ys := []float64{0, 0.5, 1}

	got, err := profile.WallGradient(u, ys)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, -0.01, -1, -1.6}, got, 1e-12)

	// input untouched
	row1, _ := u.Row(1)
	require.Equal(t, []float64{1, 0.995, 0.5, 0.2}, row1)

	_, err = profile.WallGradient(u, ys[:1])
	require.ErrorIs(t, err, profile.ErrEmpty)
}

// TestAnalyzeSimulation runs the full pipeline on the reference grid and
// checks the structural properties of the diagnostics.
func TestAnalyzeSimulation(t *testing.T) {
	p := stepper.DefaultParams()
	p.Steps = 100
	res, err := stepper.Simulate(p)
	require.NoError(t, err)

	prof, err := profile.VelocityProfile(res.Field.U, res.X, 1.0)
	require.NoError(t, err)
	require.Len(t, prof, p.NY)
	require.Equal(t, p.Freestream, prof[0])
	require.Equal(t, prof[p.NY-2], prof[p.NY-1])

	th, err := profile.Thickness(res.Field.U, res.Y, 0)
	require.NoError(t, err)
	require.Len(t, th, p.NX)

	grad, err := profile.WallGradient(res.Field.U, res.Y)
	require.NoError(t, err)
	require.Len(t, grad, p.NX)
	require.Equal(t, 0.0, grad[0]) // inlet column is uniform
}

package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedIncreasing(t *testing.T) {
	xs := []float64{0, 1, 2, 4}
	vals := []float64{10, 20, 30, 50}
	c := NewClamped(xs, vals)

	for i := range xs {
		assert.InDelta(t, vals[i], c.Eval(xs[i]), 1e-12, "node %d", i)
	}
	assert.InDelta(t, 15.0, c.Eval(0.5), 1e-12)
	assert.InDelta(t, 40.0, c.Eval(3), 1e-12)
}

func TestClampedDecreasing(t *testing.T) {
	xs := []float64{4, 2, 1, 0}
	vals := []float64{50, 30, 20, 10}
	c := NewClamped(xs, vals)

	assert.InDelta(t, 40.0, c.Eval(3), 1e-12)
	assert.InDelta(t, 15.0, c.Eval(0.5), 1e-12)

	// Out of range clamps to the nearer end.
	assert.Equal(t, 50.0, c.Eval(100))
	assert.Equal(t, 10.0, c.Eval(-5))
}

func TestClampedClampsExactly(t *testing.T) {
	c := NewClamped([]float64{1, 2, 3}, []float64{-7, 0, 9})

	// Boundary values are returned bit-for-bit, not recomputed.
	assert.Equal(t, -7.0, c.Eval(0.5))
	assert.Equal(t, -7.0, c.Eval(1))
	assert.Equal(t, 9.0, c.Eval(3))
	assert.Equal(t, 9.0, c.Eval(1e300))
}

func TestClampedNonuniformGrid(t *testing.T) {
	// Log-like spacing defeats the uniform guess and forces the binary
	// search fallback.
	xs := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1, 10, 100}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = 2 * x
	}
	c := NewClamped(xs, vals)

	for _, x := range []float64{2e-4, 5e-3, 0.05, 0.5, 5, 50} {
		assert.InEpsilon(t, 2*x, c.Eval(x), 1e-9, "x = %g", x)
	}
}

func TestClampedEvalAll(t *testing.T) {
	c := NewClamped([]float64{0, 1, 2}, []float64{0, 1, 4})

	xs := []float64{-1, 0.5, 1.5, 3}
	out := make([]float64, len(xs))
	got := c.EvalAll(xs, out)

	require.Equal(t, &out[0], &got[0], "output slice should be reused")
	want := []float64{0, 0.5, 2.5, 4}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestNewClampedPanics(t *testing.T) {
	assert.Panics(t, func() { NewClamped([]float64{1, 2}, []float64{1}) })
	assert.Panics(t, func() { NewClamped([]float64{1}, []float64{1}) })
}

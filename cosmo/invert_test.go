package cosmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planck15DL(z float64) float64 {
	return LuminosityDistance(z, 67.74, 0.3075, -1)
}

func TestZAtValueRoundTrip(t *testing.T) {
	for _, z := range []float64{0.01, 0.1, 0.5, 1, 2, 10, 50} {
		dL := planck15DL(z)
		got := ZAtValue(planck15DL, dL, 1e-4, 100)
		assert.InDelta(t, z, got, 1e-2*z+1e-4, "z = %g", z)
	}
}

func TestZAtValueClamps(t *testing.T) {
	zmin, zmax := 1e-4, 100.0

	// Below the function's range: exactly zmin, not an extrapolation.
	assert.Equal(t, zmin, ZAtValue(planck15DL, 0, zmin, zmax))
	assert.Equal(t, zmin, ZAtValue(planck15DL, -50, zmin, zmax))

	// Above the function's range: exactly zmax.
	assert.Equal(t, zmax, ZAtValue(planck15DL, 1e12, zmin, zmax))
}

func TestZAtValueDecreasingFunction(t *testing.T) {
	f := func(z float64) float64 { return 1 / (1 + z) }

	got := ZAtValue(f, f(5), 1e-4, 100)
	assert.InDelta(t, 5.0, got, 0.05)

	// Clamping flips with the monotonicity direction.
	assert.Equal(t, 1e-4, ZAtValue(f, 2.0, 1e-4, 100))
	assert.Equal(t, 100.0, ZAtValue(f, 0.0, 1e-4, 100))
}

func TestZAtValueAllMatchesScalar(t *testing.T) {
	fvals := []float64{0, 500, 6800, 1e6, 1e12}
	got := ZAtValueAll(planck15DL, fvals, 1e-4, 100)
	require.Len(t, got, len(fvals))

	for i, fval := range fvals {
		assert.Equal(t, ZAtValue(planck15DL, fval, 1e-4, 100), got[i],
			"fval = %g", fval)
	}

	out := make([]float64, len(fvals))
	reused := ZAtValueAll(planck15DL, fvals, 1e-4, 100, out)
	require.Equal(t, &out[0], &reused[0], "output slice should be reused")
}

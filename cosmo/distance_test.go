package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatw/wcdm/math/calc"
)

const (
	testH0  = 67.74
	testOm0 = 0.3075
)

func TestLuminosityDistanceScaling(t *testing.T) {
	for _, z := range testZs {
		for _, w0 := range []float64{-1.2, -1, -0.8} {
			want := (1 + z) * ComovingDistance(z, testH0, testOm0, w0)
			assert.Equal(t, want, LuminosityDistance(z, testH0, testOm0, w0),
				"z = %g, w0 = %g", z, w0)
		}
	}
}

func TestComovingVolumeScaling(t *testing.T) {
	for _, z := range testZs {
		dC := ComovingDistance(z, testH0, testOm0, -1)
		want := 4.0 / 3.0 * math.Pi * dC * dC * dC
		assert.Equal(t, want, ComovingVolume(z, testH0, testOm0, -1), "z = %g", z)
	}
}

func TestDifferentialComovingVolumeComposition(t *testing.T) {
	for _, z := range testZs {
		dC := ComovingDistance(z, testH0, testOm0, -1)
		want := dC * dC * HubbleDistance(testH0) * InvEfunc(z, testOm0, -1)
		assert.Equal(t, want,
			DifferentialComovingVolume(z, testH0, testOm0, -1), "z = %g", z)
	}
}

func TestDDLDzMatchesFiniteDifference(t *testing.T) {
	// Sample dL on a fine uniform grid and differentiate numerically; the
	// analytic Jacobian should match away from the grid ends.
	n := 401
	zs := make([]float64, n)
	for i := range zs {
		zs[i] = 0.1 + float64(i)*(3.0-0.1)/float64(n-1)
	}
	dls := LuminosityDistanceAll(zs, testH0, testOm0, -1)
	num := calc.Deriv(zs, dls)

	for i := 1; i < n-1; i++ {
		assert.InEpsilon(t, num[i], DDLDz(zs[i], testH0, testOm0, -1), 1e-4,
			"z = %g", zs[i])
	}
}

func TestLookbackTimeAtZeroIsZero(t *testing.T) {
	assert.Equal(t, 0.0, LookbackTime(0, testH0, testOm0, -1))
}

func TestAbsorptionDistanceGrowth(t *testing.T) {
	// d_A is dimensionless, independent of H0, and grows faster than z.
	prev := 0.0
	for _, z := range []float64{0.5, 1, 2, 5, 10} {
		dA := AbsorptionDistance(z, testOm0, -1)
		assert.Greater(t, dA, prev, "z = %g", z)
		assert.Greater(t, dA, z, "z = %g", z)
		prev = dA
	}
}

func TestVectorFormsMatchScalars(t *testing.T) {
	dcs := ComovingDistanceAll(testZs, testH0, testOm0, -1)
	dls := LuminosityDistanceAll(testZs, testH0, testOm0, -1)
	tls := LookbackTimeAll(testZs, testH0, testOm0, -1)
	require.Len(t, dcs, len(testZs))

	for i, z := range testZs {
		assert.Equal(t, ComovingDistance(z, testH0, testOm0, -1), dcs[i], "z = %g", z)
		assert.Equal(t, LuminosityDistance(z, testH0, testOm0, -1), dls[i], "z = %g", z)
		assert.Equal(t, LookbackTime(z, testH0, testOm0, -1), tls[i], "z = %g", z)
	}
}

func TestEvalAll(t *testing.T) {
	out := make([]float64, len(testZs))
	got := EvalAll(func(z float64) float64 { return Efunc(z, testOm0, -1) }, testZs, out)

	require.Equal(t, &out[0], &got[0], "output slice should be reused")
	for i, z := range testZs {
		assert.Equal(t, Efunc(z, testOm0, -1), got[i])
	}
}

func TestPlanck15ReferenceValues(t *testing.T) {
	// Spot checks at z = 1 for the radiationless Planck15 parameters,
	// references computed by Simpson quadrature of the defining integrals.
	assert.InEpsilon(t, 3399.0, ComovingDistance(1, testH0, testOm0, -1), 2e-3)
	assert.InEpsilon(t, 6798.0, LuminosityDistance(1, testH0, testOm0, -1), 2e-3)
	assert.InEpsilon(t, 7.941, LookbackTime(1, testH0, testOm0, -1), 2e-3)
}

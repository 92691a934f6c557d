package cosmo

import (
	"gonum.org/v1/gonum/floats"

	"github.com/flatw/wcdm/math/interpolate"
)

// inversionGridSize is the number of samples used to invert a forward
// function of redshift. Accuracy is bounded by the grid density and is not
// refined iteratively; this trades precision for speed.
const inversionGridSize = 1000

// zGrid returns inversionGridSize log-uniformly spaced redshifts spanning
// [zmin, zmax].
func zGrid(zmin, zmax float64) []float64 {
	return floats.LogSpan(make([]float64, inversionGridSize), zmin, zmax)
}

// ZAtValue computes the redshift at which f equals fval, where f must be
// monotonic in z over [zmin, zmax]. f is sampled on a fixed 1000-point
// log-spaced grid and fval is linearly interpolated against the samples.
//
// Target values outside the sampled range are clamped: anything below the
// function's value at zmin returns exactly zmin, anything above the value at
// zmax returns exactly zmax (reversed for decreasing f). Clamping is not
// extrapolation; results at the bounds are not accurate roots.
func ZAtValue(f func(z float64) float64, fval, zmin, zmax float64) float64 {
	zs := zGrid(zmin, zmax)
	return interpolate.NewClamped(EvalAll(f, zs), zs).Eval(fval)
}

// ZAtValueAll is the vector form of ZAtValue: it samples f once and
// interpolates every target value against the same grid. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func ZAtValueAll(f func(z float64) float64, fvals []float64, zmin, zmax float64, out ...[]float64) []float64 {
	zs := zGrid(zmin, zmax)
	return interpolate.NewClamped(EvalAll(f, zs), zs).EvalAll(fvals, out...)
}

package cosmo

import (
	"github.com/flatw/wcdm/math/interpolate"
)

// DetectorToSourceFrame converts detector-frame masses and a luminosity
// distance (Mpc) to source-frame masses and a redshift. The redshift is
// found by inverting the luminosity distance over [zmin, zmax] with the
// fixed-grid interpolation of ZAtValue, so the conversion inherits its
// clamping behavior and grid-limited accuracy.
func DetectorToSourceFrame(m1z, m2z, dL, H0, Om0, w0, zmin, zmax float64) (m1, m2, z float64) {
	zs := zGrid(zmin, zmax)
	dls := LuminosityDistanceAll(zs, H0, Om0, w0)
	z = interpolate.NewClamped(dls, zs).Eval(dL)
	return m1z / (1 + z), m2z / (1 + z), z
}

// SourceToDetectorFrame converts source-frame masses and a redshift to
// detector-frame masses and a luminosity distance (Mpc). Up to the
// interpolation error of the inversion, this is the inverse of
// DetectorToSourceFrame.
func SourceToDetectorFrame(m1, m2, z, H0, Om0, w0 float64) (m1z, m2z, dL float64) {
	dL = LuminosityDistance(z, H0, Om0, w0)
	return m1 * (1 + z), m2 * (1 + z), dL
}

// DetectorToSourceFrameAll converts a catalog of detector-frame events,
// sampling the luminosity distance grid only once. The three input slices
// must have equal length; the outputs are freshly allocated.
func DetectorToSourceFrameAll(m1zs, m2zs, dLs []float64, H0, Om0, w0, zmin, zmax float64) (m1s, m2s, zs []float64) {
	if len(m1zs) != len(dLs) || len(m2zs) != len(dLs) {
		panic("cosmo: length of mass and distance slices are not equal")
	}

	grid := zGrid(zmin, zmax)
	dls := LuminosityDistanceAll(grid, H0, Om0, w0)
	inv := interpolate.NewClamped(dls, grid)

	zs = inv.EvalAll(dLs)
	m1s = make([]float64, len(dLs))
	m2s = make([]float64, len(dLs))
	for i, z := range zs {
		m1s[i] = m1zs[i] / (1 + z)
		m2s[i] = m2zs[i] / (1 + z)
	}
	return m1s, m2s, zs
}

// SourceToDetectorFrameAll converts a catalog of source-frame events. The
// three input slices must have equal length; the outputs are freshly
// allocated.
func SourceToDetectorFrameAll(m1s, m2s, zs []float64, H0, Om0, w0 float64) (m1zs, m2zs, dLs []float64) {
	if len(m1s) != len(zs) || len(m2s) != len(zs) {
		panic("cosmo: length of mass and redshift slices are not equal")
	}

	dLs = LuminosityDistanceAll(zs, H0, Om0, w0)
	m1zs = make([]float64, len(zs))
	m2zs = make([]float64, len(zs))
	for i, z := range zs {
		m1zs[i] = m1s[i] * (1 + z)
		m2zs[i] = m2s[i] * (1 + z)
	}
	return m1zs, m2zs, dLs
}

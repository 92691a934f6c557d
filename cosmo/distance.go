package cosmo

import (
	"math"
)

// ComovingDistance calculates the comoving distance to redshift z in Mpc,
//
//	d_C = d_H int_0^z dz' / E(z').
func ComovingDistance(z, H0, Om0, w0 float64) float64 {
	return AnalyticIntegral(z, Om0, w0, 0) * HubbleDistance(H0)
}

// LookbackTime calculates the lookback time to redshift z in Gyr,
//
//	t_L = t_H int_0^z dz' / ((1+z') E(z')).
func LookbackTime(z, H0, Om0, w0 float64) float64 {
	return AnalyticIntegral(z, Om0, w0, -1) * HubbleTime(H0)
}

// AbsorptionDistance calculates the dimensionless absorption distance,
//
//	d_A = int_0^z (1+z')^2 dz' / E(z').
func AbsorptionDistance(z, Om0, w0 float64) float64 {
	return AnalyticIntegral(z, Om0, w0, 2)
}

// LuminosityDistance calculates the luminosity distance to redshift z in
// Mpc, d_L = (1+z) d_C.
func LuminosityDistance(z, H0, Om0, w0 float64) float64 {
	return (1 + z) * ComovingDistance(z, H0, Om0, w0)
}

// DDLDz calculates the derivative of the luminosity distance with respect to
// redshift in Mpc,
//
//	dd_L/dz = d_C(z) + (1+z) d_H / E(z).
//
// This is the Jacobian needed to express distributions over redshift as
// distributions over luminosity distance.
func DDLDz(z, H0, Om0, w0 float64) float64 {
	dC := ComovingDistance(z, H0, Om0, w0)
	return dC + (1+z)*HubbleDistance(H0)*InvEfunc(z, Om0, w0)
}

// DifferentialComovingVolume calculates the differential comoving volume
// element dV_C/dz, in Gpc^3, per steradian,
//
//	dV_C/dz = d_C^2(z) d_H / E(z).
func DifferentialComovingVolume(z, H0, Om0, w0 float64) float64 {
	dC := ComovingDistance(z, H0, Om0, w0)
	return dC * dC * HubbleDistance(H0) * InvEfunc(z, Om0, w0)
}

// ComovingVolume calculates the comoving volume out to redshift z in Gpc^3,
//
//	V_C = (4 pi / 3) d_C^3(z).
func ComovingVolume(z, H0, Om0, w0 float64) float64 {
	dC := ComovingDistance(z, H0, Om0, w0)
	return 4.0 / 3.0 * math.Pi * dC * dC * dC
}

// ComovingDistanceAll evaluates ComovingDistance at all the given redshifts,
// sharing one integral approximant across the whole slice. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func ComovingDistanceAll(zs []float64, H0, Om0, w0 float64, out ...[]float64) []float64 {
	res := AnalyticIntegralAll(zs, Om0, w0, 0, out...)
	dH := HubbleDistance(H0)
	for i := range res {
		res[i] *= dH
	}
	return res
}

// LuminosityDistanceAll evaluates LuminosityDistance at all the given
// redshifts, sharing one integral approximant across the whole slice.
func LuminosityDistanceAll(zs []float64, H0, Om0, w0 float64, out ...[]float64) []float64 {
	res := ComovingDistanceAll(zs, H0, Om0, w0, out...)
	for i, z := range zs {
		res[i] *= 1 + z
	}
	return res
}

// LookbackTimeAll evaluates LookbackTime at all the given redshifts, sharing
// one integral approximant across the whole slice.
func LookbackTimeAll(zs []float64, H0, Om0, w0 float64, out ...[]float64) []float64 {
	res := AnalyticIntegralAll(zs, Om0, w0, -1, out...)
	tH := HubbleTime(H0)
	for i := range res {
		res[i] *= tH
	}
	return res
}

// EvalAll evaluates an arbitrary scalar function of redshift at all the
// given redshifts. It is the generic vector form for quantities without a
// dedicated ...All variant.
func EvalAll(f func(z float64) float64, zs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(zs))}
	}
	for i, z := range zs {
		out[0][i] = f(z)
	}
	return out[0]
}

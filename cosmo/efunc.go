package cosmo

import (
	"math"
)

// Efunc calculates the dimensionless Hubble rate E(z) = H(z)/H0 for a flat
// wCDM cosmology,
//
//	E(z) = sqrt(Om0 (1+z)^3 + (1 - Om0) (1+z)^(3 (1 + w0))).
//
// w0 = -1 recovers the flat LambdaCDM limit sqrt(Om0 (1+z)^3 + 1 - Om0).
func Efunc(z, Om0, w0 float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(Om0*zp1*zp1*zp1 + (1-Om0)*math.Pow(zp1, 3*(1+w0)))
}

// InvEfunc returns 1/E(z). If E(z) evaluates to zero the result is +Inf,
// following float division semantics.
func InvEfunc(z, Om0, w0 float64) float64 {
	return 1 / Efunc(z, Om0, w0)
}

// HubbleDistance returns the Hubble distance c/H0 in Mpc.
func HubbleDistance(H0 float64) float64 {
	return SpeedOfLightKmPerS / H0
}

// HubbleTime returns the Hubble time 1/H0 in Gyr.
func HubbleTime(H0 float64) float64 {
	return GyrKmPerSMpc / H0
}

// HubbleParameter calculates the Hubble parameter at redshift z, expressed
// as the Hubble distance scaled by the local inverse expansion rate,
// d_H / E(z).
func HubbleParameter(z, H0, Om0, w0 float64) float64 {
	return HubbleDistance(H0) * InvEfunc(z, Om0, w0)
}

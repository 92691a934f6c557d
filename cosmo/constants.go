/*
package cosmo computes distance and time measures for flat wCDM cosmologies.

Every quantity is an algebraic composition of the dimensionless expansion
rate E(z) and the analytic integral of its reciprocal (see integral.go), so
all functions here are pure: no caching, no shared state, safe for concurrent
use. Distances are in Mpc, times in Gyr, H0 in km/s/Mpc.

Out-of-domain parameters are not validated. They propagate through the
algebra under standard IEEE-754 semantics and surface as NaN or Inf.
*/
package cosmo

// Physical constants and unit conversions.
const (
	// SpeedOfLightKmPerS is the speed of light in km/s.
	SpeedOfLightKmPerS = 299792.458

	// KmPerMpc is the number of kilometers in a megaparsec.
	KmPerMpc = 3.0856775814913673e19

	// SecPerGyr is the number of seconds in a Julian gigayear.
	SecPerGyr = 3.15576e16

	// GyrKmPerSMpc converts an inverse Hubble constant in s Mpc / km to Gyr,
	// i.e. hubble time = GyrKmPerSMpc / H0.
	GyrKmPerSMpc = KmPerMpc / SecPerGyr
)

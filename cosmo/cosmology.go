package cosmo

// Default redshift bounds used for inversion when a Cosmology is constructed
// without ZRange, and the default upper bound for age integrals.
const (
	DefaultZMin = 1e-4
	DefaultZMax = 100.0

	defaultAgeZMax = 1e5
)

// Cosmology bundles the parameters of a flat wCDM cosmology and exposes
// every package-level formula as a bound method. Fields are set once at
// construction and treated as immutable afterwards.
type Cosmology struct {
	H0   float64 // Hubble constant in km/s/Mpc
	Om0  float64 // matter density fraction at z = 0
	W0   float64 // dark energy equation of state parameter
	ZMin float64 // lower redshift bound for inversion
	ZMax float64 // upper redshift bound for inversion
	Name string
	Meta map[string]string
}

// Option configures optional Cosmology fields at construction.
type Option func(*Cosmology)

// ZRange supplies the redshift bounds used when inverting the luminosity
// distance.
func ZRange(zmin, zmax float64) Option {
	return func(c *Cosmology) { c.ZMin, c.ZMax = zmin, zmax }
}

// Named supplies a name for the cosmology.
func Named(name string) Option {
	return func(c *Cosmology) { c.Name = name }
}

// Metadata supplies free-form metadata, e.g. citation information.
func Metadata(meta map[string]string) Option {
	return func(c *Cosmology) { c.Meta = meta }
}

// FlatWCDM creates a flat wCDM cosmology with the given Hubble constant
// (km/s/Mpc), matter density fraction, and dark energy equation of state
// parameter. The redshift bounds default to [1e-4, 100] and nil metadata is
// replaced by an empty map.
func FlatWCDM(H0, Om0, w0 float64, opts ...Option) *Cosmology {
	c := &Cosmology{H0: H0, Om0: Om0, W0: w0, ZMin: DefaultZMin, ZMax: DefaultZMax}
	for _, opt := range opts {
		opt(c)
	}
	if c.Meta == nil {
		c.Meta = map[string]string{}
	}
	return c
}

// FlatLambdaCDM creates a flat LambdaCDM cosmology. It is FlatWCDM with w0
// pinned to -1; there is no other behavioral difference.
func FlatLambdaCDM(H0, Om0 float64, opts ...Option) *Cosmology {
	return FlatWCDM(H0, Om0, -1, opts...)
}

// Efunc returns E(z).
func (c *Cosmology) Efunc(z float64) float64 { return Efunc(z, c.Om0, c.W0) }

// InvEfunc returns 1/E(z).
func (c *Cosmology) InvEfunc(z float64) float64 { return InvEfunc(z, c.Om0, c.W0) }

// H returns the Hubble parameter at redshift z.
func (c *Cosmology) H(z float64) float64 { return HubbleParameter(z, c.H0, c.Om0, c.W0) }

// HubbleDistance returns c/H0 in Mpc.
func (c *Cosmology) HubbleDistance() float64 { return HubbleDistance(c.H0) }

// HubbleTime returns 1/H0 in Gyr.
func (c *Cosmology) HubbleTime() float64 { return HubbleTime(c.H0) }

// ComovingDistance returns the comoving distance to redshift z in Mpc.
func (c *Cosmology) ComovingDistance(z float64) float64 {
	return ComovingDistance(z, c.H0, c.Om0, c.W0)
}

// LuminosityDistance returns the luminosity distance to redshift z in Mpc.
func (c *Cosmology) LuminosityDistance(z float64) float64 {
	return LuminosityDistance(z, c.H0, c.Om0, c.W0)
}

// LookbackTime returns the lookback time to redshift z in Gyr.
func (c *Cosmology) LookbackTime(z float64) float64 {
	return LookbackTime(z, c.H0, c.Om0, c.W0)
}

// AbsorptionDistance returns the dimensionless absorption distance to
// redshift z.
func (c *Cosmology) AbsorptionDistance(z float64) float64 {
	return AbsorptionDistance(z, c.Om0, c.W0)
}

// DDLDz returns the derivative of the luminosity distance with respect to
// redshift in Mpc.
func (c *Cosmology) DDLDz(z float64) float64 { return DDLDz(z, c.H0, c.Om0, c.W0) }

// DLdH returns the derivative of the luminosity distance with respect to the
// Hubble distance, d_L/d_H.
func (c *Cosmology) DLdH(z float64) float64 {
	return c.LuminosityDistance(z) / c.HubbleDistance()
}

// DifferentialComovingVolume returns the differential comoving volume
// element at redshift z.
func (c *Cosmology) DifferentialComovingVolume(z float64) float64 {
	return DifferentialComovingVolume(z, c.H0, c.Om0, c.W0)
}

// ComovingVolume returns the comoving volume out to redshift z.
func (c *Cosmology) ComovingVolume(z float64) float64 {
	return ComovingVolume(z, c.H0, c.Om0, c.W0)
}

// Age returns the age of the universe at redshift z in Gyr, counted from
// redshift 1e5.
func (c *Cosmology) Age(z float64) float64 { return c.AgeAt(z, defaultAgeZMax) }

// AgeAt returns the age of the universe at redshift z in Gyr, computed as
// the lookback time to zmax minus the lookback time to z.
func (c *Cosmology) AgeAt(z, zmax float64) float64 {
	return c.LookbackTime(zmax) - c.LookbackTime(z)
}

// ZAtValue inverts a bound forward function over the cosmology's redshift
// range, e.g. c.ZAtValue(c.LuminosityDistance, 6800).
func (c *Cosmology) ZAtValue(f func(z float64) float64, fval float64) float64 {
	return ZAtValue(f, fval, c.ZMin, c.ZMax)
}

// DetectorToSourceFrame converts detector-frame masses and a luminosity
// distance to source-frame masses and a redshift, inverting over the
// cosmology's redshift range.
func (c *Cosmology) DetectorToSourceFrame(m1z, m2z, dL float64) (m1, m2, z float64) {
	return DetectorToSourceFrame(m1z, m2z, dL, c.H0, c.Om0, c.W0, c.ZMin, c.ZMax)
}

// SourceToDetectorFrame converts source-frame masses and a redshift to
// detector-frame masses and a luminosity distance.
func (c *Cosmology) SourceToDetectorFrame(m1, m2, z float64) (m1z, m2z, dL float64) {
	return SourceToDetectorFrame(m1, m2, z, c.H0, c.Om0, c.W0)
}

// Standard cosmologies with parameters from the corresponding CMB analyses.
// All are flat LambdaCDM.
var (
	Planck13 = FlatLambdaCDM(67.77, 0.30712, Named("Planck13"))
	Planck15 = FlatLambdaCDM(67.74, 0.3075, Named("Planck15"))
	Planck18 = FlatLambdaCDM(67.66, 0.30966, Named("Planck18"))
	WMAP1    = FlatLambdaCDM(72.0, 0.257, Named("WMAP1"))
	WMAP3    = FlatLambdaCDM(70.1, 0.276, Named("WMAP3"))
	WMAP5    = FlatLambdaCDM(70.2, 0.277, Named("WMAP5"))
	WMAP7    = FlatLambdaCDM(70.4, 0.272, Named("WMAP7"))
	WMAP9    = FlatLambdaCDM(69.32, 0.2865, Named("WMAP9"))
)

// Available maps each preset cosmology's name to its instance. The
// FlatWCDM and FlatLambdaCDM constructors are exported functions rather
// than map entries.
var Available = map[string]*Cosmology{
	"Planck13": Planck13,
	"Planck15": Planck15,
	"Planck18": Planck18,
	"WMAP1":    WMAP1,
	"WMAP3":    WMAP3,
	"WMAP5":    WMAP5,
	"WMAP7":    WMAP7,
	"WMAP9":    WMAP9,
}

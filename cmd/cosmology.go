package cmd

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/flatw/wcdm/cosmo"
)

// cosmologyFile is the on-disk TOML representation of a cosmology.
type cosmologyFile struct {
	H0   float64 `toml:"h0"`
	Om0  float64 `toml:"om0"`
	W0   float64 `toml:"w0"`
	ZMin float64 `toml:"zmin,omitempty"`
	ZMax float64 `toml:"zmax,omitempty"`
	Name string  `toml:"name,omitempty"`
}

// parseCosmologyFile reads a TOML cosmology description. Missing fields keep
// their defaults: w0 = -1, zmin/zmax the package defaults.
func parseCosmologyFile(path string) (*cosmo.Cosmology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cosmology file: %w", err)
	}

	cf := cosmologyFile{
		W0:   -1,
		ZMin: cosmo.DefaultZMin,
		ZMax: cosmo.DefaultZMax,
	}
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cf.H0 <= 0 {
		return nil, fmt.Errorf("%s: h0 must be positive, got %g", path, cf.H0)
	}

	return cosmo.FlatWCDM(
		cf.H0, cf.Om0, cf.W0,
		cosmo.ZRange(cf.ZMin, cf.ZMax), cosmo.Named(cf.Name),
	), nil
}

// loadCosmology resolves the cosmology to use: an explicit TOML file if one
// was given, otherwise the named preset.
func loadCosmology() (*cosmo.Cosmology, error) {
	if path := viper.GetString("cosmology"); path != "" {
		return parseCosmologyFile(path)
	}

	name := viper.GetString("preset")
	c, ok := cosmo.Available[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (try 'wcdm presets')", name)
	}
	return c, nil
}

/*
Wcdm computes cosmological distances, times and volumes for flat wCDM
models, and inverts luminosity distances to redshifts for gravitational-wave
style frame conversions. See the cosmo package for the library API.
*/
package main

import (
	"github.com/flatw/wcdm/cmd"
)

func main() {
	cmd.Execute()
}

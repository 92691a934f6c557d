package cmd

import (
	"fmt"
	"log"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flatw/wcdm/cosmo"
	"github.com/flatw/wcdm/math/calc"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print distances, times and volumes at the given redshifts",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().Float64Slice("z", []float64{0.1, 0.5, 1, 2}, "redshifts to evaluate")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	c, err := loadCosmology()
	if err != nil {
		return err
	}

	zs, err := cmd.Flags().GetFloat64Slice("z")
	if err != nil {
		return err
	}
	sort.Float64s(zs)

	dcs := cosmo.ComovingDistanceAll(zs, c.H0, c.Om0, c.W0)
	dls := cosmo.LuminosityDistanceAll(zs, c.H0, c.Om0, c.W0)
	tls := cosmo.LookbackTimeAll(zs, c.H0, c.Om0, c.W0)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "# %s: H0=%g Om0=%g w0=%g\n", c.Name, c.H0, c.Om0, c.W0)
	fmt.Fprintln(w, "z\tdC [Mpc]\tdL [Mpc]\ttL [Gyr]\tdDL/dz [Mpc]\tdVc/dz\tVc")
	for i, z := range zs {
		fmt.Fprintf(
			w, "%g\t%.4f\t%.4f\t%.4f\t%.4f\t%.4g\t%.4g\n",
			z, dcs[i], dls[i], tls[i],
			c.DDLDz(z), c.DifferentialComovingVolume(z), c.ComovingVolume(z),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verbose(cmd) && len(zs) >= 3 {
		logDerivCheck(c, zs, dls)
	}
	return nil
}

// logDerivCheck compares the analytic luminosity-distance Jacobian against a
// finite-difference derivative of the printed column.
func logDerivCheck(c *cosmo.Cosmology, zs, dls []float64) {
	num := calc.Deriv(zs, dls)
	worst := 0.0
	for i, z := range zs {
		worst = math.Max(worst, math.Abs(num[i]-c.DDLDz(z)))
	}
	log.Printf("max |finite difference - analytic| dDL/dz: %.3g Mpc", worst)
}

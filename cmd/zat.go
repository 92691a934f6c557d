package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var zatCmd = &cobra.Command{
	Use:   "zat",
	Short: "Invert the luminosity distance to a redshift",
	Long: "Zat computes the redshift at which the luminosity distance equals the\n" +
		"given value, by linear interpolation over a fixed log-spaced redshift\n" +
		"grid. Distances outside the sampled range clamp to the grid bounds\n" +
		"rather than extrapolating.",
	RunE: runZat,
}

func init() {
	zatCmd.Flags().Float64Slice("dl", nil, "luminosity distances in Mpc")
	_ = zatCmd.MarkFlagRequired("dl")
	rootCmd.AddCommand(zatCmd)
}

func runZat(cmd *cobra.Command, args []string) error {
	c, err := loadCosmology()
	if err != nil {
		return err
	}

	dls, err := cmd.Flags().GetFloat64Slice("dl")
	if err != nil {
		return err
	}

	for _, dl := range dls {
		z := c.ZAtValue(c.LuminosityDistance, dl)
		fmt.Fprintf(cmd.OutOrStdout(), "dL = %g Mpc -> z = %.6f\n", dl, z)
		if verbose(cmd) && (z == c.ZMin || z == c.ZMax) {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"  (clamped to redshift bound; %g Mpc is outside [%g, %g])\n",
				dl, c.LuminosityDistance(c.ZMin), c.LuminosityDistance(c.ZMax),
			)
		}
	}
	return nil
}

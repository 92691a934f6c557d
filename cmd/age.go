package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ageCmd = &cobra.Command{
	Use:   "age",
	Short: "Print the age of the universe at a redshift",
	RunE:  runAge,
}

func init() {
	ageCmd.Flags().Float64("z", 0, "redshift")
	rootCmd.AddCommand(ageCmd)
}

func runAge(cmd *cobra.Command, args []string) error {
	c, err := loadCosmology()
	if err != nil {
		return err
	}

	z, err := cmd.Flags().GetFloat64("z")
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "age(z=%g) = %.4f Gyr\n", z, c.Age(z))
	return nil
}

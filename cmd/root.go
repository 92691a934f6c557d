/*package cmd implements the wcdm command line interface.*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flatw/wcdm/version"
)

var rootCmd = &cobra.Command{
	Use:   "wcdm",
	Short: "Flat wCDM cosmological distances and times",
	Long: "Wcdm computes comoving and luminosity distances, lookback times,\n" +
		"comoving volumes and redshift inversions for flat wCDM cosmologies,\n" +
		"using a closed-form Padé approximation instead of numerical quadrature.",
	Version: version.SourceVersion,
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("preset", "Planck15", "named preset cosmology")
	rootCmd.PersistentFlags().String("cosmology", "", "TOML file with cosmology parameters")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
	_ = viper.BindPFlag("cosmology", rootCmd.PersistentFlags().Lookup("cosmology"))
}

func initConfig() {
	viper.SetConfigName(".wcdm")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("WCDM")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func verbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

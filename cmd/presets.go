package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/flatw/wcdm/cosmo"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named preset cosmologies",
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().String("export", "", "write the presets to a TOML file")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(cosmo.Available))
	for name := range cosmo.Available {
		names = append(names, name)
	}
	sort.Strings(names)

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		return exportPresets(path, names)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tH0 [km/s/Mpc]\tOm0\tw0")
	for _, name := range names {
		c := cosmo.Available[name]
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", c.Name, c.H0, c.Om0, c.W0)
	}
	return w.Flush()
}

func exportPresets(path string, names []string) error {
	out := make(map[string]cosmologyFile, len(names))
	for _, name := range names {
		c := cosmo.Available[name]
		out[name] = cosmologyFile{
			H0: c.H0, Om0: c.Om0, W0: c.W0,
			ZMin: c.ZMin, ZMax: c.ZMax, Name: c.Name,
		}
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

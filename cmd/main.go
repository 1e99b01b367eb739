package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title        Growth & Decay Calculator API
// @version      1.0
// @description  Newton's law of cooling and radioactive decay calculators.
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "growthdecay",
		Short: "Newton cooling and radioactive decay calculator",
		Long: "growthdecay evaluates T(t) = Tm + C·e^(K·t) and N(t) = N0·e^(-k·t), " +
			"their inversions and tables, over HTTP or an interactive menu.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")

	root.AddCommand(newServeCmd(), newMenuCmd(), newVersionCmd())
	return root
}

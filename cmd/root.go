package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "txlens",
	Short:        "Cardano transaction lens with synthetic transaction data and compliance analysis",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

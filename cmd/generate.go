package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"txlens/internal/cardano"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var label string

	generateCmd := &cobra.Command{
		Use:          "generate [tx-hash]",
		Short:        "Print the synthetic transaction for a hash or a demo label",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var identifier string
			switch {
			case len(args) == 1 && cmd.Flags().Changed("label"):
				return errors.New("pass either a transaction hash or --label, not both")
			case len(args) == 1:
				identifier = args[0]
			case cmd.Flags().Changed("label"):
				identifier = cardano.DemoIdentifier(label)
			default:
				return errors.New("a transaction hash or --label is required")
			}

			tx, err := cardano.NewGenerator().Generate(identifier)
			if err != nil {
				return fmt.Errorf("generate transaction: %w", err)
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			return out.Encode(tx)
		},
	}
	generateCmd.Flags().StringVarP(&label, "label", "l", "", "derive the transaction hash from a free-form label")

	return generateCmd
}

package cli

import (
	"fmt"

	"github.com/ecollajta/smarttwin/internal/cli/formatter"
	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var target int
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "optimize",
		Short:   "Recommend trays, crew and molds for a target",
		Example: "  smarttwin optimize --target 500",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("target") {
				if !app.interactive() {
					return errTargetRequired
				}
				if err := runTargetWizard(&target); err != nil {
					return err
				}
			}

			resp, err := app.Plans.Optimize(cmd.Context(), contract.OptimizeRequest{TargetUnits: target})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendation(resp))
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 0, "Units to produce")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

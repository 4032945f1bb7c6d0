package cli

import (
	"fmt"

	"github.com/ecollajta/smarttwin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAllocateCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:     "allocate",
		Short:   "Split the crew across stations and check the cycle fits the day",
		Example: "  smarttwin allocate --target 100 --hours 8 --staff 11 --molds 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.resolve(cmd, app)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Allocate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if f.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAllocation(resp))
			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

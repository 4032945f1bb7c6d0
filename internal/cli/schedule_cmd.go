package cli

import (
	"fmt"

	"github.com/ecollajta/smarttwin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Lay the production day out as timed phases",
		Example: "  smarttwin schedule --target 100 --staff 11 --molds 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.resolve(cmd, app)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Schedule(cmd.Context(), req)
			if err != nil {
				return err
			}

			if f.json {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

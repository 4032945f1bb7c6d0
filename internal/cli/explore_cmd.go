package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Tune crew, molds and hours interactively and watch the plan change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("explore needs an interactive terminal")
			}
			req, err := f.resolve(cmd, app)
			if err != nil {
				return err
			}

			m := newExploreModel(cmd.Context(), app.Plans, req)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	f.register(cmd.Flags())

	return cmd
}

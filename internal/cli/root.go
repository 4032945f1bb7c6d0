package cli

import (
	"github.com/ecollajta/smarttwin/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// App holds the services and runtime hooks used by CLI commands.
type App struct {
	Plans service.PlanService

	// LoadPlans rebuilds Plans from the process config named by --config.
	LoadPlans func(path string) (service.PlanService, error)

	// Metrics is exported to MetricsFile by WriteMetrics.
	Metrics     prometheus.Gatherer
	MetricsFile string

	IsInteractive func() bool
}

// NewRootCmd creates the top-level "smarttwin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "smarttwin",
		Short:         "Production line planner for crews, molds and cycle time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" || app.LoadPlans == nil {
				return nil
			}
			plans, err := app.LoadPlans(configPath)
			if err != nil {
				return err
			}
			app.Plans = plans
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Process config YAML (defaults to the built-in line)")
	root.PersistentFlags().StringVar(&app.MetricsFile, "metrics-file", app.MetricsFile, "Write Prometheus metrics to this file when the command ends")

	root.AddCommand(
		newAllocateCmd(app),
		newOptimizeCmd(app),
		newScheduleCmd(app),
		newExploreCmd(app),
	)

	return root
}

// WriteMetrics writes the gathered metrics as a Prometheus textfile. It is
// a no-op without a metrics file or gatherer.
func (a *App) WriteMetrics() error {
	if a.MetricsFile == "" || a.Metrics == nil {
		return nil
	}
	return prometheus.WriteToTextfile(a.MetricsFile, a.Metrics)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

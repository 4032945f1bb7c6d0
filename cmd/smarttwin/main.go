package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecollajta/smarttwin/internal/cli"
	"github.com/ecollajta/smarttwin/internal/config"
	"github.com/ecollajta/smarttwin/internal/scheduler"
	"github.com/ecollajta/smarttwin/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg := config.Load()

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() {
		err = errors.Join(err, closeLog())
	}()
	slog.SetDefault(logger)

	// Metrics go to a private registry so the textfile only carries ours.
	registry := prometheus.NewRegistry()
	metricsObserver, err := service.NewMetricsUseCaseObserver(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observer := service.NewMultiUseCaseObserver(
		service.NewLogUseCaseObserver(logger),
		metricsObserver,
	)

	buildPlans := func(path string) (service.PlanService, error) {
		processCfg, err := config.LoadProcessConfig(path)
		if err != nil {
			return nil, err
		}
		planner := scheduler.NewPlanner(processCfg)
		optimizer := scheduler.NewResourceOptimizer(processCfg, planner)
		return service.NewPlanService(planner, optimizer, observer), nil
	}

	plans, err := buildPlans(cfg.ProcessConfigPath)
	if err != nil {
		return fmt.Errorf("loading process config: %w", err)
	}

	app := &cli.App{
		Plans:       plans,
		LoadPlans:   buildPlans,
		Metrics:     registry,
		MetricsFile: cfg.MetricsFile,
	}

	// Detect interactive terminal for the wizard and explore views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	execErr := rootCmd.ExecuteContext(ctx)
	if metricsErr := app.WriteMetrics(); metricsErr != nil {
		logger.Warn("writing metrics file failed", "file", app.MetricsFile, "error", metricsErr)
	}
	return execErr
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/benchmocker/internal/config"
	"github.com/roach88/benchmocker/internal/harness"
	"github.com/roach88/benchmocker/internal/metrics"
	"github.com/roach88/benchmocker/internal/schedule"
	"github.com/roach88/benchmocker/internal/store"
	"github.com/roach88/benchmocker/internal/suites"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Seed       uint64
	Mode       string
	ConfigPath string
	Units      []string
	Database   string
	MetricsOut string

	// Registry supplies the work units (for testing).
	// If nil, defaults to suites.Units.
	Registry func() []harness.WorkUnit

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	IDGenerator store.RunIDGenerator

	// Clock allows overriding the timing clock (for testing).
	// If nil, defaults to harness.SystemClock.
	Clock harness.Clock
}

// runResult is the run command's payload. The embedded report supplies the
// text rendering.
type runResult struct {
	ID string `json:"id,omitempty"`
	*harness.Report
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [cycles]",
		Short: "Run the benchmark",
		Long: `Run every selected work unit cycles times in a fair, randomized order
and print the accumulated time per unit.

A missing, non-numeric or non-positive cycles argument falls back to the
config file value, then to 1000.

Example:
  benchmocker run
  benchmocker run 5000 --seed 42
  benchmocker run 200 --units FakeTest,GoMockTest --db ./runs.db
  benchmocker run --config bench.yaml --metrics-out metrics.prom`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts, args, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "shuffle seed (default: time-derived)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "schedule mode (factorial|legacy)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.yaml, .yml or .cue)")
	cmd.Flags().StringSliceVar(&opts.Units, "units", nil, "comma-separated unit names to run (default: all)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database to record the run in")
	cmd.Flags().StringVar(&opts.MetricsOut, "metrics-out", "", "write Prometheus text metrics to this file")

	return cmd
}

func runBenchmark(opts *RunOptions, args []string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg := &config.Config{}
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			formatter.Error(CodeInvalidInput, err.Error(), nil)
			return reported(WrapExitError(ExitCommandError, "failed to load config", err))
		}
		cfg = loaded
	}

	cycles := cfg.EffectiveCycles()
	if len(args) == 1 {
		cycles = config.ParseCycles(args[0])
	}

	modeName := cfg.Mode
	if cmd.Flags().Changed("mode") {
		modeName = opts.Mode
	}
	mode, err := schedule.ParseMode(modeName)
	if err != nil {
		formatter.Error(CodeInvalidInput, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "invalid mode", err))
	}

	registry := opts.Registry
	if registry == nil {
		registry = suites.Units
	}
	names := cfg.Units
	if cmd.Flags().Changed("units") {
		names = opts.Units
	}
	units, err := suites.Select(registry(), names)
	if err != nil {
		formatter.Error(CodeInvalidInput, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "invalid unit selection", err))
	}

	clock := opts.Clock
	if clock == nil {
		clock = harness.SystemClock{}
	}
	harnessOpts := []harness.Option{
		harness.WithLogger(logger),
		harness.WithMode(mode),
		harness.WithClock(clock),
	}
	switch {
	case cmd.Flags().Changed("seed"):
		harnessOpts = append(harnessOpts, harness.WithSeed(opts.Seed))
	case cfg.Seed != nil:
		harnessOpts = append(harnessOpts, harness.WithSeed(*cfg.Seed))
	}

	var collector *metrics.Collector
	if opts.MetricsOut != "" {
		collector, err = metrics.New(nil)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create metrics collector", err)
		}
		harnessOpts = append(harnessOpts, harness.WithObserver(collector))
	}

	h, err := harness.New(units, harnessOpts...)
	if err != nil {
		formatter.Error(CodeInvalidInput, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to set up benchmark", err))
	}

	// Setup signal handling for graceful shutdown
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping after current unit", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	startedAt := clock.Now()
	report, runErr := h.Run(ctx, cycles)

	if collector != nil {
		if err := writeMetrics(collector, opts.MetricsOut); err != nil {
			return WrapExitError(ExitCommandError, "failed to write metrics", err)
		}
		formatter.VerboseLog("metrics written to %s", opts.MetricsOut)
	}

	if errors.Is(runErr, schedule.ErrTooManySlots) {
		formatter.Error(CodeInvalidInput, runErr.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "invalid cycle count", runErr))
	}
	if runErr != nil {
		code := CodeUnitFailed
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			code = CodeInterrupted
		}
		var details any
		if report != nil {
			details = report
		}
		formatter.Error(code, runErr.Error(), details)
		return reported(WrapExitError(ExitFailure, "benchmark failed", runErr))
	}

	result := runResult{Report: report}
	if opts.Database != "" {
		id, err := saveRun(ctx, opts, startedAt, report)
		if err != nil {
			formatter.Error(CodeStorage, err.Error(), nil)
			return reported(WrapExitError(ExitCommandError, "failed to record run", err))
		}
		result.ID = id
		logger.Info("run recorded", "id", id, "db", opts.Database)
	}

	return formatter.Success(result)
}

func saveRun(ctx context.Context, opts *RunOptions, startedAt time.Time, report *harness.Report) (string, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return "", err
	}
	defer st.Close()

	gen := opts.IDGenerator
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	run := store.Run{ID: gen.Generate(), StartedAt: startedAt, Report: report}
	if err := st.SaveRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func writeMetrics(c *metrics.Collector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WriteText(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

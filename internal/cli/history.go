package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/benchmocker/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	RunID    string
}

// historyList renders stored runs as an aligned table in text mode.
type historyList []store.Summary

func (l historyList) WriteText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tCYCLES\tSEED\tMODE\tUNITS\tTOTAL")
	for _, r := range l {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%d\t%s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Cycles, r.Seed, r.Mode, r.Units, r.Total)
	}
	return tw.Flush()
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List benchmark runs recorded with run --db, newest first.
With --id, print the full report of one recorded run.

Example:
  benchmocker history --db ./runs.db
  benchmocker history --db ./runs.db --limit 5 --format json
  benchmocker history --db ./runs.db --id 0190a6f2-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.RunID, "id", "", "show the report of a single run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		formatter.Error(CodeStorage, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to open database", err))
	}
	defer st.Close()

	if opts.RunID != "" {
		run, err := st.LoadRun(cmd.Context(), opts.RunID)
		if err != nil {
			code := CodeStorage
			if errors.Is(err, store.ErrRunNotFound) {
				code = CodeInvalidInput
			}
			formatter.Error(code, err.Error(), nil)
			return reported(WrapExitError(ExitCommandError, "failed to load run", err))
		}
		return formatter.Success(runResult{ID: run.ID, Report: run.Report})
	}

	runs, err := st.ListRuns(cmd.Context(), opts.Limit)
	if err != nil {
		formatter.Error(CodeStorage, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to list runs", err))
	}
	return formatter.Success(historyList(runs))
}

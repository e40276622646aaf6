package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/tcheck/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Scenario string // only runs of this scenario
	Limit    int    // most recent runs to show
	Run      string // show the cases of one run
}

// RunDetail is the JSON payload of history --run.
type RunDetail struct {
	Run   store.Run          `json:"run"`
	Cases []store.CaseResult `json:"cases"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <db>",
		Short: "Show recorded scenario runs",
		Long: `Show scenario runs recorded with "tcheck test --record".

Runs are listed oldest first. With --run, the recorded cases of that run
are shown instead.

Examples:
  tcheck history runs.db
  tcheck history runs.db --scenario players --limit 5
  tcheck history runs.db --run 0192f0c4-...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only show runs of this scenario")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "number of most recent runs to show (0 for all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the cases of this run")

	return cmd
}

func runHistory(opts *HistoryOptions, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Open would create a fresh ledger; history only reads existing ones.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), nil)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	ctx := cmd.Context()

	if opts.Run != "" {
		run, err := st.ReadRun(ctx, opts.Run)
		if errors.Is(err, store.ErrNotFound) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("run not found: %s", opts.Run), nil)
		}
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		cases, err := st.ReadCaseResults(ctx, run.ID)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		if formatter.IsJSON() {
			return formatter.Success(RunDetail{Run: run, Cases: cases})
		}
		printRun(formatter, run)
		for _, c := range cases {
			printCase(formatter, c)
		}
		return nil
	}

	runs, err := st.ListRuns(ctx, opts.Scenario, opts.Limit)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	if formatter.IsJSON() {
		return formatter.Success(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "No runs recorded.")
		return nil
	}
	for _, run := range runs {
		printRun(formatter, run)
	}
	return nil
}

func printRun(f *OutputFormatter, run store.Run) {
	fmt.Fprintf(f.Writer, "#%d %s %s (%s): %s, %d ok, %d mismatched\n",
		run.Seq, run.ID, run.Scenario, run.Check, run.Status, run.Passed, run.Failed)
}

func printCase(f *OutputFormatter, c store.CaseResult) {
	mark := "✓"
	if !c.OK {
		mark = "✗"
	}
	fmt.Fprintf(f.Writer, "  %s %s: expect %s, got %s", mark, c.Name, c.Expect, c.Outcome)
	if c.Failure != nil {
		if c.Failure.Path != "" {
			fmt.Fprintf(f.Writer, " at %s", c.Failure.Path)
		}
		fmt.Fprintf(f.Writer, ": %s", c.Failure.Reason)
	}
	fmt.Fprintln(f.Writer)
}

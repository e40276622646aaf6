package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/roach88/tcheck/internal/catalog"
	"github.com/roach88/tcheck/internal/document"
	"github.com/roach88/tcheck/internal/store"
	"github.com/roach88/tcheck/pkg/check"
)

// Recorder persists runs. *store.Store implements it.
type Recorder interface {
	CreateRun(ctx context.Context, scenario, checkName string) (store.Run, error)
	WriteCaseResult(ctx context.Context, res store.CaseResult) error
	FinishRun(ctx context.Context, runID string, passed, failed int) error
}

// Options configures a scenario run.
type Options struct {
	// Logger receives per-case debug logs. Nil discards them.
	Logger *slog.Logger

	// Recorder, when set, records the run and every case result.
	Recorder Recorder
}

// Run evaluates every case of a scenario against its catalogue check.
//
// Case mismatches are reported through the Result, not as an error. The
// error return is reserved for problems that prevent the run itself: an
// unknown check, or a recorder failure.
func Run(ctx context.Context, cat *catalog.Catalog, scenario *Scenario, opts Options) (*Result, error) {
	chk, err := cat.MustLookup(scenario.Check)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("scenario", scenario.Name, "check", scenario.Check)

	result := NewResult(scenario.Name, scenario.Check)

	var runID string
	if opts.Recorder != nil {
		run, err := opts.Recorder.CreateRun(ctx, scenario.Name, scenario.Check)
		if err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		runID = run.ID
		result.RunID = runID
	}

	for i := range scenario.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &scenario.Cases[i]
		cr := runCase(chk, scenario.BaseDir, c, result)
		result.Cases = append(result.Cases, cr)
		logger.Debug("case evaluated", "case", c.Name, "outcome", cr.Outcome, "ok", cr.OK)

		if opts.Recorder != nil {
			err := opts.Recorder.WriteCaseResult(ctx, store.CaseResult{
				RunID:   runID,
				Seq:     int64(i + 1),
				Name:    cr.Name,
				Expect:  cr.Expect,
				Outcome: cr.Outcome,
				OK:      cr.OK,
				Failure: store.RecordFailure(cr.Failure),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to record case %q: %w", c.Name, err)
			}
		}
	}

	if opts.Recorder != nil {
		ok, mismatched := result.Counts()
		if err := opts.Recorder.FinishRun(ctx, runID, ok, mismatched); err != nil {
			return nil, fmt.Errorf("failed to finish run: %w", err)
		}
	}

	logger.Debug("scenario finished", "pass", result.Pass)
	return result, nil
}

func runCase(chk check.Check, baseDir string, c *Case, result *Result) CaseResult {
	cr := CaseResult{Name: c.Name, Expect: c.Expect}

	v, err := caseValue(baseDir, c)
	if err != nil {
		cr.Outcome = OutcomeError
		cr.Report = err.Error()
		result.AddError(fmt.Sprintf("case %q: %v", c.Name, err))
		return cr
	}

	checkErr := chk.Validate(v)
	if checkErr == nil {
		cr.Outcome = OutcomePass
	} else {
		cr.Outcome = OutcomeFail
		cr.Report = checkErr.Error()
		cr.Failure, _ = check.AsFailure(checkErr)
	}

	mismatches := EvaluateCase(c, checkErr)
	for _, m := range mismatches {
		result.AddError(m.Error())
	}
	cr.OK = len(mismatches) == 0
	return cr
}

// caseValue produces the value under test from the inline value or file.
func caseValue(baseDir string, c *Case) (any, error) {
	if c.HasValue() {
		var v any
		if err := c.Value.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode value: %w", err)
		}
		return v, nil
	}
	if c.File == "" {
		return nil, errors.New("case has neither value nor file")
	}

	path := c.File
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return document.DecodeFile(path)
}

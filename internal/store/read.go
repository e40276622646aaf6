package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ReadRun returns a run by ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, scenario, check_name, status, passed, failed
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	return run, nil
}

// ListRuns returns runs in sequence order, optionally only those of one
// scenario. A limit of zero or less returns every run; otherwise the most
// recent limit runs are returned, still in ascending order.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context, scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, scenario, check_name, status, passed, failed FROM (
			SELECT id, seq, scenario, check_name, status, passed, failed
			FROM runs
			WHERE ? = '' OR scenario = ?
			ORDER BY seq DESC, id COLLATE BINARY DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, scenario, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadCaseResults returns the case results of a run in case order.
//
// Returns an empty slice (not nil) if the run has no results.
func (s *Store) ReadCaseResults(ctx context.Context, runID string) ([]CaseResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, name, expect, outcome, ok, failure
		FROM case_results
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query case results: %w", err)
	}
	defer rows.Close()

	results := []CaseResult{}
	for rows.Next() {
		var (
			res     CaseResult
			failure sql.NullString
		)
		if err := rows.Scan(&res.RunID, &res.Seq, &res.Name, &res.Expect, &res.Outcome, &res.OK, &failure); err != nil {
			return nil, fmt.Errorf("scan case result: %w", err)
		}
		if res.Failure, err = unmarshalFailure(failure); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case results: %w", err)
	}
	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	err := row.Scan(&run.ID, &run.Seq, &run.Scenario, &run.Check, &run.Status, &run.Passed, &run.Failed)
	return run, err
}

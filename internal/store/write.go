package store

import (
	"context"
	"fmt"
)

// CreateRun starts a run and assigns it the next logical sequence number.
func (s *Store) CreateRun(ctx context.Context, scenario, checkName string) (Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return Run{}, fmt.Errorf("create run: next seq: %w", err)
	}

	run := Run{
		ID:       s.ids.Generate(),
		Seq:      seq,
		Scenario: scenario,
		Check:    checkName,
		Status:   StatusRunning,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, scenario, check_name, status)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Seq, run.Scenario, run.Check, run.Status)
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("create run: commit: %w", err)
	}
	return run, nil
}

// WriteCaseResult records one case outcome. Writing the same (run, seq)
// twice is a no-op, so a resumed run cannot duplicate results.
func (s *Store) WriteCaseResult(ctx context.Context, res CaseResult) error {
	failure, err := marshalFailure(res.Failure)
	if err != nil {
		return fmt.Errorf("write case result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO case_results (run_id, seq, name, expect, outcome, ok, failure)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`, res.RunID, res.Seq, res.Name, res.Expect, res.Outcome, res.OK, failure)
	if err != nil {
		return fmt.Errorf("write case result: %w", err)
	}
	return nil
}

// FinishRun records the totals of a run and marks it passed or failed.
func (s *Store) FinishRun(ctx context.Context, runID string, passed, failed int) error {
	status := StatusPassed
	if failed > 0 {
		status = StatusFailed
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET status = ?, passed = ?, failed = ?
		WHERE id = ?
	`, status, passed, failed, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run %s: %w", runID, ErrNotFound)
	}
	return nil
}

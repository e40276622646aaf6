package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/tcheck/pkg/check"
)

// Run statuses.
const (
	StatusRunning = "running"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// Run is one scenario executed against one check.
type Run struct {
	ID       string `json:"id"`
	Seq      int64  `json:"seq"`
	Scenario string `json:"scenario"`
	Check    string `json:"check"`
	Status   string `json:"status"`
	Passed   int    `json:"passed"`
	Failed   int    `json:"failed"`
}

// CaseResult is the recorded outcome of one scenario case.
type CaseResult struct {
	RunID   string         `json:"run_id"`
	Seq     int64          `json:"seq"`
	Name    string         `json:"name"`
	Expect  string         `json:"expect"`
	Outcome string         `json:"outcome"`
	OK      bool           `json:"ok"`
	Failure *FailureRecord `json:"failure,omitempty"`
}

// FailureRecord is the stored form of a check.Failure.
type FailureRecord struct {
	Path   string          `json:"path,omitempty"`
	Reason string          `json:"reason"`
	Causes []FailureRecord `json:"causes,omitempty"`
}

// RecordFailure converts a failure for storage. Nil stays nil.
func RecordFailure(f *check.Failure) *FailureRecord {
	if f == nil {
		return nil
	}
	rec := &FailureRecord{Path: f.Path.String(), Reason: f.Reason}
	for _, c := range f.Causes {
		rec.Causes = append(rec.Causes, *RecordFailure(c))
	}
	return rec
}

// marshalFailure converts a failure record to JSON TEXT, or NULL when nil.
// HTML escaping is disabled so stored reasons match rendered diagnostics.
func marshalFailure(rec *FailureRecord) (sql.NullString, error) {
	if rec == nil {
		return sql.NullString{}, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return sql.NullString{}, fmt.Errorf("marshal failure: %w", err)
	}
	return sql.NullString{String: strings.TrimSuffix(buf.String(), "\n"), Valid: true}, nil
}

func unmarshalFailure(col sql.NullString) (*FailureRecord, error) {
	if !col.Valid {
		return nil, nil
	}
	var rec FailureRecord
	if err := json.Unmarshal([]byte(col.String), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &rec, nil
}

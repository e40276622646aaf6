package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/tcheck/pkg/check"
)

// Case outcomes.
const (
	OutcomePass  = "pass"
	OutcomeFail  = "fail"
	OutcomeError = "error" // the value could not be produced
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name    string `json:"name"`
	Expect  string `json:"expect"`
	Outcome string `json:"outcome"`

	// OK is true when the outcome matched every expectation of the case.
	OK bool `json:"ok"`

	// Report is the failure message for rejected values, or the error
	// that prevented the value from being loaded.
	Report string `json:"report,omitempty"`

	// Failure is the check's diagnosis for rejected values.
	Failure *check.Failure `json:"-"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Scenario string `json:"scenario"`
	Check    string `json:"check"`

	// RunID identifies the recorded run, when a recorder was used.
	RunID string `json:"run_id,omitempty"`

	// Pass indicates overall success: every case matched its expectations.
	Pass bool `json:"pass"`

	Cases []CaseResult `json:"cases"`

	// Errors contains mismatch messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario, checkName string) *Result {
	return &Result{
		Scenario: scenario,
		Check:    checkName,
		Pass:     true,
		Cases:    []CaseResult{},
		Errors:   []string{},
	}
}

// AddError adds a mismatch message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Counts returns how many cases matched and how many did not.
func (r *Result) Counts() (ok, mismatched int) {
	for _, c := range r.Cases {
		if c.OK {
			ok++
		} else {
			mismatched++
		}
	}
	return ok, mismatched
}

// Report renders the result for golden comparison. It contains no run IDs
// or other per-run data.
func (r *Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(&b, "check: %s\n", r.Check)
	for _, c := range r.Cases {
		status := "ok"
		if !c.OK {
			status = "MISMATCH"
		}
		fmt.Fprintf(&b, "%s %s: %s", status, c.Name, c.Outcome)
		if c.Report != "" {
			fmt.Fprintf(&b, ": %s", c.Report)
		}
		b.WriteByte('\n')
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}
	ok, mismatched := r.Counts()
	fmt.Fprintf(&b, "total: %d ok, %d mismatched\n", ok, mismatched)
	return b.String()
}

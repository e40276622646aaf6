package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/tcheck/pkg/check"
)

// AssertionError describes a case whose outcome did not match its
// expectations.
type AssertionError struct {
	Case     string // case name
	Expected string // human-readable expected outcome
	Actual   string // human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("case %q: expected %s, got %s", e.Case, e.Expected, e.Actual)
}

// EvaluateCase compares a check's verdict on a case value against the
// case's expectations. err is the check's result; nil means the value
// passed. Every unmet expectation is reported.
func EvaluateCase(c *Case, err error) []error {
	var errs []error

	if err == nil {
		if c.Expect == ExpectFail {
			errs = append(errs, &AssertionError{Case: c.Name, Expected: "failure", Actual: "pass"})
		}
		return errs
	}

	f, ok := check.AsFailure(err)
	if !ok {
		f = &check.Failure{Reason: err.Error(), Err: err}
	}

	if c.Expect == ExpectPass {
		return append(errs, &AssertionError{Case: c.Name, Expected: "pass", Actual: "failure: " + f.Error()})
	}

	if c.Path != nil {
		if got := f.Path.String(); got != *c.Path {
			errs = append(errs, &AssertionError{
				Case:     c.Name,
				Expected: fmt.Sprintf("failure at %s", describePath(*c.Path)),
				Actual:   fmt.Sprintf("failure at %s", describePath(got)),
			})
		}
	}

	if c.Reason != "" && !strings.Contains(f.Error(), c.Reason) {
		errs = append(errs, &AssertionError{
			Case:     c.Name,
			Expected: fmt.Sprintf("failure mentioning %q", c.Reason),
			Actual:   fmt.Sprintf("%q", f.Error()),
		})
	}

	return errs
}

func describePath(p string) string {
	if p == "" {
		return "root"
	}
	return p
}

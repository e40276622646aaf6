package check

import (
	"errors"

	"github.com/roach88/tcheck/pkg/value"
)

// Array passes sequences whose every element satisfies elem.
//
// A map counts as a sequence only when its keys are exactly the integers
// 0..n-1. Any other key, or a gap, rejects the value as "not an array"
// before elements are inspected.
func Array(elem Check) Check {
	mustChecks("array", elem)
	return func(v any) error {
		elems, err := elements(v)
		if err != nil {
			return err
		}
		for i, e := range elems {
			if err := elem(e); err != nil {
				return at(err, i)
			}
		}
		return nil
	}
}

// StrictArray passes sequences of exactly len(elems) elements where
// element i satisfies elems[i].
func StrictArray(elems ...Check) Check {
	mustChecks("strictArray", elems...)
	checks := append([]Check(nil), elems...)
	return func(v any) error {
		got, err := elements(v)
		if err != nil {
			return err
		}
		if len(got) != len(checks) {
			return fail("array of length %d expected, got length %d", len(checks), len(got))
		}
		for i, c := range checks {
			if err := c(got[i]); err != nil {
				return at(err, i)
			}
		}
		return nil
	}
}

func elements(v any) ([]any, error) {
	elems, err := value.Elements(v)
	if errors.Is(err, value.ErrNotTable) {
		return nil, expected("array", v)
	}
	if err != nil {
		return nil, fail("array expected: %v", err)
	}
	return elems, nil
}

package check

import "github.com/roach88/tcheck/pkg/value"

// Union passes values accepted by at least one of checks, tried in order.
//
// When every member rejects the value, the failure lists each member's
// failure as a cause, in evaluation order.
func Union(checks ...Check) Check {
	members := mustComposite("union", checks)
	return func(v any) error {
		causes := make([]*Failure, 0, len(members))
		for _, c := range members {
			err := c(v)
			if err == nil {
				return nil
			}
			causes = append(causes, asFailure(err))
		}
		return &Failure{
			Reason: "no union member matched " + value.TypeName(v),
			Causes: causes,
		}
	}
}

// Intersection passes values accepted by every one of checks. The first
// rejection is returned as is.
func Intersection(checks ...Check) Check {
	members := mustComposite("intersection", checks)
	return func(v any) error {
		for _, c := range members {
			if err := c(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Optional passes nil, and otherwise whatever c passes.
func Optional(c Check) Check {
	mustChecks("optional", c)
	return func(v any) error {
		if value.IsNil(v) {
			return nil
		}
		return c(v)
	}
}

func mustComposite(combinator string, checks []Check) []Check {
	if len(checks) == 0 {
		panic(constructionError(combinator, ErrCodeEmptyComposite, "at least one check is required"))
	}
	mustChecks(combinator, checks...)
	return append([]Check(nil), checks...)
}

// mustChecks panics when any sub-check is nil. Positions are 1-based.
func mustChecks(combinator string, checks ...Check) {
	for i, c := range checks {
		if c == nil {
			panic(constructionError(combinator, ErrCodeNilCheck, "check #%d is nil", i+1))
		}
	}
}

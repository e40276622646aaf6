package check

import (
	"reflect"

	"github.com/roach88/tcheck/pkg/value"
)

// Check tests a single untyped value. A nil error means the value
// conforms; otherwise the error describes why it does not.
type Check func(v any) error

// Test reports whether v conforms.
func (c Check) Test(v any) bool {
	return c(v) == nil
}

// Validate runs the check and returns any rejection as a *Failure.
func (c Check) Validate(v any) error {
	if err := c(v); err != nil {
		return asFailure(err)
	}
	return nil
}

// Must returns c, panicking if err is non-nil. It is intended for
// package-level definitions built from constant arguments:
//
//	var percent = check.Must(check.NumberConstrained(0, 100))
func Must(c Check, err error) Check {
	if err != nil {
		panic(err)
	}
	return c
}

// As runs c against v and narrows v to T.
func As[T any](c Check, v any) (T, error) {
	var zero T
	if err := c.Validate(v); err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fail("checked value is %s, not %s", value.TypeName(v), reflect.TypeFor[T]())
	}
	return t, nil
}

// Predicate builds a leaf check from a boolean test. Rejected values fail
// with "<want> expected, got <type>".
func Predicate(want string, pred func(v any) bool) Check {
	return func(v any) error {
		if !pred(v) {
			return expected(want, v)
		}
		return nil
	}
}

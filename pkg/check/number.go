package check

import (
	"fmt"
	"math"

	"github.com/roach88/tcheck/pkg/value"
)

// Number passes any numeric value except NaN. Infinities are numbers.
var Number Check = func(v any) error {
	_, err := number(v)
	return err
}

// number returns v as a float64 under the Number policy.
func number(v any) (float64, error) {
	f, ok := value.AsNumber(v)
	if !ok {
		return 0, expected("number", v)
	}
	if math.IsNaN(f) {
		return 0, fail("unexpected NaN value")
	}
	return f, nil
}

// NaN passes only the NaN number. It never overlaps Number.
var NaN Check = func(v any) error {
	f, ok := value.AsNumber(v)
	if !ok {
		return expected("number", v)
	}
	if !math.IsNaN(f) {
		return fail("NaN expected, got %s", value.FormatNumber(f))
	}
	return nil
}

// Integer passes finite whole numbers.
var Integer = numberWhere("integer", func(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
})

// NumberFinite passes numbers other than NaN and the infinities.
var NumberFinite = numberWhere("finite number", func(f float64) bool {
	return !math.IsInf(f, 0)
})

var (
	NumberPositive = NumberGt(0)
	NumberNegative = NumberLt(0)
)

// numberWhere passes numbers satisfying pred.
func numberWhere(want string, pred func(float64) bool) Check {
	return func(v any) error {
		f, err := number(v)
		if err != nil {
			return err
		}
		if !pred(f) {
			return fail("%s expected, got %s", want, value.FormatNumber(f))
		}
		return nil
	}
}

// NumberGt passes numbers greater than min.
func NumberGt(min float64) Check {
	return numberWhere("number greater than "+value.FormatNumber(min), func(f float64) bool {
		return f > min
	})
}

// NumberLt passes numbers less than max.
func NumberLt(max float64) Check {
	return numberWhere("number less than "+value.FormatNumber(max), func(f float64) bool {
		return f < max
	})
}

// NumberGte passes numbers greater than or equal to min.
func NumberGte(min float64) Check {
	return numberWhere("number greater than or equal to "+value.FormatNumber(min), func(f float64) bool {
		return f >= min
	})
}

// NumberLte passes numbers less than or equal to max.
func NumberLte(max float64) Check {
	return numberWhere("number less than or equal to "+value.FormatNumber(max), func(f float64) bool {
		return f <= max
	})
}

// NumberConstrained passes numbers with min <= v <= max.
// Inverted or NaN bounds are rejected here rather than producing a check
// that can never pass.
func NumberConstrained(min, max float64) (Check, error) {
	if err := checkBounds("numberConstrained", min, max); err != nil {
		return nil, err
	}
	want := fmt.Sprintf("number between %s and %s", value.FormatNumber(min), value.FormatNumber(max))
	return numberWhere(want, func(f float64) bool {
		return min <= f && f <= max
	}), nil
}

// NumberConstrainedExclusive passes numbers with min < v < max.
// min == max is accepted and yields a check that rejects every value.
func NumberConstrainedExclusive(min, max float64) (Check, error) {
	if err := checkBounds("numberConstrainedExclusive", min, max); err != nil {
		return nil, err
	}
	want := fmt.Sprintf("number strictly between %s and %s", value.FormatNumber(min), value.FormatNumber(max))
	return numberWhere(want, func(f float64) bool {
		return min < f && f < max
	}), nil
}

func checkBounds(combinator string, min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) {
		return constructionError(combinator, ErrCodeNaNBound, "bounds must not be NaN")
	}
	if min > max {
		return constructionError(combinator, ErrCodeInvertedBounds,
			"min %s is greater than max %s", value.FormatNumber(min), value.FormatNumber(max))
	}
	return nil
}

package check_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tcheck/pkg/check"
)

var (
	nan  = math.NaN()
	inf  = math.Inf(1)
	ninf = math.Inf(-1)
)

func TestNumber(t *testing.T) {
	for _, v := range []any{0, -3, 2.5, uint64(7), float32(1.5), json.Number("12.5"), inf, ninf} {
		assert.True(t, check.Number.Test(v), "%#v", v)
	}
	for _, v := range []any{nan, "1", true, nil, []byte{1}} {
		assert.False(t, check.Number.Test(v), "%#v", v)
	}

	err := check.Number.Validate(nan)
	require.Error(t, err)
	assert.Equal(t, "unexpected NaN value", err.Error())
}

func TestNaN(t *testing.T) {
	assert.True(t, check.NaN.Test(nan))
	assert.True(t, check.NaN.Test(float32(nan)))
	assert.False(t, check.NaN.Test(1))
	assert.False(t, check.NaN.Test(inf))
	assert.False(t, check.NaN.Test("NaN"))

	err := check.NaN.Validate(1)
	require.Error(t, err)
	assert.Equal(t, "NaN expected, got 1", err.Error())
}

func TestNaN_ExclusiveWithNumber(t *testing.T) {
	for _, v := range []any{nan, 0, 1.5, inf, ninf, -2} {
		assert.NotEqual(t, check.Number.Test(v), check.NaN.Test(v), "%v", v)
	}
}

func TestInteger(t *testing.T) {
	for _, v := range []any{0, -4, 3.0, int8(2), uint(9)} {
		assert.True(t, check.Integer.Test(v), "%#v", v)
	}
	for _, v := range []any{1.5, inf, nan, "1"} {
		assert.False(t, check.Integer.Test(v), "%#v", v)
	}

	err := check.Integer.Validate(1.5)
	require.Error(t, err)
	assert.Equal(t, "integer expected, got 1.5", err.Error())
}

func TestNumberFinite(t *testing.T) {
	assert.True(t, check.NumberFinite.Test(1e300))
	assert.False(t, check.NumberFinite.Test(inf))
	assert.False(t, check.NumberFinite.Test(ninf))
	assert.False(t, check.NumberFinite.Test(nan))
}

func TestNumberSign(t *testing.T) {
	assert.True(t, check.NumberPositive.Test(0.1))
	assert.False(t, check.NumberPositive.Test(0))
	assert.True(t, check.NumberNegative.Test(-0.1))
	assert.False(t, check.NumberNegative.Test(0))
}

func TestNumberBounds(t *testing.T) {
	tests := []struct {
		name  string
		check check.Check
		pass  []float64
		fail  []float64
		msg   string
	}{
		{"Gt", check.NumberGt(5), []float64{5.5, 100, inf}, []float64{5, -1, ninf}, "number greater than 5 expected, got 5"},
		{"Lt", check.NumberLt(5), []float64{4.9, -100, ninf}, []float64{5, 6, inf}, "number less than 5 expected, got 5"},
		{"Gte", check.NumberGte(5), []float64{5, 6}, []float64{4.99}, "number greater than or equal to 5 expected, got 4.99"},
		{"Lte", check.NumberLte(5), []float64{5, 4}, []float64{5.01}, "number less than or equal to 5 expected, got 5.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.pass {
				assert.True(t, tt.check.Test(v), "%v", v)
			}
			for _, v := range tt.fail {
				assert.False(t, tt.check.Test(v), "%v", v)
			}
			assert.False(t, tt.check.Test(nan), "NaN never satisfies a bound")
			assert.False(t, tt.check.Test("5"))

			err := tt.check.Validate(tt.fail[0])
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestNumberConstrained(t *testing.T) {
	c := check.Must(check.NumberConstrained(0, 10))

	assert.True(t, c.Test(0))
	assert.True(t, c.Test(10))
	assert.True(t, c.Test(5))
	assert.False(t, c.Test(-0.001))
	assert.False(t, c.Test(10.5))
	assert.False(t, c.Test(nan))

	err := c.Validate(11)
	require.Error(t, err)
	assert.Equal(t, "number between 0 and 10 expected, got 11", err.Error())
}

func TestNumberConstrainedExclusive(t *testing.T) {
	c := check.Must(check.NumberConstrainedExclusive(0, 10))

	assert.False(t, c.Test(0))
	assert.False(t, c.Test(10))
	assert.True(t, c.Test(5))
	assert.True(t, c.Test(0.001))

	err := c.Validate(10)
	require.Error(t, err)
	assert.Equal(t, "number strictly between 0 and 10 expected, got 10", err.Error())
}

func TestNumberConstrained_EqualBounds(t *testing.T) {
	inclusive := check.Must(check.NumberConstrained(3, 3))
	assert.True(t, inclusive.Test(3))
	assert.False(t, inclusive.Test(3.1))

	// legal, but no number lies strictly between equal bounds
	exclusive := check.Must(check.NumberConstrainedExclusive(3, 3))
	for _, v := range []any{3, 2.999, 3.001, inf} {
		assert.False(t, exclusive.Test(v), "%v", v)
	}
}

func TestNumberConstrained_InvalidBounds(t *testing.T) {
	tests := []struct {
		name     string
		build    func(min, max float64) (check.Check, error)
		min, max float64
		code     string
	}{
		{"inverted", check.NumberConstrained, 10, 0, check.ErrCodeInvertedBounds},
		{"inverted exclusive", check.NumberConstrainedExclusive, 1, -1, check.ErrCodeInvertedBounds},
		{"NaN min", check.NumberConstrained, nan, 1, check.ErrCodeNaNBound},
		{"NaN max", check.NumberConstrainedExclusive, 0, nan, check.ErrCodeNaNBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build(tt.min, tt.max)

			assert.Nil(t, c)
			var ce *check.ConstructionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.code, ce.Code)
		})
	}
}

func TestNumberConstrained_InvertedMessage(t *testing.T) {
	_, err := check.NumberConstrained(10, 0)
	require.Error(t, err)
	assert.Equal(t, "[E201] numberConstrained: min 10 is greater than max 0", err.Error())
}

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"aa", "a", 1},
		{"A", "a", -1},
		{"", "", 0},
		{"", "a", -1},
		// U+FF61 is a single UTF-16 unit; U+1F600 is a surrogate pair
		// starting 0xD83D, which sorts before 0xFF61 in UTF-16 but after
		// it in UTF-8.
		{"\U0001F600", "｡", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			result := CompareStrings(tt.a, tt.b)
			switch {
			case tt.expected < 0:
				assert.Less(t, result, 0)
			case tt.expected > 0:
				assert.Greater(t, result, 0)
			default:
				assert.Equal(t, 0, result)
			}
		})
	}
}

func TestCompareKeysRanks(t *testing.T) {
	assert.Less(t, CompareKeys(100, "a"), 0, "numbers before strings")
	assert.Less(t, CompareKeys("z", false), 0, "strings before booleans")
	assert.Less(t, CompareKeys(false, true), 0)
	assert.Less(t, CompareKeys(true, 3.5+0i), 0, "booleans before other keys")
	assert.Less(t, CompareKeys(2, 10), 0, "numbers compare numerically")
	assert.NotEqual(t, 0, CompareKeys(int(1), float64(1)), "equal numbers of different types still order")
}

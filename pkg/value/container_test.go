package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesSliceByIndex(t *testing.T) {
	entries, ok := Entries([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []Entry{{Key: 0, Value: "a"}, {Key: 1, Value: "b"}}, entries)
}

func TestEntriesMapSorted(t *testing.T) {
	m := map[any]any{"b": 2, 10: "ten", "a": 1, 2: "two", true: "yes"}

	// Run repeatedly: map iteration order is randomized per range.
	for i := 0; i < 20; i++ {
		entries, ok := Entries(m)
		require.True(t, ok)

		keys := make([]any, len(entries))
		for j, e := range entries {
			keys[j] = e.Key
		}
		assert.Equal(t, []any{2, 10, "a", "b", true}, keys)
	}
}

func TestEntriesNotTable(t *testing.T) {
	_, ok := Entries("abc")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	type name string

	v, ok := Lookup(map[string]any{"x": 1}, "x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = Lookup(map[name]int{"x": 2}, "x")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = Lookup(map[int64]string{3: "c"}, 3)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	v, ok = Lookup([]any{"a", "b"}, 1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = Lookup(map[string]any{"x": 1}, "y")
	assert.False(t, ok)

	_, ok = Lookup(map[int]any{1: 1}, 1.5)
	assert.False(t, ok, "fractional key must not truncate onto an int key")

	_, ok = Lookup(map[any]any{"x": 1}, []int{1})
	assert.False(t, ok, "unhashable key must not panic")

	_, ok = Lookup([]any{1}, "0")
	assert.False(t, ok)
}

func TestElementsDenseMap(t *testing.T) {
	elems, err := Elements(map[int]string{0: "a", 1: "b", 2: "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, elems)
}

func TestElementsGap(t *testing.T) {
	_, err := Elements(map[int]int{1: 1, 3: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap at index 0")

	_, err = Elements(map[int]int{0: 0, 2: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap at index 1")
}

func TestElementsNonIntegerKey(t *testing.T) {
	_, err := Elements(map[any]any{0: "a", "name": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `non-integer key "name"`)

	_, err = Elements(map[float64]any{0: "a", 0.5: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-integer key 0.5")
}

func TestElementsNotTable(t *testing.T) {
	_, err := Elements(42)
	assert.ErrorIs(t, err, ErrNotTable)
}

func TestElementsEmpty(t *testing.T) {
	elems, err := Elements(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestIsPresenceMarker(t *testing.T) {
	assert.True(t, IsPresenceMarker(true))
	assert.True(t, IsPresenceMarker(struct{}{}))
	assert.False(t, IsPresenceMarker(false))
	assert.False(t, IsPresenceMarker(1))
	assert.False(t, IsPresenceMarker(nil))
}

func TestLen(t *testing.T) {
	n, ok := Len(map[string]int{"a": 1, "b": 2})
	require.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = Len("ab")
	assert.False(t, ok)
}

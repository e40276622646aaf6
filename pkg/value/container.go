package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
)

// ErrNotTable is returned when a container operation receives a non-table.
var ErrNotTable = errors.New("not a table")

// Entry is one key/value pair of a table.
type Entry struct {
	Key   any
	Value any
}

// Entries returns the entries of a table. Slices and arrays yield their
// elements keyed by index; maps yield their entries sorted by CompareKeys.
func Entries(v any) ([]Entry, bool) {
	if KindOf(v) != Table {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Entry, rv.Len())
		for i := range out {
			out[i] = Entry{Key: i, Value: rv.Index(i).Interface()}
		}
		return out, true
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
		}
		slices.SortFunc(out, func(a, b Entry) int {
			return CompareKeys(a.Key, b.Key)
		})
		return out, true
	}
	return nil, false
}

// Len returns the number of entries in a table.
func Len(v any) (int, bool) {
	if KindOf(v) != Table {
		return 0, false
	}
	return reflect.ValueOf(v).Len(), true
}

// Lookup returns the value stored under key in a table.
//
// The key is converted to the map's key type when both are strings or both
// are numbers, so a field name finds its entry in map[Name]any as well as
// in map[string]any. Slices accept integral numeric keys.
func Lookup(v any, key any) (any, bool) {
	if KindOf(v) != Table {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kv, ok := convertKey(key, rv.Type().Key())
		if !ok {
			return nil, false
		}
		got := rv.MapIndex(kv)
		if !got.IsValid() {
			return nil, false
		}
		return got.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(key)
		if !ok || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// convertKey adapts key to a map key type without ever panicking on an
// unhashable key.
func convertKey(key any, t reflect.Type) (reflect.Value, bool) {
	if key == nil {
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if !kv.Type().Comparable() {
		return reflect.Value{}, false
	}
	if kv.Type().AssignableTo(t) {
		return kv, true
	}
	if t.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}

	switch {
	case kv.Kind() == reflect.String && t.Kind() == reflect.String:
		return kv.Convert(t), true
	case isNumericKind(kv.Kind()) && isNumericKind(t.Kind()):
		converted := kv.Convert(t)
		a, _ := AsNumber(key)
		b, _ := AsNumber(converted.Interface())
		if a != b {
			return reflect.Value{}, false
		}
		return converted, true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// index converts an integral, non-negative numeric key to an int.
func index(key any) (int, bool) {
	f, ok := AsNumber(key)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Elements classifies v as a sequence and returns its elements in index
// order.
//
// Slices and arrays are sequences by construction. A map is a sequence
// only when every key is an integral number and the keys form the dense
// run 0..n-1. A non-integer key or a gap means v is not a sequence at all.
func Elements(v any) ([]any, error) {
	if KindOf(v) != Table {
		return nil, ErrNotTable
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	case reflect.Map:
		n := rv.Len()
		byIndex := make(map[int]any, n)
		entries, _ := Entries(v)
		for _, e := range entries {
			i, ok := index(e.Key)
			if !ok {
				return nil, fmt.Errorf("non-integer key %s", Render(e.Key))
			}
			if _, dup := byIndex[i]; dup {
				return nil, fmt.Errorf("duplicate index %d", i)
			}
			byIndex[i] = e.Value
		}
		out := make([]any, n)
		for i := range out {
			elem, ok := byIndex[i]
			if !ok {
				return nil, fmt.Errorf("gap at index %d", i)
			}
			out[i] = elem
		}
		return out, nil
	}
	return nil, ErrNotTable
}

// IsPresenceMarker reports whether v marks set membership: boolean true,
// or the empty struct used by Go's map[T]struct{} sets.
func IsPresenceMarker(v any) bool {
	switch m := v.(type) {
	case bool:
		return m
	case struct{}:
		return true
	}
	return false
}

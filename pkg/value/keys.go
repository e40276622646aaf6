package value

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf16"
)

const (
	rankNumber = iota
	rankString
	rankBoolean
	rankOther
)

func keyRank(k any) int {
	switch KindOf(k) {
	case Number:
		return rankNumber
	case String:
		return rankString
	case Boolean:
		return rankBoolean
	}
	return rankOther
}

// CompareKeys orders table keys deterministically.
// Numbers sort first (numerically), then strings by UTF-16 code units,
// then booleans (false first), then other keys by rendered form.
// Keys that still tie are ordered by Go type name.
func CompareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	var c int
	switch ra {
	case rankNumber:
		fa, _ := AsNumber(a)
		fb, _ := AsNumber(b)
		c = cmp.Compare(fa, fb)
	case rankString:
		sa, _ := AsString(a)
		sb, _ := AsString(b)
		c = CompareStrings(sa, sb)
	case rankBoolean:
		c = cmp.Compare(boolRank(a), boolRank(b))
	default:
		c = strings.Compare(Render(a), Render(b))
	}
	if c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}

func boolRank(v any) int {
	if reflect.ValueOf(v).Bool() {
		return 1
	}
	return 0
}

// CompareStrings compares strings by UTF-16 code units (RFC 8785 order).
// Go's native comparison uses UTF-8 bytes, which orders supplementary
// characters differently.
func CompareStrings(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(len(a16), len(b16))
}

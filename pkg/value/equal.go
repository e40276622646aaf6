package value

import (
	"reflect"
)

// Equal reports whether a and b are the same value.
//
// Primitives compare by value: numbers after normalization (so int(1)
// equals float64(1) and NaN equals nothing), strings and booleans including
// named types. Maps, slices and funcs compare by identity. Other values use
// Go equality when their dynamic types match.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case Nil:
		return true
	case Number:
		fa, _ := AsNumber(a)
		fb, _ := AsNumber(b)
		return fa == fb
	case String:
		sa, _ := AsString(a)
		sb, _ := AsString(b)
		return sa == sb
	case Boolean:
		return boolRank(a) == boolRank(b)
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	return safeEqual(a, b)
}

// safeEqual is a == b, reporting false where Go would panic on
// uncomparable dynamic values nested in structs or arrays.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

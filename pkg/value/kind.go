package value

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/roach88/tcheck/pkg/host"
)

// Kind is the runtime category of a value.
type Kind uint8

const (
	Nil Kind = iota
	Boolean
	Number
	String
	Table
	Function
	Thread
	Buffer
	Userdata
)

var kindNames = [...]string{
	Nil:      "nil",
	Boolean:  "boolean",
	Number:   "number",
	String:   "string",
	Table:    "table",
	Function: "function",
	Thread:   "thread",
	Buffer:   "buffer",
	Userdata: "userdata",
}

// String returns the kind name as reported by type().
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a kind from its name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", name)
}

// KindOf classifies v.
//
// Host collaborators (datatypes, instances, enums) are userdata whatever
// their Go representation. Nil pointers, funcs, chans and interfaces count
// as Nil; nil maps and slices are still (empty) tables.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return Nil
	case bool:
		return Boolean
	case string:
		return String
	case json.Number:
		return Number
	case []byte:
		return Buffer
	case host.Datatype, host.Instance, host.Enum, host.EnumItem:
		if isNilRef(reflect.ValueOf(v)) {
			return Nil
		}
		return Userdata
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.String:
		return String
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Buffer
		}
		return Table
	case reflect.Array, reflect.Map:
		return Table
	case reflect.Func:
		if rv.IsNil() {
			return Nil
		}
		return Function
	case reflect.Chan:
		if rv.IsNil() {
			return Nil
		}
		return Thread
	case reflect.Pointer, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return Nil
		}
		return Userdata
	default:
		return Userdata
	}
}

// IsNil reports whether v is the host's "no value" marker.
func IsNil(v any) bool {
	return KindOf(v) == Nil
}

func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// TypeName is the typeof() view of v: host values report their own type
// name, everything else its kind name.
func TypeName(v any) string {
	if IsNil(v) {
		return Nil.String()
	}
	switch t := v.(type) {
	case host.Datatype:
		return t.TypeName()
	case host.Instance:
		return "Instance"
	case host.EnumItem:
		return "EnumItem"
	case host.Enum:
		return "Enum"
	}
	return KindOf(v).String()
}

// AsNumber normalizes any numeric value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// AsString returns the string content of v, including named string types.
func AsString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case nil, json.Number:
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

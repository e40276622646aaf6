package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxRenderDepth bounds rendering of nested (possibly cyclic) tables.
const maxRenderDepth = 6

// Render formats v compactly for diagnostics.
//
// Rendering is canonical: table keys follow CompareKeys, strings are NFC
// normalized and HTML characters are left unescaped, so equal values
// always render identically.
func Render(v any) string {
	var buf strings.Builder
	render(&buf, v, 0)
	return buf.String()
}

func render(buf *strings.Builder, v any, depth int) {
	switch KindOf(v) {
	case Nil:
		buf.WriteString("nil")
	case Boolean:
		buf.WriteString(strconv.FormatBool(boolRank(v) == 1))
	case Number:
		f, _ := AsNumber(v)
		buf.WriteString(FormatNumber(f))
	case String:
		s, _ := AsString(v)
		buf.WriteString(renderString(s))
	case Buffer:
		fmt.Fprintf(buf, "buffer(%d bytes)", reflect.ValueOf(v).Len())
	case Function, Thread:
		buf.WriteString(KindOf(v).String())
	case Table:
		renderTable(buf, v, depth)
	default:
		name := TypeName(v)
		if s, ok := v.(fmt.Stringer); ok {
			fmt.Fprintf(buf, "%s(%s)", name, s.String())
			return
		}
		buf.WriteString(name)
	}
}

func renderTable(buf *strings.Builder, v any, depth int) {
	rv := reflect.ValueOf(v)
	isSeq := rv.Kind() != reflect.Map

	if depth >= maxRenderDepth {
		if isSeq {
			buf.WriteString("[...]")
		} else {
			buf.WriteString("{...}")
		}
		return
	}

	entries, _ := Entries(v)
	if isSeq {
		buf.WriteByte('[')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			render(buf, e.Value, depth+1)
		}
		buf.WriteByte(']')
		return
	}

	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		render(buf, e.Key, depth+1)
		buf.WriteByte(':')
		render(buf, e.Value, depth+1)
	}
	buf.WriteByte('}')
}

// FormatNumber renders integral values without a fractional part and
// everything else in shortest form.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// renderString quotes s after NFC normalization, without HTML escaping.
func renderString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

package check

import (
	"regexp"
	"slices"
	"strings"

	"github.com/roach88/tcheck/pkg/value"
)

// Type passes when the value's kind is exactly kind.
func Type(kind value.Kind) Check {
	return func(v any) error {
		if got := value.KindOf(v); got != kind {
			return fail("%s expected, got %s", kind, got)
		}
		return nil
	}
}

// TypeName is Type with the kind given by name.
func TypeName(name string) (Check, error) {
	kind, err := value.ParseKind(name)
	if err != nil {
		ce := constructionError("type", ErrCodeInvalidArgument, "%v", err)
		ce.Err = err
		return nil, ce
	}
	return Type(kind), nil
}

// TypeOf passes when the value's host type name is name, e.g. "Vector3"
// for a host vector or "number" for any number.
func TypeOf(name string) Check {
	return func(v any) error {
		if got := value.TypeName(v); got != name {
			return fail("%s expected, got %s", name, got)
		}
		return nil
	}
}

// Primitive checks.
var (
	// Any passes every value except nil.
	Any Check = func(v any) error {
		if value.IsNil(v) {
			return fail("any expected, got nil")
		}
		return nil
	}

	Boolean  = Type(value.Boolean)
	Buffer   = Type(value.Buffer)
	Thread   = Type(value.Thread)
	Callback = Type(value.Function)
	String   = Type(value.String)
	Table    = Type(value.Table)
	Userdata = Type(value.Userdata)

	// None passes only nil.
	None = Type(value.Nil)

	// Vector passes host vectors.
	Vector = TypeOf("Vector3")
)

// Aliases matching the host's own names.
var (
	Function = Callback
	Nil      = None
)

// Literal passes values equal to one of the given literals. Numbers
// compare by value across Go numeric types.
func Literal(values ...any) (Check, error) {
	if len(values) == 0 {
		return nil, constructionError("literal", ErrCodeEmptyLiteral, "at least one literal value is required")
	}
	return literal(slices.Clone(values)), nil
}

func literal(allowed []any) Check {
	return func(v any) error {
		for _, a := range allowed {
			if value.Equal(v, a) {
				return nil
			}
		}
		if len(allowed) == 1 {
			return fail("%s expected, got %s", value.Render(allowed[0]), value.Render(v))
		}
		return fail("one of %s expected, got %s", renderList(allowed), value.Render(v))
	}
}

func renderList(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = value.Render(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// KeyOf is a literal check over the keys of table, captured now.
func KeyOf(table any) (Check, error) {
	entries, err := literalEntries("keyOf", table)
	if err != nil {
		return nil, err
	}
	keys := make([]any, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return literal(keys), nil
}

// ValueOf is a literal check over the values of table, captured now.
func ValueOf(table any) (Check, error) {
	entries, err := literalEntries("valueOf", table)
	if err != nil {
		return nil, err
	}
	vals := make([]any, len(entries))
	for i, e := range entries {
		vals[i] = e.Value
	}
	return literal(vals), nil
}

func literalEntries(combinator string, table any) ([]value.Entry, error) {
	entries, ok := value.Entries(table)
	if !ok {
		return nil, constructionError(combinator, ErrCodeInvalidArgument, "table expected, got %s", value.TypeName(table))
	}
	if len(entries) == 0 {
		return nil, constructionError(combinator, ErrCodeEmptyLiteral, "table has no entries")
	}
	return entries, nil
}

// Match passes strings containing a match of pattern. Patterns use Go's
// regexp syntax and are unanchored; add ^ and $ to match whole strings.
func Match(pattern string) (Check, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		ce := constructionError("match", ErrCodeInvalidPattern, "%v", err)
		ce.Err = err
		return nil, ce
	}
	return func(v any) error {
		s, ok := value.AsString(v)
		if !ok {
			return expected("string", v)
		}
		if !re.MatchString(s) {
			return fail("%s does not match pattern %q", value.Render(s), pattern)
		}
		return nil
	}, nil
}

package check

import (
	"slices"

	"github.com/roach88/tcheck/pkg/value"
)

// Fields maps field (or child) names to the checks their values must pass.
type Fields map[string]Check

// fieldList is an immutable snapshot of Fields in a stable visit order.
type fieldList struct {
	names    []string
	checks   []Check
	declared map[string]struct{}
}

func compileFields(combinator string, fields Fields) fieldList {
	fl := fieldList{
		names:    make([]string, 0, len(fields)),
		declared: make(map[string]struct{}, len(fields)),
	}
	for name := range fields {
		fl.names = append(fl.names, name)
	}
	slices.SortFunc(fl.names, value.CompareStrings)
	for _, name := range fl.names {
		c := fields[name]
		if c == nil {
			panic(constructionError(combinator, ErrCodeNilCheck, "field %q has a nil check", name))
		}
		fl.checks = append(fl.checks, c)
		fl.declared[name] = struct{}{}
	}
	return fl
}

func (fl fieldList) has(name string) bool {
	_, ok := fl.declared[name]
	return ok
}

// match checks every declared field against the value lookup returns.
// Absent fields are checked as nil.
func (fl fieldList) match(lookup func(name string) (any, bool)) error {
	for i, name := range fl.names {
		got, ok := lookup(name)
		if !ok {
			got = nil
		}
		if err := fl.checks[i](got); err != nil {
			return at(err, name)
		}
	}
	return nil
}

// Interface passes tables whose declared fields satisfy their checks.
// Undeclared fields are ignored.
func Interface(fields Fields) Check {
	fl := compileFields("interface", fields)
	return func(v any) error {
		if value.KindOf(v) != value.Table {
			return expected("table", v)
		}
		return fl.match(func(name string) (any, bool) {
			return value.Lookup(v, name)
		})
	}
}

// StrictInterface is Interface that also rejects undeclared keys.
func StrictInterface(fields Fields) Check {
	fl := compileFields("strictInterface", fields)
	return func(v any) error {
		entries, ok := value.Entries(v)
		if !ok {
			return expected("table", v)
		}
		if err := fl.match(func(name string) (any, bool) {
			return value.Lookup(v, name)
		}); err != nil {
			return err
		}
		for _, e := range entries {
			if name, ok := e.Key.(string); ok && fl.has(name) {
				continue
			}
			if name, ok := value.AsString(e.Key); ok && fl.has(name) {
				continue
			}
			return &Failure{Path: Path{e.Key}, Reason: "unexpected field"}
		}
		return nil
	}
}

package check

import (
	"github.com/roach88/tcheck/pkg/host"
	"github.com/roach88/tcheck/pkg/value"
)

func instance(v any) (host.Instance, bool) {
	inst, ok := v.(host.Instance)
	if !ok || value.IsNil(v) {
		return nil, false
	}
	return inst, true
}

// Children passes instances whose immediate children satisfy fields, by
// child name. A missing child is checked as nil.
//
// If more than one child carries a declared name the check fails, even
// when one of them would pass on its own. Duplicates among undeclared
// names are ignored.
func Children(fields Fields) Check {
	fl := compileFields("children", fields)
	return func(v any) error {
		inst, ok := instance(v)
		if !ok {
			return expected("Instance", v)
		}
		byName := make(map[string]host.Instance, len(fl.names))
		for _, child := range inst.Children() {
			name := child.Name()
			if !fl.has(name) {
				continue
			}
			if _, dup := byName[name]; dup {
				return &Failure{Path: Path{name}, Reason: "multiple children named " + value.Render(name)}
			}
			byName[name] = child
		}
		return fl.match(func(name string) (any, bool) {
			child, ok := byName[name]
			if !ok {
				return nil, false
			}
			return child, true
		})
	}
}

// InstanceOf passes instances whose class is exactly class. When fields is
// non-nil the instance's properties must also satisfy them, with Interface
// semantics.
func InstanceOf(class string, fields Fields) Check {
	return instanceCheck("instanceOf", class, fields, func(inst host.Instance) bool {
		return inst.ClassName() == class
	})
}

// InstanceIsA is InstanceOf that also accepts subclasses of class.
func InstanceIsA(class string, fields Fields) Check {
	return instanceCheck("instanceIsA", class, fields, func(inst host.Instance) bool {
		return inst.IsA(class)
	})
}

func instanceCheck(combinator, class string, fields Fields, match func(host.Instance) bool) Check {
	var props *fieldList
	if fields != nil {
		fl := compileFields(combinator, fields)
		props = &fl
	}
	return func(v any) error {
		inst, ok := instance(v)
		if !ok {
			return expected(class, v)
		}
		if !match(inst) {
			return fail("%s expected, got %s", class, inst.ClassName())
		}
		if props == nil {
			return nil
		}
		return props.match(inst.Property)
	}
}

// Enum passes items of the enumeration e.
func Enum(e host.Enum) Check {
	if value.IsNil(e) {
		panic(constructionError("enum", ErrCodeInvalidArgument, "enum must not be nil"))
	}
	name := e.EnumName()
	return func(v any) error {
		item, ok := v.(host.EnumItem)
		if !ok || value.IsNil(v) {
			return fail("enum of %s expected, got %s", name, value.TypeName(v))
		}
		got := item.EnumType()
		if value.IsNil(got) || !value.Equal(got, e) {
			gotName := "nil"
			if !value.IsNil(got) {
				gotName = got.EnumName()
			}
			return fail("enum of %s expected, got enum of %s", name, gotName)
		}
		return nil
	}
}

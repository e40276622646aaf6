// Package check is a combinator library of runtime checks for untyped
// values.
//
// A Check inspects one `any` and either accepts it (nil error) or rejects
// it with a *Failure naming the offending sub-value and the reason.
// Checks are built once, usually at package initialization, and are then
// pure and immutable: invoking one never mutates the check or the value, so
// a single Check may be shared across goroutines without locking.
//
// LAYERS:
//
// Leaf checks recognize categories and constraints of scalar and opaque
// values:
//
//	check.Number, check.String, check.Integer, check.NaN
//	check.NumberConstrained(0, 10), check.Match(`^[a-z]+$`)
//	check.Literal("north", "south"), check.TypeOf("Vector3")
//
// Structural combinators recurse into containers:
//
//	check.Array(elem)             dense sequence, every element matches
//	check.StrictArray(a, b)       exactly two elements, positionally
//	check.Map(key, val)           every entry; Record is identical
//	check.Set(elem)               keys match, values are presence markers
//	check.Interface(Fields)       declared fields match, extras allowed
//	check.StrictInterface(Fields) declared fields match, extras rejected
//	check.Children(Fields)        named children of an Instance
//	check.InstanceOf / InstanceIsA nominal class plus optional fields
//
// Logical combinators compose any checks:
//
//	check.Union(a, b)        first success wins, in order
//	check.Intersection(a, b) first failure wins, in order
//	check.Optional(c)        nil or c
//	check.Enum(e)            an item of enumeration e
//
// Guarded invocation wraps a function so its arguments are validated as a
// tuple before the function runs:
//
//	area, err := check.Wrap(func(w, h float64) float64 { return w * h },
//		check.StrictArray(check.NumberPositive, check.NumberPositive))
//
// FAILURES:
//
// Ordinary mismatches are values, never panics. Failure.Path records the
// field names, indices and keys walked from the checked root, so
//
//	.players[2].name: string expected, got number
//
// points at the exact sub-value. Union reports every attempted branch as a
// cause, in evaluation order.
//
// CONSTRUCTION ERRORS:
//
// Constructors taking data (bounds, literals, patterns, tables) return a
// *ConstructionError for invalid input; wrap them in Must for constant
// definitions. A nil sub-check or an empty Union/Intersection is a
// programming error and panics with a *ConstructionError at construction,
// never later at check time.
//
// STATIC TYPES:
//
// Go cannot infer a static type from a check definition. As narrows a
// checked value to a Go type in one step:
//
//	pos, err := check.As[host.Vector3](check.Vector, v)
package check

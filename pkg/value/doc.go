// Package value classifies untyped Go values for runtime checking.
//
// Values reach checks as plain `any`: decoded documents, callback
// arguments, host objects. This package answers the questions every check
// asks before it can apply its own rule:
//
//   - What kind of value is this? KindOf maps any Go value onto a closed
//     set of categories (nil, boolean, number, string, table, function,
//     thread, buffer, userdata).
//   - What does the host call it? TypeName reports a host datatype's own
//     name, falling back to the kind name.
//   - Is this container a sequence? Elements performs the explicit
//     dense-index classification before sequence semantics apply.
//   - How do I walk it? Entries returns table entries in a stable order so
//     repeated checks visit keys identically.
//
// Table keys are ordered with CompareKeys: numbers ascending, then strings
// by UTF-16 code units (RFC 8785 ordering), then booleans, then anything
// else by its rendered form.
//
// Nothing in this package mutates the values it inspects.
package value

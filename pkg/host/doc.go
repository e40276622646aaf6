// Package host declares the host capabilities that checks consume but do
// not implement: opaque datatypes, the nominal instance tree, and
// enumerations.
//
// Checks only ever talk to these interfaces. The concrete types in this
// package (ClassTree, Node, StaticEnum, Vector3, Opaque) are a small
// in-memory host used by the CLI, the conformance harness and tests; an
// embedding application supplies its own implementations.
package host

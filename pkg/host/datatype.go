package host

import "fmt"

// Vector3 is the host's three-component vector datatype.
type Vector3 struct {
	X, Y, Z float64
}

func (Vector3) TypeName() string { return "Vector3" }

func (v Vector3) String() string { return fmt.Sprintf("%g, %g, %g", v.X, v.Y, v.Z) }

// Opaque is any other host datatype: a type name over an uninspected
// payload.
type Opaque struct {
	Type string
	Data any
}

func (o Opaque) TypeName() string { return o.Type }

package host

// Datatype is an opaque host value that reports its own type name, the
// way host datatypes such as Vector3 or Color3 do.
type Datatype interface {
	TypeName() string
}

// Instance is a node in the host's nominal object tree.
type Instance interface {
	// ClassName is the exact nominal class of the instance.
	ClassName() string

	// IsA reports whether the instance's class is className or inherits
	// from it.
	IsA(className string) bool

	// Name is the instance's name among its siblings.
	Name() string

	// Children returns the immediate children in host order.
	Children() []Instance

	// Property returns a named field of the instance.
	Property(name string) (any, bool)
}

// Enum identifies an enumeration.
type Enum interface {
	EnumName() string
}

// EnumItem is one member of an enumeration.
type EnumItem interface {
	EnumType() Enum
	ItemName() string
	ItemValue() int
}

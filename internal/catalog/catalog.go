// Package catalog names checks so that tooling can refer to them by string.
//
// The default catalogue holds every leaf check of pkg/check plus one
// recognizer per host datatype. Applications register their own composite
// checks on top of it; scenario files and the CLI look checks up by name
// and never define them.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/roach88/tcheck/pkg/check"
)

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("check already registered")

	// ErrUnknown is returned by MustLookup for names that were never
	// registered.
	ErrUnknown = errors.New("unknown check")
)

// Datatypes lists the host datatypes the default catalogue recognizes by
// type name.
var Datatypes = []string{
	"Axes", "BrickColor", "CatalogSearchParams", "CFrame", "Color3",
	"ColorSequence", "ColorSequenceKeypoint", "DateTime",
	"DockWidgetPluginGuiInfo", "Enum", "EnumItem", "Enums", "Faces",
	"FloatCurveKey", "Font", "Instance", "NumberRange", "NumberSequence",
	"NumberSequenceKeypoint", "OverlapParams", "PathWaypoint",
	"PhysicalProperties", "Random", "Ray", "RaycastParams", "RaycastResult",
	"RBXScriptConnection", "RBXScriptSignal", "Rect", "Region3",
	"Region3int16", "TweenInfo", "UDim", "UDim2", "Vector2", "Vector2int16",
	"Vector3", "Vector3int16",
}

// Catalog is a registry of named checks. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	checks map[string]check.Check
}

// New creates an empty catalogue.
func New() *Catalog {
	return &Catalog{checks: make(map[string]check.Check)}
}

// Default creates a catalogue holding the primitive checks and the host
// datatype recognizers.
func Default() *Catalog {
	c := New()
	for name, chk := range primitives() {
		c.checks[name] = chk
	}
	for _, name := range Datatypes {
		c.checks[name] = check.TypeOf(name)
	}
	return c
}

func primitives() map[string]check.Check {
	return map[string]check.Check{
		"any":            check.Any,
		"boolean":        check.Boolean,
		"buffer":         check.Buffer,
		"thread":         check.Thread,
		"callback":       check.Callback,
		"function":       check.Function,
		"none":           check.None,
		"nil":            check.Nil,
		"string":         check.String,
		"table":          check.Table,
		"userdata":       check.Userdata,
		"vector":         check.Vector,
		"number":         check.Number,
		"nan":            check.NaN,
		"integer":        check.Integer,
		"numberFinite":   check.NumberFinite,
		"numberPositive": check.NumberPositive,
		"numberNegative": check.NumberNegative,
	}
}

// Register adds a named check.
func (c *Catalog) Register(name string, chk check.Check) error {
	if name == "" {
		return fmt.Errorf("register: empty name")
	}
	if chk == nil {
		return fmt.Errorf("register %q: nil check", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.checks[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	c.checks[name] = chk
	return nil
}

// Lookup returns the check registered under name.
func (c *Catalog) Lookup(name string) (check.Check, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	chk, ok := c.checks[name]
	return chk, ok
}

// MustLookup is Lookup that reports a missing name as an error wrapping
// ErrUnknown.
func (c *Catalog) MustLookup(name string) (check.Check, error) {
	chk, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return chk, nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered checks.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.checks)
}

package host

// ClassTree records the superclass of each known class and answers
// subtype queries. Define every class before the tree is shared; lookups
// are safe for concurrent use once construction is finished.
type ClassTree struct {
	parents map[string]string
}

// NewClassTree creates an empty class hierarchy.
func NewClassTree() *ClassTree {
	return &ClassTree{parents: make(map[string]string)}
}

// Define registers class with the given superclass ("" for a root class).
func (t *ClassTree) Define(class, superclass string) *ClassTree {
	t.parents[class] = superclass
	return t
}

// IsA reports whether class equals ancestor or inherits from it.
func (t *ClassTree) IsA(class, ancestor string) bool {
	// bounded walk so a malformed (cyclic) tree cannot loop forever
	for steps := 0; steps <= len(t.parents); steps++ {
		if class == ancestor {
			return true
		}
		parent, ok := t.parents[class]
		if !ok || parent == "" {
			return false
		}
		class = parent
	}
	return false
}

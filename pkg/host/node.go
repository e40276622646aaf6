package host

import "strings"

// Node is an in-memory Instance.
type Node struct {
	class    string
	name     string
	tree     *ClassTree
	props    map[string]any
	parent   *Node
	children []*Node
}

// NewNode creates a detached node. tree may be nil, in which case IsA only
// matches the node's exact class.
func NewNode(tree *ClassTree, class, name string) *Node {
	return &Node{
		class: class,
		name:  name,
		tree:  tree,
		props: make(map[string]any),
	}
}

// Set assigns a property and returns the node for chaining.
func (n *Node) Set(prop string, v any) *Node {
	n.props[prop] = v
	return n
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) ClassName() string { return n.class }

func (n *Node) Name() string { return n.name }

func (n *Node) IsA(className string) bool {
	if n.tree == nil {
		return n.class == className
	}
	return n.tree.IsA(n.class, className)
}

func (n *Node) Children() []Instance {
	out := make([]Instance, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Property resolves Name and ClassName, then explicit properties, then
// the first child with that name, mirroring host indexing.
func (n *Node) Property(name string) (any, bool) {
	switch name {
	case "Name":
		return n.name, true
	case "ClassName":
		return n.class, true
	}
	if v, ok := n.props[name]; ok {
		return v, true
	}
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// FullName is the dotted path from the root to this node.
func (n *Node) FullName() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

func (n *Node) String() string { return n.FullName() }

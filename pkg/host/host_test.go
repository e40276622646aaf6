package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree() *ClassTree {
	return NewClassTree().
		Define("Instance", "").
		Define("BasePart", "Instance").
		Define("Part", "BasePart").
		Define("Model", "Instance")
}

func TestClassTreeIsA(t *testing.T) {
	tree := newTree()

	assert.True(t, tree.IsA("Part", "Part"))
	assert.True(t, tree.IsA("Part", "BasePart"))
	assert.True(t, tree.IsA("Part", "Instance"))
	assert.False(t, tree.IsA("Model", "BasePart"))
	assert.False(t, tree.IsA("Unknown", "Instance"))
}

func TestClassTreeCycleTerminates(t *testing.T) {
	tree := NewClassTree().Define("A", "B").Define("B", "A")
	assert.False(t, tree.IsA("A", "C"))
}

func TestNodeIsA(t *testing.T) {
	part := NewNode(newTree(), "Part", "Head")
	assert.True(t, part.IsA("BasePart"))
	assert.False(t, part.IsA("Model"))

	detached := NewNode(nil, "Part", "Head")
	assert.True(t, detached.IsA("Part"))
	assert.False(t, detached.IsA("BasePart"))
}

func TestNodeProperty(t *testing.T) {
	head := NewNode(nil, "Part", "Head")
	model := NewNode(nil, "Model", "Character").
		Set("Health", 100).
		Add(head)

	v, ok := model.Property("Health")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	v, ok = model.Property("Head")
	require.True(t, ok)
	assert.Same(t, head, v)

	v, ok = model.Property("ClassName")
	require.True(t, ok)
	assert.Equal(t, "Model", v)

	_, ok = model.Property("Missing")
	assert.False(t, ok)
}

func TestNodeFullName(t *testing.T) {
	root := NewNode(nil, "Workspace", "Workspace")
	model := NewNode(nil, "Model", "Character")
	head := NewNode(nil, "Part", "Head")
	root.Add(model.Add(head))

	assert.Equal(t, "Workspace.Character.Head", head.FullName())
	assert.Len(t, model.Children(), 1)
}

func TestStaticEnum(t *testing.T) {
	material := NewEnum("Material", "Plastic", "Wood")

	wood := material.Item("Wood")
	require.NotNil(t, wood)
	assert.Equal(t, 1, wood.ItemValue())
	assert.Equal(t, "Material.Wood", wood.String())
	assert.Equal(t, Enum(material), wood.EnumType())
	assert.Nil(t, material.Item("Glass"))
	assert.Len(t, material.Items(), 2)
}

package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

func build(t *testing.T, role types.Role, name string) *node.Node {
	t.Helper()
	b := node.NewBuilder(role)
	node.Name.Set(b, name)
	n := b.Build(nil)
	require.NotNil(t, n)
	return n
}

func TestNew(t *testing.T) {
	tr := New(types.NewNodeID(1))
	assert.Equal(t, types.NewNodeID(1), tr.Root)
	assert.False(t, tr.HasRootScroller())
}

// Three pairs with a nil node in the middle keep the other two, in order.
func TestNewUpdate_DropsNilNode(t *testing.T) {
	a := build(t, types.RoleWindow, "a")
	c := build(t, types.RoleButton, "c")
	ids := []types.NodeID{types.NewNodeID(1), types.NewNodeID(2), types.NewNodeID(3)}
	tr := New(types.NewNodeID(1))

	u := NewUpdate(ids, []*node.Node{a, nil, c}, &tr, types.NewNodeID(3))
	require.Equal(t, 2, u.Len())
	assert.Equal(t, []types.NodeID{types.NewNodeID(1), types.NewNodeID(3)}, u.IDs())
	assert.Same(t, a, u.Nodes[0].Node)
	assert.Same(t, c, u.Nodes[1].Node)
	assert.Equal(t, types.NewNodeID(3), u.Focus)

	tr.Root = types.NewNodeID(9)
	assert.Equal(t, types.NewNodeID(1), u.Tree.Root, "tree is copied")
}

func TestNewUpdate_ZeroIDAndLengthMismatch(t *testing.T) {
	a := build(t, types.RoleWindow, "a")
	b := build(t, types.RoleButton, "b")
	ids := []types.NodeID{{}, types.NewNodeID(2), types.NewNodeID(3)}

	u := NewUpdate(ids, []*node.Node{a, b}, nil, types.NodeID{})
	require.Equal(t, 1, u.Len())
	assert.Equal(t, types.NewNodeID(2), u.Nodes[0].ID)
	assert.Nil(t, u.Tree)
}

func TestUpdate_DuplicatesKept(t *testing.T) {
	first := build(t, types.RoleButton, "first")
	second := build(t, types.RoleButton, "second")
	var u Update
	require.True(t, u.Push(types.NewNodeID(5), first))
	require.True(t, u.Push(types.NewNodeID(5), second))
	assert.False(t, u.Push(types.NewNodeID(6), nil))

	assert.Equal(t, 2, u.Len())
	got, ok := u.Lookup(types.NewNodeID(5))
	require.True(t, ok)
	assert.Same(t, second, got)

	_, ok = u.Lookup(types.NewNodeID(6))
	assert.False(t, ok)
}

func TestUpdate_Validate(t *testing.T) {
	var u Update
	u.SetTree(Tree{})
	assert.ErrorIs(t, u.Validate(types.DefaultLimits()), types.ErrZeroNodeID)

	u.SetTree(New(types.NewNodeID(1)))
	u.Push(types.NewNodeID(1), build(t, types.RoleWindow, strings.Repeat("x", 100)))
	require.NoError(t, u.Validate(types.DefaultLimits()))

	err := u.Validate(types.Limits{MaxStringBytes: 10})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	err = u.Validate(types.Limits{MaxUpdateNodes: 0, MaxVectorLen: 1})
	require.NoError(t, err)

	u.Push(types.NewNodeID(2), build(t, types.RoleButton, "b"))
	err = u.Validate(types.Limits{MaxUpdateNodes: 1})
	assert.Error(t, err)
}

func TestUpdate_String(t *testing.T) {
	u := Update{Focus: types.NewNodeID(2)}
	u.SetTree(New(types.NewNodeID(1)))
	assert.Equal(t, "Update{0 nodes, root 1, focus 2}", u.String())
	u.ClearTree()
	assert.Nil(t, u.Tree)
}

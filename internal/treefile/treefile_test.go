package treefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

const hello = `
root: 1
focus: 2
nodes:
  - id: 1
    role: window
    props:
      children: [2, 3]
      name: Hello world
  - id: 2
    role: button
    actions: [focus, default]
    props:
      name: Button 1
      bounds: {x0: 20, y0: 20, x1: 100, y1: 60}
      is_default: true
      checked_state: mixed
      color_value: "#ff0000"
  - id: 3
    role: text_field
    props:
      value: héllo
      text_selection:
        anchor: {node: 3, character_index: 1}
        focus: {node: 3, character_index: 4}
      character_lengths: [1, 2, 1, 1, 1]
      transform: [2, 0, 0, 2, 0, 0]
      custom_actions:
        - {id: 7, description: Reply}
      active_descendant: 0x0000000000000001ffffffffffffffff
`

func TestParse(t *testing.T) {
	u, err := Parse([]byte(hello), node.NewClassSet())
	require.NoError(t, err)

	require.NotNil(t, u.Tree)
	assert.Equal(t, types.NewNodeID(1), u.Tree.Root)
	assert.False(t, u.Tree.HasRootScroller())
	assert.Equal(t, types.NewNodeID(2), u.Focus)
	require.Equal(t, 3, u.Len())

	root := u.Nodes[0].Node
	assert.Equal(t, types.RoleWindow, root.Role())
	assert.Equal(t, []types.NodeID{types.NewNodeID(2), types.NewNodeID(3)}, node.Children.Get(root))

	btn := u.Nodes[1].Node
	assert.True(t, btn.SupportsAction(types.ActionFocus))
	assert.True(t, btn.SupportsAction(types.ActionDefault))
	assert.True(t, node.Default.Get(btn))
	cs, ok := node.CheckedState.Get(btn)
	require.True(t, ok)
	assert.Equal(t, types.CheckedStateMixed, cs)
	c, _ := node.ColorValue.Get(btn)
	assert.Equal(t, types.RGBA(0xff, 0, 0, 0xff), c)
	b, _ := node.Bounds.Get(btn)
	assert.Equal(t, types.Rect{X0: 20, Y0: 20, X1: 100, Y1: 60}, b)

	field := u.Nodes[2].Node
	sel, ok := node.TextSelection.Get(field)
	require.True(t, ok)
	assert.Equal(t, uint64(4), sel.Focus.CharacterIndex)
	assert.Equal(t, []uint8{1, 2, 1, 1, 1}, node.CharacterLengths.Get(field))
	tr, _ := node.Transform.Get(field)
	assert.Equal(t, types.ScaleAffine(2), tr)
	assert.Equal(t, []types.CustomAction{{ID: 7, Description: "Reply"}}, node.CustomActions.Get(field))
	ad, _ := node.ActiveDescendant.Get(field)
	assert.Equal(t, types.NodeIDFromHalves(1, ^uint64(0)), ad)
}

func TestMarshalRoundTrip(t *testing.T) {
	u, err := Parse([]byte(hello), nil)
	require.NoError(t, err)

	out, err := Marshal(u)
	require.NoError(t, err)

	again, err := Parse(out, nil)
	require.NoError(t, err, "re-parse of:\n%s", out)
	require.Equal(t, u.Len(), again.Len())
	for i := range u.Nodes {
		assert.Equal(t, u.Nodes[i].ID, again.Nodes[i].ID)
		assert.True(t, node.Equal(u.Nodes[i].Node, again.Nodes[i].Node), "node %s differs:\n%s", u.Nodes[i].ID, out)
	}
	assert.Equal(t, *u.Tree, *again.Tree)
	assert.Equal(t, u.Focus, again.Focus)
}

func TestParse_BlockProps(t *testing.T) {
	doc := "root: 1\nnodes:\n  - id: 1\n    role: button\n    props:\n      name: OK\n  - id: 2\n    role: label\n"
	u, err := Parse([]byte(doc), nil)
	require.NoError(t, err)
	require.Equal(t, 2, u.Len())
	name, ok := node.Name.Get(u.Nodes[0].Node)
	require.True(t, ok)
	assert.Equal(t, "OK", name)
	assert.Zero(t, node.Count(u.Nodes[1].Node))

	out, err := Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: OK")
	assert.Equal(t, 1, strings.Count(string(out), "props:"), "empty props must be omitted:\n%s", out)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		kind types.ErrKind
	}{
		{"unknown property", "nodes: [{id: 1, role: button, props: {colour: red}}]", types.ErrKindMalformed},
		{"unknown role", "nodes: [{id: 1, role: gizmo}]", types.ErrKindNotFound},
		{"unknown action", "nodes: [{id: 1, role: button, actions: [levitate]}]", types.ErrKindNotFound},
		{"bad id", "nodes: [{id: -1, role: button}]", types.ErrKindMalformed},
		{"zero id", "nodes: [{id: 0, role: button}]", types.ErrKindInvalid},
		{"bad enum", "nodes: [{id: 1, role: button, props: {checked_state: maybe}}]", types.ErrKindMalformed},
		{"short transform", "nodes: [{id: 1, role: button, props: {transform: [1, 2]}}]", types.ErrKindMalformed},
		{"props not a mapping", "nodes: [{id: 1, role: button, props: [name]}]", types.ErrKindMalformed},
		{"not yaml", "nodes: [", types.ErrKindMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, &types.Error{Kind: tc.kind}), "err = %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hello), 0o644))

	u, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

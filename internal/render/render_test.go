package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

func helloUpdate() tree.Update {
	id := types.NewNodeID
	win := node.NewBuilder(types.RoleWindow)
	node.Children.Set(win, []types.NodeID{id(2), id(3)})
	node.Name.Set(win, "Hello world")

	var u tree.Update
	u.Push(id(1), win.Build(nil))
	for i, name := range []string{"Button 1", "Button 2"} {
		b := node.NewBuilder(types.RoleButton)
		b.AddAction(types.ActionFocus)
		node.Name.Set(b, name)
		if i == 1 {
			node.LabelledBy.Push(b, id(2))
		}
		u.Push(id(uint64(i+2)), b.Build(nil))
	}
	u.SetTree(tree.New(id(1)))
	u.Focus = id(2)
	return u
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(helloUpdate(), Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `"1" [label="Window #1\nHello world", penwidth=2];`)
	assert.Contains(t, dot, `"2" [label="Button #2\nButton 1", fillcolor=lightyellow];`)
	assert.Contains(t, dot, `"1" -> "2";`)
	assert.Contains(t, dot, `"1" -> "3";`)
	assert.NotContains(t, dot, "labelled_by")
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(helloUpdate(), Options{Detailed: true})

	assert.Contains(t, dot, `"3" -> "2" [style=dashed, label="labelled_by"];`)
	assert.Contains(t, dot, `actions: `)
	assert.Contains(t, dot, `name: Button 2`)
}

func TestToDOT_DuplicateDrawnOnce(t *testing.T) {
	u := helloUpdate()
	b := node.NewBuilder(types.RoleButton)
	node.Name.Set(b, "Renamed")
	u.Push(types.NewNodeID(2), b.Build(nil))

	dot := ToDOT(u, Options{})
	assert.Equal(t, 1, strings.Count(dot, `"2" [`))
	assert.Contains(t, dot, `Renamed`)
	assert.NotContains(t, dot, `Button 1`)
}

func TestRender_Formats(t *testing.T) {
	ctx := context.Background()
	u := helloUpdate()

	out, err := Render(ctx, u, "dot", Options{})
	require.NoError(t, err)
	assert.Equal(t, ToDOT(u, Options{}), string(out))

	_, err = Render(ctx, u, "gif", Options{})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz layout in short mode")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(helloUpdate(), Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

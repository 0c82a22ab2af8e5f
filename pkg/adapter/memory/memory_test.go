package memory

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

func id(v uint64) types.NodeID { return types.NewNodeID(v) }

func window(children ...types.NodeID) *node.Node {
	b := node.NewBuilder(types.RoleWindow)
	node.Children.Set(b, children)
	return b.Build(nil)
}

func button(name string) *node.Node {
	b := node.NewBuilder(types.RoleButton)
	b.AddAction(types.ActionFocus)
	node.Name.Set(b, name)
	return b.Build(nil)
}

func initial() tree.Update {
	u := tree.Update{Focus: id(2)}
	u.SetTree(tree.New(id(1)))
	u.Push(id(1), window(id(2), id(3)))
	u.Push(id(2), button("OK"))
	u.Push(id(3), button("Cancel"))
	return u
}

func kinds(q *adapter.QueuedEvents) []string {
	var out []string
	for _, e := range q.Events() {
		out = append(out, e.String())
	}
	return out
}

func active(t *testing.T, h action.Handler) *Adapter {
	t.Helper()
	a, err := New(initial, h)
	require.NoError(t, err)
	q, err := a.Activate()
	require.NoError(t, err)
	q.Raise()
	return a
}

func TestNew_RequiresFactoryAndHandler(t *testing.T) {
	_, err := New(nil, &action.Recorder{})
	assert.ErrorIs(t, err, ErrNoFactory)
	_, err = New(initial, nil)
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestActivate_InitialTree(t *testing.T) {
	a, err := New(initial, &action.Recorder{})
	require.NoError(t, err)
	assert.False(t, a.IsActive())

	q, err := a.Activate()
	require.NoError(t, err)
	assert.True(t, a.IsActive())
	assert.Equal(t, []string{
		"tree-changed", "node-added 1", "node-added 2", "node-added 3", "focus-changed 2",
	}, kinds(q))

	assert.Empty(t, a.Raised())
	q.Raise()
	assert.Len(t, a.Raised(), 5)

	again, err := a.Activate()
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestActivate_NoTree(t *testing.T) {
	a, err := New(func() tree.Update { return tree.Update{} }, &action.Recorder{})
	require.NoError(t, err)
	_, err = a.Activate()
	assert.ErrorIs(t, err, ErrNoTree)
	assert.False(t, a.IsActive())
}

func TestUpdate_DroppedWhileInactive(t *testing.T) {
	a, err := New(initial, &action.Recorder{})
	require.NoError(t, err)

	assert.Nil(t, a.Update(initial()))
	assert.Zero(t, a.Len())

	called := false
	assert.Nil(t, a.UpdateIfActive(func() tree.Update {
		called = true
		return initial()
	}))
	assert.False(t, called)
}

func TestUpdate_ChangedAndUnchanged(t *testing.T) {
	a := active(t, &action.Recorder{})

	var u tree.Update
	u.Push(id(2), button("OK"))
	u.Push(id(3), button("Abort"))
	assert.Equal(t, []string{"node-changed 3"}, kinds(a.Update(u)))

	n, ok := a.Node(id(3))
	require.True(t, ok)
	name, _ := node.Name.Get(n)
	assert.Equal(t, "Abort", name)
}

func TestUpdate_NaNIsUnchanged(t *testing.T) {
	a := active(t, &action.Recorder{})
	scrolled := func() *node.Node {
		b := node.NewBuilder(types.RoleButton)
		b.AddAction(types.ActionFocus)
		node.Name.Set(b, "OK")
		node.ScrollY.Set(b, math.NaN())
		return b.Build(nil)
	}

	var u tree.Update
	u.Push(id(2), scrolled())
	assert.Equal(t, []string{"node-changed 2"}, kinds(a.Update(u)))

	u = tree.Update{}
	u.Push(id(2), scrolled())
	assert.Empty(t, kinds(a.Update(u)))
}

func TestUpdate_DuplicateIDLastWins(t *testing.T) {
	a := active(t, &action.Recorder{})

	var u tree.Update
	u.Push(id(2), button("first"))
	u.Push(id(2), button("second"))
	assert.Equal(t, []string{"node-changed 2"}, kinds(a.Update(u)))

	n, _ := a.Node(id(2))
	name, _ := node.Name.Get(n)
	assert.Equal(t, "second", name)
}

func TestUpdate_PrunesUnreachable(t *testing.T) {
	a := active(t, &action.Recorder{})

	var u tree.Update
	u.Push(id(1), window(id(2)))
	q := a.Update(u)
	assert.Equal(t, []string{"node-changed 1", "node-removed 3"}, kinds(q))
	assert.Equal(t, 2, a.Len())
	_, ok := a.Node(id(3))
	assert.False(t, ok)
}

func TestUpdate_FocusMovesAndClears(t *testing.T) {
	a := active(t, &action.Recorder{})

	assert.Equal(t, []string{"focus-changed 3"}, kinds(a.Update(tree.Update{Focus: id(3)})))
	_, focus := a.Tree()
	assert.Equal(t, id(3), focus)

	// Removing the focused node clears focus.
	var u tree.Update
	u.Push(id(1), window(id(2)))
	assert.Equal(t, []string{"node-changed 1", "node-removed 3", "focus-changed"}, kinds(a.Update(u)))
	_, focus = a.Tree()
	assert.True(t, focus.IsZero())

	// Focus on an unknown node is ignored.
	assert.Nil(t, a.Update(tree.Update{Focus: id(42)}))
}

func TestUpdate_NewRoot(t *testing.T) {
	a := active(t, &action.Recorder{})

	var u tree.Update
	u.SetTree(tree.New(id(10)))
	u.Push(id(10), window())
	q := a.Update(u)
	assert.Equal(t, []string{
		"tree-changed", "node-added 10",
		"node-removed 1", "node-removed 2", "node-removed 3",
		"focus-changed",
	}, kinds(q))
	assert.Equal(t, 1, a.Len())
}

func TestUpdate_RejectsOverLimit(t *testing.T) {
	a, err := New(initial, &action.Recorder{}, WithLimits(types.Limits{MaxUpdateNodes: 2}))
	require.NoError(t, err)
	_, err = a.Activate()
	require.Error(t, err)
	assert.False(t, a.IsActive())
}

func TestDo_DispatchesOnce(t *testing.T) {
	rec := &action.Recorder{}
	a := active(t, rec)

	r := action.Request{Action: types.ActionFocus, Target: id(2)}
	require.NoError(t, a.Do(context.Background(), r))
	require.Len(t, rec.Requests, 1)
	assert.Equal(t, r, rec.Requests[0])
}

func TestDo_Rejections(t *testing.T) {
	rec := &action.Recorder{}

	inactive, err := New(initial, rec)
	require.NoError(t, err)
	assert.ErrorIs(t, inactive.Do(context.Background(), action.Request{Action: types.ActionFocus, Target: id(2)}), ErrInactive)

	a := active(t, rec)
	ctx := context.Background()
	assert.ErrorIs(t, a.Do(ctx, action.Request{Action: types.ActionFocus}), types.ErrZeroNodeID)
	assert.ErrorIs(t, a.Do(ctx, action.Request{Action: types.ActionFocus, Target: id(99)}), types.ErrNotFound)
	assert.ErrorIs(t, a.Do(ctx, action.Request{Action: types.ActionDefault, Target: id(2)}), types.ErrUnsupported)
	assert.Empty(t, rec.Requests)
}

func TestDo_CustomAction(t *testing.T) {
	b := node.NewBuilder(types.RoleButton)
	b.AddAction(types.ActionCustomAction)
	node.CustomActions.Push(b, types.CustomAction{ID: 7, Description: "Archive"})
	n := b.Build(nil)

	factory := func() tree.Update {
		var u tree.Update
		u.SetTree(tree.New(id(1)))
		u.Push(id(1), n)
		return u
	}
	rec := &action.Recorder{}
	a, err := New(factory, rec)
	require.NoError(t, err)
	_, err = a.Activate()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.Do(ctx, action.Request{Action: types.ActionCustomAction, Target: id(1), Data: action.CustomAction(7)}))
	assert.ErrorIs(t, a.Do(ctx, action.Request{Action: types.ActionCustomAction, Target: id(1), Data: action.CustomAction(8)}), types.ErrNotFound)
	assert.Len(t, rec.Requests, 1)
}

func TestSnapshot_DepthFirst(t *testing.T) {
	a := active(t, &action.Recorder{})
	s := a.Snapshot()
	require.NotNil(t, s.Tree)
	assert.Equal(t, id(1), s.Tree.Root)
	assert.Equal(t, []types.NodeID{id(1), id(2), id(3)}, s.IDs())
	assert.Equal(t, id(2), s.Focus)
}

func TestRootWindowBounds(t *testing.T) {
	a := active(t, &action.Recorder{})
	outer := types.Rect{X1: 800, Y1: 600}
	inner := types.Rect{Y0: 20, X1: 800, Y1: 600}
	a.SetRootWindowBounds(outer, inner)
	o, i := a.RootWindowBounds()
	assert.Equal(t, outer, o)
	assert.Equal(t, inner, i)
}

func TestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	a, err := New(initial, &action.Recorder{}, WithTracerProvider(tp))
	require.NoError(t, err)
	_, err = a.Activate()
	require.NoError(t, err)
	require.NoError(t, a.Do(context.Background(), action.Request{Action: types.ActionFocus, Target: id(3)}))

	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"memory.Update", "memory.Do"}, names)
}

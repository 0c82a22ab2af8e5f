// Package memory is an in-process adapter. It keeps the merged tree in
// memory, reports the events each update produces and dispatches action
// requests to the application's handler. The inspector server and the
// tests use it in place of a platform adapter.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

var (
	// ErrNoFactory is returned by New when the initial-state factory is nil.
	ErrNoFactory = errors.New("memory: initial tree factory is required")
	// ErrNoHandler is returned by New when the action handler is nil.
	ErrNoHandler = errors.New("memory: action handler is required")
	// ErrInactive is returned for requests made before activation.
	ErrInactive = errors.New("memory: adapter is not active")
	// ErrNoTree is returned when the initial update carries no tree.
	ErrNoTree = errors.New("memory: initial update has no tree")
)

// Adapter is the in-memory adapter. It is safe for concurrent use; updates
// are applied one at a time in call order.
type Adapter struct {
	mu      sync.Mutex
	initial adapter.Factory
	handler action.Handler
	opts    options
	tracer  trace.Tracer

	active bool
	nodes  map[types.NodeID]*node.Node
	tree   tree.Tree
	focus  types.NodeID
	outer  types.Rect
	inner  types.Rect
	raised []adapter.Event
}

var _ adapter.Adapter = (*Adapter)(nil)

// New returns an inactive adapter. initial supplies the first tree on
// Activate and handler receives every dispatched request.
func New(initial adapter.Factory, handler action.Handler, opts ...Option) (*Adapter, error) {
	if initial == nil {
		return nil, ErrNoFactory
	}
	if handler == nil {
		return nil, ErrNoHandler
	}
	o := buildOptions(opts)
	return &Adapter{
		initial: initial,
		handler: handler,
		opts:    o,
		tracer:  o.tracer.Tracer(instrumentationName),
		nodes:   make(map[types.NodeID]*node.Node),
	}, nil
}

// Activate makes the adapter active, pulling the initial tree from the
// factory. Activating an active adapter does nothing.
func (a *Adapter) Activate() (*adapter.QueuedEvents, error) {
	a.mu.Lock()
	if a.active {
		a.mu.Unlock()
		return nil, nil
	}
	a.mu.Unlock()

	// The factory runs unlocked: it may build nodes through code that
	// queries this adapter.
	u := a.initial()
	if u.Tree == nil {
		return nil, ErrNoTree
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active {
		return nil, nil
	}
	events, err := a.apply(context.Background(), u)
	if err != nil {
		return nil, err
	}
	a.active = true
	a.opts.logger.Debug("adapter activated", "root", a.tree.Root, "nodes", len(a.nodes))
	return adapter.NewQueuedEvents(events, a.record), nil
}

// IsActive reports whether Activate has succeeded.
func (a *Adapter) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Update applies u. Updates given to an inactive adapter are dropped: the
// factory supplies the full tree on activation.
func (a *Adapter) Update(u tree.Update) *adapter.QueuedEvents {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		a.opts.logger.Debug("update dropped, adapter inactive", "nodes", u.Len())
		return nil
	}
	events, err := a.apply(context.Background(), u)
	if err != nil {
		a.opts.logger.Warn("update rejected", "error", err)
		return nil
	}
	return adapter.NewQueuedEvents(events, a.record)
}

// UpdateIfActive calls f and applies its update when the adapter is active.
func (a *Adapter) UpdateIfActive(f adapter.Factory) *adapter.QueuedEvents {
	if f == nil || !a.IsActive() {
		return nil
	}
	return a.Update(f())
}

// SetRootWindowBounds records the bounds of the host window.
func (a *Adapter) SetRootWindowBounds(outer, inner types.Rect) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.outer, a.inner = outer, inner
}

// RootWindowBounds returns the last bounds given to SetRootWindowBounds.
func (a *Adapter) RootWindowBounds() (outer, inner types.Rect) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outer, a.inner
}

// apply merges u into the state and returns the events it produced. The
// caller holds a.mu.
func (a *Adapter) apply(ctx context.Context, u tree.Update) ([]adapter.Event, error) {
	_, span := a.tracer.Start(ctx, "memory.Update", trace.WithAttributes(
		attribute.Int("axkit.update.nodes", u.Len()),
		attribute.Bool("axkit.update.tree", u.Tree != nil),
	))
	defer span.End()

	if err := u.Validate(a.opts.limits); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid update")
		return nil, err
	}
	if u.Tree == nil && a.tree.Root.IsZero() {
		span.SetStatus(codes.Error, "no tree")
		return nil, ErrNoTree
	}

	var events []adapter.Event
	if u.Tree != nil && *u.Tree != a.tree {
		a.tree = *u.Tree
		events = append(events, adapter.Event{Kind: adapter.EventTreeChanged})
	}

	// Pairs apply in order, so a repeated id ends up with its last node.
	// Each id is reported once, against the state before the update.
	type prior struct {
		n       *node.Node
		existed bool
	}
	before := make(map[types.NodeID]prior, len(u.Nodes))
	var order []types.NodeID
	for _, p := range u.Nodes {
		if _, seen := before[p.ID]; !seen {
			old, ok := a.nodes[p.ID]
			before[p.ID] = prior{n: old, existed: ok}
			order = append(order, p.ID)
		}
		a.nodes[p.ID] = p.Node
	}
	for _, id := range order {
		switch old := before[id]; {
		case !old.existed:
			events = append(events, adapter.Event{Kind: adapter.EventNodeAdded, Node: id})
		case !node.Equal(old.n, a.nodes[id]):
			events = append(events, adapter.Event{Kind: adapter.EventNodeChanged, Node: id})
		}
	}

	for _, id := range a.prune() {
		events = append(events, adapter.Event{Kind: adapter.EventNodeRemoved, Node: id})
	}

	if !u.Focus.IsZero() && u.Focus != a.focus {
		if _, ok := a.nodes[u.Focus]; ok {
			a.focus = u.Focus
			events = append(events, adapter.Event{Kind: adapter.EventFocusChanged, Node: u.Focus})
		} else {
			a.opts.logger.Debug("focus names an unknown node", "focus", u.Focus)
		}
	}
	if _, ok := a.nodes[a.focus]; !ok && !a.focus.IsZero() {
		a.focus = types.NodeID{}
		events = append(events, adapter.Event{Kind: adapter.EventFocusChanged})
	}

	span.SetAttributes(attribute.Int("axkit.update.events", len(events)))
	return events, nil
}

// prune drops nodes unreachable from the root and returns their ids in
// ascending order.
func (a *Adapter) prune() []types.NodeID {
	reachable := make(map[types.NodeID]bool, len(a.nodes))
	stack := []types.NodeID{a.tree.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[id] {
			continue
		}
		n, ok := a.nodes[id]
		if !ok {
			continue
		}
		reachable[id] = true
		stack = append(stack, node.Children.Get(n)...)
	}
	var removed []types.NodeID
	for id := range a.nodes {
		if !reachable[id] {
			removed = append(removed, id)
			delete(a.nodes, id)
		}
	}
	slices.SortFunc(removed, compareIDs)
	return removed
}

func compareIDs(x, y types.NodeID) int {
	xh, xl := x.Halves()
	yh, yl := y.Halves()
	switch {
	case xh != yh:
		if xh < yh {
			return -1
		}
		return 1
	case xl < yl:
		return -1
	case xl > yl:
		return 1
	}
	return 0
}

func (a *Adapter) record(events []adapter.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.raised = append(a.raised, events...)
	if over := len(a.raised) - historyLimit; over > 0 {
		a.raised = slices.Delete(a.raised, 0, over)
	}
	for _, e := range events {
		a.opts.logger.Debug("event raised", "kind", e.Kind.String(), "node", e.Node)
	}
}

// Raised returns the most recently raised events, oldest first.
func (a *Adapter) Raised() []adapter.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.raised)
}

// Do dispatches r to the handler. The target must exist and advertise the
// action; a custom action must name one of the target's custom actions.
// The handler runs on the calling goroutine with no adapter lock held.
func (a *Adapter) Do(ctx context.Context, r action.Request) error {
	ctx, span := a.tracer.Start(ctx, "memory.Do", trace.WithAttributes(
		attribute.String("axkit.action", r.Action.String()),
		attribute.String("axkit.target", r.Target.String()),
	))
	defer span.End()

	if err := a.checkRequest(r); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request rejected")
		a.opts.logger.Debug("action rejected", "request", r.String(), "error", err)
		return err
	}
	a.opts.logger.Log(ctx, slog.LevelDebug, "action dispatched", "request", r.String())
	a.handler.Do(r)
	return nil
}

func (a *Adapter) checkRequest(r action.Request) error {
	if err := r.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return ErrInactive
	}
	n, ok := a.nodes[r.Target]
	if !ok {
		return types.Errorf(types.ErrKindNotFound, "action request", "no node %s", r.Target)
	}
	if !n.SupportsAction(r.Action) {
		return types.Errorf(types.ErrKindUnsupported, "action request", "node %s does not support %s", r.Target, r.Action)
	}
	if ca, ok := r.Data.(action.CustomAction); ok {
		for _, c := range node.CustomActions.Get(n) {
			if c.ID == int32(ca) {
				return nil
			}
		}
		return types.Errorf(types.ErrKindNotFound, "action request", "node %s has no custom action %d", r.Target, int32(ca))
	}
	return nil
}

// Node returns the current node with the given id.
func (a *Adapter) Node(id types.NodeID) (*node.Node, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.nodes[id]
	return n, ok
}

// Tree returns the current tree and focus.
func (a *Adapter) Tree() (tree.Tree, types.NodeID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tree, a.focus
}

// Len returns the number of nodes held.
func (a *Adapter) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.nodes)
}

// Snapshot returns the current state as a full update, nodes in depth-first
// order from the root.
func (a *Adapter) Snapshot() tree.Update {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := a.tree
	u := tree.Update{Tree: &t, Focus: a.focus}
	seen := make(map[types.NodeID]bool, len(a.nodes))
	var walk func(id types.NodeID)
	walk = func(id types.NodeID) {
		n, ok := a.nodes[id]
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		u.Push(id, n)
		for _, c := range node.Children.Get(n) {
			walk(c)
		}
	}
	walk(a.tree.Root)
	return u
}

func (a *Adapter) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("memory.Adapter{active: %t, nodes: %d, root: %s}", a.active, len(a.nodes), a.tree.Root)
}

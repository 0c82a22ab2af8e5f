package main

import (
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// row is one visible line of the tree pane.
type row struct {
	ID       types.NodeID
	Depth    int
	HasKids  bool
	Expanded bool
	Detached bool // not reachable from the root
}

// outline is the expandable view of an update. The last pair for an id
// wins, as it does when an adapter applies the update.
type outline struct {
	nodes    map[types.NodeID]*node.Node
	order    []types.NodeID // first appearance in the update
	parent   map[types.NodeID]types.NodeID
	root     types.NodeID
	focus    types.NodeID
	expanded map[types.NodeID]bool
}

func newOutline(u tree.Update) *outline {
	o := &outline{
		nodes:    make(map[types.NodeID]*node.Node, u.Len()),
		parent:   make(map[types.NodeID]types.NodeID),
		focus:    u.Focus,
		expanded: make(map[types.NodeID]bool),
	}
	if u.Tree != nil {
		o.root = u.Tree.Root
	}
	for _, p := range u.Nodes {
		if _, seen := o.nodes[p.ID]; !seen {
			o.order = append(o.order, p.ID)
		}
		o.nodes[p.ID] = p.Node
	}
	for _, id := range o.order {
		for _, c := range o.children(id) {
			if _, ok := o.parent[c]; !ok && c != o.root {
				o.parent[c] = id
			}
		}
	}
	o.expanded[o.root] = true
	return o
}

// children returns the ids of id's children that exist in the update.
func (o *outline) children(id types.NodeID) []types.NodeID {
	n, ok := o.nodes[id]
	if !ok {
		return nil
	}
	var out []types.NodeID
	for _, c := range node.Children.Get(n) {
		if _, ok := o.nodes[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// rows flattens the expanded part of the tree, root first, followed by
// every node the root cannot reach.
func (o *outline) rows() []row {
	var out []row
	seen := make(map[types.NodeID]bool, len(o.nodes))
	var walk func(id types.NodeID, depth int, detached bool)
	walk = func(id types.NodeID, depth int, detached bool) {
		if seen[id] {
			return
		}
		seen[id] = true
		kids := o.children(id)
		r := row{ID: id, Depth: depth, HasKids: len(kids) > 0, Expanded: o.expanded[id], Detached: detached}
		out = append(out, r)
		if !r.Expanded {
			markSubtree(o, kids, seen)
			return
		}
		for _, c := range kids {
			walk(c, depth+1, detached)
		}
	}
	if _, ok := o.nodes[o.root]; ok {
		walk(o.root, 0, false)
	}
	for _, id := range o.order {
		if _, hasParent := o.parent[id]; !hasParent && !seen[id] {
			walk(id, 0, true)
		}
	}
	// Whatever is left only hangs off a cycle.
	for _, id := range o.order {
		if !seen[id] {
			walk(id, 0, true)
		}
	}
	return out
}

// markSubtree records collapsed descendants as seen so they are not
// listed again as detached.
func markSubtree(o *outline, ids []types.NodeID, seen map[types.NodeID]bool) {
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		markSubtree(o, o.children(id), seen)
	}
}

func (o *outline) toggle(id types.NodeID) {
	if len(o.children(id)) > 0 {
		o.expanded[id] = !o.expanded[id]
	}
}

// reveal expands every ancestor of id.
func (o *outline) reveal(id types.NodeID) {
	for hops := 0; hops <= len(o.nodes); hops++ {
		p, ok := o.parent[id]
		if !ok {
			return
		}
		o.expanded[p] = true
		id = p
	}
}

func (o *outline) expandAll() {
	for id := range o.nodes {
		o.expanded[id] = true
	}
}

func (o *outline) collapseAll() {
	clear(o.expanded)
	o.expanded[o.root] = true
}

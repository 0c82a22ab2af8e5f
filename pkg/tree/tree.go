// Package tree holds the tree-level values that travel with node batches:
// Tree, which names the root, and Update, an ordered batch of (id, node)
// pairs handed to an adapter.
package tree

import (
	"fmt"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// Tree names the root of a tree and, optionally, the node that scrolls the
// whole document. A zero RootScroller means there is none.
type Tree struct {
	Root         types.NodeID
	RootScroller types.NodeID
}

// New returns a tree rooted at root with no root scroller.
func New(root types.NodeID) Tree {
	return Tree{Root: root}
}

// HasRootScroller reports whether RootScroller is set.
func (t Tree) HasRootScroller() bool { return !t.RootScroller.IsZero() }

// Pair is one (id, node) entry of an Update.
type Pair struct {
	ID   types.NodeID
	Node *node.Node
}

// Update is an ordered batch of nodes plus optional tree and focus.
//
// The batch is delivered as given: pairs keep their order and duplicate ids
// are kept. Adapters apply pairs in order, so for a repeated id the last
// pair wins.
type Update struct {
	Nodes []Pair

	// Tree is set when the root or root scroller changes, and always on the
	// first update an adapter sees.
	Tree *Tree

	// Focus is the focused node; zero means no focus is reported.
	Focus types.NodeID
}

// NewUpdate builds an update from parallel id and node slices. A pair with
// a nil node or a zero id is dropped. When the slices differ in length the
// extra entries of the longer one are ignored.
func NewUpdate(ids []types.NodeID, nodes []*node.Node, t *Tree, focus types.NodeID) Update {
	n := min(len(ids), len(nodes))
	u := Update{Nodes: make([]Pair, 0, n), Focus: focus}
	for i := 0; i < n; i++ {
		u.Push(ids[i], nodes[i])
	}
	if t != nil {
		cp := *t
		u.Tree = &cp
	}
	return u
}

// Push appends a pair, ignoring a nil node or zero id. It reports whether
// the pair was kept.
func (u *Update) Push(id types.NodeID, n *node.Node) bool {
	if n == nil || id.IsZero() {
		return false
	}
	u.Nodes = append(u.Nodes, Pair{ID: id, Node: n})
	return true
}

// SetTree replaces the tree.
func (u *Update) SetTree(t Tree) { u.Tree = &t }

// ClearTree removes the tree.
func (u *Update) ClearTree() { u.Tree = nil }

// Len returns the number of pairs.
func (u Update) Len() int { return len(u.Nodes) }

// IDs returns the ids in pair order, duplicates included.
func (u Update) IDs() []types.NodeID {
	out := make([]types.NodeID, len(u.Nodes))
	for i, p := range u.Nodes {
		out[i] = p.ID
	}
	return out
}

// Lookup returns the node of the last pair with the given id.
func (u Update) Lookup(id types.NodeID) (*node.Node, bool) {
	for i := len(u.Nodes) - 1; i >= 0; i-- {
		if u.Nodes[i].ID == id {
			return u.Nodes[i].Node, true
		}
	}
	return nil, false
}

// Validate checks the update against limits: pair count, vector lengths,
// string sizes and a non-zero root.
func (u Update) Validate(limits types.Limits) error {
	limits = limits.Normalize()
	if len(u.Nodes) > limits.MaxUpdateNodes {
		return types.Errorf(types.ErrKindInvalid, "tree update",
			"%d nodes exceeds limit %d", len(u.Nodes), limits.MaxUpdateNodes)
	}
	if u.Tree != nil && u.Tree.Root.IsZero() {
		return types.ErrZeroNodeID
	}
	for _, p := range u.Nodes {
		if err := checkNode(p, limits); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(p Pair, limits types.Limits) error {
	var err error
	node.Each(p.Node, func(d *node.Descriptor, v any) {
		if err != nil {
			return
		}
		n := 0
		limit := limits.MaxVectorLen
		switch t := v.(type) {
		case string:
			n, limit = len(t), limits.MaxStringBytes
		case []types.NodeID:
			n = len(t)
		case []uint8:
			n = len(t)
		case []float32:
			n = len(t)
		case []types.CustomAction:
			n = len(t)
		}
		if n > limit {
			err = types.Errorf(types.ErrKindInvalid, "tree update",
				"node %s: %s length %d exceeds limit %d", p.ID, d.Name, n, limit)
		}
	})
	return err
}

func (u Update) String() string {
	s := fmt.Sprintf("Update{%d nodes", len(u.Nodes))
	if u.Tree != nil {
		s += ", root " + u.Tree.Root.String()
	}
	if !u.Focus.IsZero() {
		s += ", focus " + u.Focus.String()
	}
	return s + "}"
}

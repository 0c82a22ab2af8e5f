package codec

import (
	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Tree mirrors tree.
type Tree struct {
	Root         types.NodeID
	RootScroller Opt[types.NodeID]
}

// FromTree converts t to its mirror.
func FromTree(t tree.Tree) Tree {
	return Tree{Root: t.Root, RootScroller: OptID(t.RootScroller)}
}

// Tree converts the mirror back.
func (t Tree) Tree() tree.Tree {
	return tree.Tree{Root: t.Root, RootScroller: IDOrZero(t.RootScroller)}
}

// TreeLayout is tree: node_id root at 0, opt_node_id root_scroller at 16.
var TreeLayout = Layout[Tree]{
	Name: "tree", Size: 33, Align: 1,
	put: func(b []byte, v Tree) {
		NodeIDLayout.put(field(b, 0, 16), v.Root)
		OptNodeIDLayout.put(field(b, 16, 17), v.RootScroller)
	},
	get: func(b []byte) (Tree, error) {
		root, _ := NodeIDLayout.get(field(b, 0, 16))
		rs, _ := OptNodeIDLayout.get(field(b, 16, 17))
		return Tree{Root: root, RootScroller: rs}, nil
	},
}

// OptTreeLayout is opt_tree (34 bytes).
var OptTreeLayout = Optional("opt_tree", TreeLayout)

// TreeUpdate mirrors tree_update. IDs names a buffer of NodesLength packed
// node_id values and Nodes a buffer of NodesLength node handles.
type TreeUpdate struct {
	NodesLength uint64
	IDs         Ptr
	Nodes       Ptr
	Tree        Opt[Tree]
	Focus       Opt[types.NodeID]
}

// Offsets within tree_update.
const (
	treeUpdateLenOff   = 0
	treeUpdateIDsOff   = 8
	treeUpdateNodesOff = 16
	treeUpdateTreeOff  = 24
	treeUpdateFocusOff = 58
)

// TreeUpdateLayout is tree_update (80 bytes, 8-byte aligned).
var TreeUpdateLayout = Layout[TreeUpdate]{
	Name: "tree_update", Size: 80, Align: 8,
	put: func(b []byte, v TreeUpdate) {
		buf.PutU64LE(b[treeUpdateLenOff:], v.NodesLength)
		buf.PutU64LE(b[treeUpdateIDsOff:], uint64(v.IDs))
		buf.PutU64LE(b[treeUpdateNodesOff:], uint64(v.Nodes))
		OptTreeLayout.put(field(b, treeUpdateTreeOff, OptTreeLayout.Size), v.Tree)
		OptNodeIDLayout.put(field(b, treeUpdateFocusOff, OptNodeIDLayout.Size), v.Focus)
	},
	get: func(b []byte) (TreeUpdate, error) {
		t, _ := OptTreeLayout.get(field(b, treeUpdateTreeOff, OptTreeLayout.Size))
		f, _ := OptNodeIDLayout.get(field(b, treeUpdateFocusOff, OptNodeIDLayout.Size))
		return TreeUpdate{
			NodesLength: buf.U64LE(b[treeUpdateLenOff:]),
			IDs:         Ptr(buf.U64LE(b[treeUpdateIDsOff:])),
			Nodes:       Ptr(buf.U64LE(b[treeUpdateNodesOff:])),
			Tree:        t,
			Focus:       f,
		}, nil
	},
}

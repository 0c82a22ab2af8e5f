package boundary

import (
	"fmt"

	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// TreeUpdateNew converts a tree_update record into an update handle.
//
// The ids and nodes arrays are borrowed; the node handles in them are
// consumed. A null or stale node handle, or a zero id, drops its pair.
// The tree and focus are copied.
func (b *Boundary) TreeUpdateNew(u codec.TreeUpdate) codec.Ptr {
	return call(b, "tree_update_new", func() (codec.Ptr, error) {
		out, err := b.decodeUpdate(u)
		if err != nil {
			return 0, err
		}
		return ptr(b.updates.Insert(out)), nil
	})
}

func (b *Boundary) decodeUpdate(u codec.TreeUpdate) (*tree.Update, error) {
	out := &tree.Update{Focus: codec.IDOrZero(u.Focus)}
	if t, ok := u.Tree.Get(); ok {
		out.SetTree(t.Tree())
	}
	if u.NodesLength == 0 {
		return out, nil
	}

	limit := b.opts.limits.MaxUpdateNodes
	idData, count, err := b.slice(codec.Slice{Length: u.NodesLength, Values: u.IDs}, types.NodeIDSize, limit, bufNodeIDs)
	if err != nil {
		return nil, fmt.Errorf("ids: %w", err)
	}
	ids, err := codec.DecodeNodeIDs(idData, count)
	if err != nil {
		return nil, err
	}
	nodeData, count, err := b.slice(codec.Slice{Length: u.NodesLength, Values: u.Nodes}, codec.PtrSize, limit, bufNodes)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	ptrs, err := codec.DecodePtrs(nodeData, count)
	if err != nil {
		return nil, err
	}

	for i, p := range ptrs {
		if p == 0 {
			continue
		}
		nd, err := b.nodes.Remove(hnd(p))
		if err != nil {
			b.log.Debug("tree update pair dropped", "index", i, "error", err)
			continue
		}
		out.Push(ids[i], nd)
	}
	return out, nil
}

// TreeUpdateLen returns the number of pairs kept by an update.
func (b *Boundary) TreeUpdateLen(p codec.Ptr) int {
	return call(b, "tree_update_len", func() (int, error) {
		u, err := b.updates.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		return u.Len(), nil
	})
}

// TreeUpdateIDs returns the ids of an update's pairs, in order, in a fresh
// buffer released with BufferFree.
func (b *Boundary) TreeUpdateIDs(p codec.Ptr) codec.Slice {
	return call(b, "tree_update_ids", func() (codec.Slice, error) {
		u, err := b.updates.Get(hnd(p))
		if err != nil {
			return codec.Slice{}, err
		}
		ids := u.IDs()
		return newSlice(b, bufNodeIDs, codec.AppendNodeIDs(nil, ids), len(ids)), nil
	})
}

// TreeUpdateFree releases an update that was never given to an adapter,
// along with its nodes.
func (b *Boundary) TreeUpdateFree(p codec.Ptr) {
	do(b, "tree_update_free", func() error {
		_, err := b.updates.Remove(hnd(p))
		return err
	})
}

// takeUpdate removes an update handle for delivery.
func (b *Boundary) takeUpdate(p codec.Ptr) (tree.Update, error) {
	u, err := b.updates.Remove(hnd(p))
	if err != nil {
		return tree.Update{}, err
	}
	return *u, nil
}

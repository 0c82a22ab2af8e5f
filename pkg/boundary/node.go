package boundary

import (
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// ClassSetNew returns a new, empty class set.
func (b *Boundary) ClassSetNew() codec.Ptr {
	return call(b, "node_class_set_new", func() (codec.Ptr, error) {
		return ptr(b.classes.Insert(node.NewClassSet())), nil
	})
}

// ClassSetFree releases a class set. Nodes built against it stay valid.
func (b *Boundary) ClassSetFree(p codec.Ptr) {
	do(b, "node_class_set_free", func() error {
		cs, err := b.classes.Remove(hnd(p))
		if err != nil {
			return err
		}
		cs.Release()
		return nil
	})
}

// BuilderNew starts a node with the given role.
func (b *Boundary) BuilderNew(role types.Role) codec.Ptr {
	return call(b, "node_builder_new", func() (codec.Ptr, error) {
		if !role.Valid() {
			return 0, types.Errorf(types.ErrKindInvalid, "node_builder_new", "undefined role %d", uint8(role))
		}
		return ptr(b.builders.Insert(node.NewBuilder(role))), nil
	})
}

// BuilderFree releases a builder that was never built.
func (b *Boundary) BuilderFree(p codec.Ptr) {
	do(b, "node_builder_free", func() error {
		_, err := b.builders.Remove(hnd(p))
		return err
	})
}

// BuilderBuild consumes the builder and returns the node. A null class
// set builds against a private class. A stale class set fails and leaves
// the builder alive.
func (b *Boundary) BuilderBuild(p, classes codec.Ptr) codec.Ptr {
	return call(b, "node_builder_build", func() (codec.Ptr, error) {
		if _, err := b.builders.Get(hnd(p)); err != nil {
			return 0, err
		}
		var cs *node.ClassSet
		if classes != 0 {
			var err error
			if cs, err = b.classes.Get(hnd(classes)); err != nil {
				return 0, err
			}
		}
		bld, err := b.builders.Remove(hnd(p))
		if err != nil {
			return 0, err
		}
		return ptr(b.nodes.Insert(bld.Build(cs))), nil
	})
}

// NodeFree releases a node.
func (b *Boundary) NodeFree(p codec.Ptr) {
	do(b, "node_free", func() error {
		_, err := b.nodes.Remove(hnd(p))
		return err
	})
}

// NodeToBuilder returns a builder initialized from the node.
func (b *Boundary) NodeToBuilder(p codec.Ptr) codec.Ptr {
	return call(b, "node_to_builder", func() (codec.Ptr, error) {
		n, err := b.nodes.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		return ptr(b.builders.Insert(n.ToBuilder())), nil
	})
}

// reader resolves a node or builder handle.
func (b *Boundary) reader(p codec.Ptr) (node.Reader, error) {
	switch hnd(p).Kind() {
	case KindNode:
		return b.nodes.Get(hnd(p))
	case KindBuilder:
		return b.builders.Get(hnd(p))
	default:
		if p == 0 {
			return nil, types.ErrInvalidArgument
		}
		return nil, errKind(p, KindBuilder)
	}
}

func (b *Boundary) builder(p codec.Ptr) (*node.Builder, error) {
	if k := hnd(p).Kind(); k != KindBuilder && p != 0 {
		return nil, errKind(p, KindBuilder)
	}
	return b.builders.Get(hnd(p))
}

// Role returns the role of a node or builder.
func (b *Boundary) Role(p codec.Ptr) types.Role {
	return call(b, "role", func() (types.Role, error) {
		r, err := b.reader(p)
		if err != nil {
			return 0, err
		}
		return r.Role(), nil
	})
}

// SetRole replaces the role of a builder.
func (b *Boundary) SetRole(p codec.Ptr, role types.Role) {
	do(b, "set_role", func() error {
		if !role.Valid() {
			return types.Errorf(types.ErrKindInvalid, "set_role", "undefined role %d", uint8(role))
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		bld.SetRole(role)
		return nil
	})
}

// SupportsAction reports whether a node or builder supports a.
func (b *Boundary) SupportsAction(p codec.Ptr, a types.Action) bool {
	return call(b, "supports_action", func() (bool, error) {
		r, err := b.reader(p)
		if err != nil {
			return false, err
		}
		return r.SupportsAction(a), nil
	})
}

func (b *Boundary) editActions(op string, p codec.Ptr, a types.Action, fn func(*node.Builder, types.Action)) {
	do(b, op, func() error {
		if !a.Valid() {
			return types.Errorf(types.ErrKindInvalid, op, "undefined action %d", uint8(a))
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		fn(bld, a)
		return nil
	})
}

// AddAction marks a as supported by a builder.
func (b *Boundary) AddAction(p codec.Ptr, a types.Action) {
	b.editActions("add_action", p, a, (*node.Builder).AddAction)
}

// RemoveAction marks a as unsupported by a builder.
func (b *Boundary) RemoveAction(p codec.Ptr, a types.Action) {
	b.editActions("remove_action", p, a, (*node.Builder).RemoveAction)
}

// ClearActions removes every action from a builder.
func (b *Boundary) ClearActions(p codec.Ptr) {
	do(b, "clear_actions", func() error {
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		bld.ClearActions()
		return nil
	})
}

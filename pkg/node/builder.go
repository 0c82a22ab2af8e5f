package node

import (
	"slices"

	"github.com/joshuapare/axkit/pkg/types"
)

// Builder accumulates the role, actions and properties of one node. It is
// consumed by Build: afterwards every setter is a no-op, every getter
// reports absence and Build returns nil.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	role     types.Role
	actions  types.ActionSet
	flags    uint64
	layout   [valueSlots]uint8 // 1-based index into values, 0 = never set
	values   []any             // nil entry = cleared
	consumed bool
}

// NewBuilder starts a node with the given role and no properties.
func NewBuilder(role types.Role) *Builder {
	return &Builder{role: role}
}

// Role returns the role of the node under construction.
func (b *Builder) Role() types.Role { return b.role }

// SetRole replaces the role.
func (b *Builder) SetRole(role types.Role) {
	if b.consumed {
		return
	}
	b.role = role
}

// Actions returns the set of supported actions.
func (b *Builder) Actions() types.ActionSet {
	if b.consumed {
		return 0
	}
	return b.actions
}

// SupportsAction reports whether a has been added.
func (b *Builder) SupportsAction(a types.Action) bool { return b.Actions().Has(a) }

// AddAction marks a as supported.
func (b *Builder) AddAction(a types.Action) {
	if b.consumed {
		return
	}
	b.actions = b.actions.With(a)
}

// RemoveAction marks a as unsupported.
func (b *Builder) RemoveAction(a types.Action) {
	if b.consumed {
		return
	}
	b.actions = b.actions.Without(a)
}

// ClearActions removes every action.
func (b *Builder) ClearActions() {
	if b.consumed {
		return
	}
	b.actions = 0
}

// Consumed reports whether Build has been called.
func (b *Builder) Consumed() bool { return b.consumed }

func (b *Builder) flag(bit int) bool {
	return !b.consumed && b.flags&(1<<bit) != 0
}

func (b *Builder) value(slot int) (any, bool) {
	if b.consumed {
		return nil, false
	}
	idx := b.layout[slot]
	if idx == 0 {
		return nil, false
	}
	v := b.values[idx-1]
	return v, v != nil
}

func (b *Builder) setFlag(bit int, on bool) {
	if b.consumed {
		return
	}
	if on {
		b.flags |= 1 << bit
	} else {
		b.flags &^= 1 << bit
	}
}

func (b *Builder) store(slot int, v any) {
	if idx := b.layout[slot]; idx != 0 {
		b.values[idx-1] = v
		return
	}
	b.values = append(b.values, v)
	b.layout[slot] = uint8(len(b.values))
}

func (b *Builder) clearValue(slot int) {
	if b.consumed {
		return
	}
	if idx := b.layout[slot]; idx != 0 {
		b.values[idx-1] = nil
	}
}

// setValue stores v after checking it against the shape of d.
func (b *Builder) setValue(d *Descriptor, v any) error {
	if b.consumed {
		return types.ErrReleased
	}
	if d.Shape == ShapeFlag {
		on, ok := v.(bool)
		if !ok {
			return typeMismatch(d, v)
		}
		b.setFlag(d.slot, on)
		return nil
	}
	norm, err := normalize(d, v)
	if err != nil {
		return err
	}
	if norm == nil {
		b.clearValue(d.slot)
		return nil
	}
	b.store(d.slot, norm)
	return nil
}

// pushValue appends item to the vector property d.
func (b *Builder) pushValue(d *Descriptor, item any) error {
	if b.consumed {
		return types.ErrReleased
	}
	switch d.Shape {
	case ShapeNodeIDVec:
		id, ok := item.(types.NodeID)
		if !ok {
			return typeMismatch(d, item)
		}
		if id.IsZero() {
			return types.ErrZeroNodeID
		}
		cur, _ := b.value(d.slot)
		ids, _ := cur.([]types.NodeID)
		b.store(d.slot, append(ids, id))
	case ShapeCustomActions:
		ca, ok := item.(types.CustomAction)
		if !ok {
			return typeMismatch(d, item)
		}
		cur, _ := b.value(d.slot)
		cas, _ := cur.([]types.CustomAction)
		b.store(d.slot, append(cas, ca))
	default:
		return types.Errorf(types.ErrKindUnsupported, "push", "%s is not a vector property", d.Name)
	}
	return nil
}

// Build finalizes the node, interning its class in classes, and consumes
// the builder. A nil classes builds against a private, uninterned class.
func (b *Builder) Build(classes *ClassSet) *Node {
	if b == nil || b.consumed {
		return nil
	}
	var layout [valueSlots]uint8
	values := make([]any, 0, len(b.values))
	for slot := 0; slot < valueSlots; slot++ {
		idx := b.layout[slot]
		if idx == 0 || b.values[idx-1] == nil {
			continue
		}
		values = append(values, b.values[idx-1])
		layout[slot] = uint8(len(values))
	}
	n := &Node{
		class:  classes.intern(b.role, b.actions, layout),
		flags:  b.flags,
		values: slices.Clip(values),
	}
	b.consumed = true
	b.values = nil
	b.flags = 0
	b.layout = [valueSlots]uint8{}
	return n
}

package node

import (
	"math"
	"slices"

	"github.com/joshuapare/axkit/pkg/types"
)

// Node is an immutable accessibility node produced by Builder.Build.
// Nodes are safe for concurrent reads.
type Node struct {
	class  *Class
	flags  uint64
	values []any
}

// Role returns the role of n.
func (n *Node) Role() types.Role { return n.class.role }

// Actions returns the set of supported actions.
func (n *Node) Actions() types.ActionSet { return n.class.actions }

// SupportsAction reports whether n supports a.
func (n *Node) SupportsAction(a types.Action) bool { return n.class.actions.Has(a) }

// Class returns the shared class n was built against.
func (n *Node) Class() *Class { return n.class }

func (n *Node) flag(bit int) bool { return n.flags&(1<<bit) != 0 }

func (n *Node) value(slot int) (any, bool) {
	idx := n.class.layout[slot]
	if idx == 0 {
		return nil, false
	}
	return n.values[idx-1], true
}

// ToBuilder returns a new builder holding a copy of every property of n.
func (n *Node) ToBuilder() *Builder {
	b := &Builder{
		role:    n.class.role,
		actions: n.class.actions,
		flags:   n.flags,
		layout:  n.class.layout,
		values:  make([]any, len(n.values)),
	}
	for i, v := range n.values {
		b.values[i] = copyValue(v)
	}
	return b
}

// Equal reports whether a and b carry the same role, actions and
// properties.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.class.role != b.class.role || a.class.actions != b.class.actions || a.flags != b.flags {
		return false
	}
	if a.class.layout != b.class.layout {
		return false
	}
	for i := range a.values {
		if !valueEqual(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func valueEqual(x, y any) bool {
	switch xv := x.(type) {
	case []types.NodeID:
		yv, ok := y.([]types.NodeID)
		return ok && slices.Equal(xv, yv)
	case []uint8:
		yv, ok := y.([]uint8)
		return ok && slices.Equal(xv, yv)
	case []float32:
		yv, ok := y.([]float32)
		return ok && slices.EqualFunc(xv, yv, func(a, b float32) bool { return sameFloat(float64(a), float64(b)) })
	case []types.CustomAction:
		yv, ok := y.([]types.CustomAction)
		return ok && slices.Equal(xv, yv)
	case float64:
		yv, ok := y.(float64)
		return ok && sameFloat(xv, yv)
	case types.Affine:
		yv, ok := y.(types.Affine)
		return ok && slices.EqualFunc(xv[:], yv[:], sameFloat)
	case types.Rect:
		yv, ok := y.(types.Rect)
		return ok && sameFloat(xv.X0, yv.X0) && sameFloat(xv.Y0, yv.Y0) &&
			sameFloat(xv.X1, yv.X1) && sameFloat(xv.Y1, yv.Y1)
	default:
		return x == y
	}
}

// sameFloat is == except that NaN matches NaN.
func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

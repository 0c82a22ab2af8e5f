package node

import (
	"github.com/joshuapare/axkit/pkg/types"
)

// The functions below access properties through their descriptors instead
// of typed keys. Values use the same Go types as the typed keys:
//
//	ShapeFlag            bool
//	ShapeNodeID          types.NodeID
//	ShapeNodeIDVec       []types.NodeID
//	ShapeString          string
//	ShapeF64             float64
//	ShapeIndex           uint64
//	ShapeColor           types.Color
//	ShapeTextDecoration  types.TextDecoration
//	ShapeLengths         []uint8
//	ShapeCoords          []float32
//	ShapeBool            bool
//	ShapeEnum            the enum type named by Descriptor.Enum
//	ShapeAffine          types.Affine
//	ShapeRect            types.Rect
//	ShapeTextSelection   types.TextSelection
//	ShapeCustomActions   []types.CustomAction

// Get returns the value of d on r. Flags report (true, true) when set and
// (false, false) when absent. Vector values are copies.
func Get(r Reader, d *Descriptor) (any, bool) {
	if d == nil {
		return nil, false
	}
	if d.Shape == ShapeFlag {
		on := r.flag(d.slot)
		return on, on
	}
	v, ok := r.value(d.slot)
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Set replaces the value of d on b. A flag set to false is cleared, as is
// an id property set to the zero id.
func Set(b *Builder, d *Descriptor, v any) error {
	if b == nil || d == nil {
		return types.ErrInvalidArgument
	}
	return b.setValue(d, v)
}

// Push appends one element to the vector property d.
func Push(b *Builder, d *Descriptor, item any) error {
	if b == nil || d == nil {
		return types.ErrInvalidArgument
	}
	return b.pushValue(d, item)
}

// Clear removes d from b.
func Clear(b *Builder, d *Descriptor) {
	if b == nil || d == nil {
		return
	}
	if d.Shape == ShapeFlag {
		b.setFlag(d.slot, false)
		return
	}
	b.clearValue(d.slot)
}

// Each calls fn for every property present on r, in ID order.
func Each(r Reader, fn func(d *Descriptor, v any)) {
	for _, d := range registry {
		if v, ok := Get(r, d); ok {
			fn(d, v)
		}
	}
}

// Count returns the number of properties present on r, flags included.
func Count(r Reader) int {
	n := 0
	for _, d := range registry {
		if d.Shape == ShapeFlag {
			if r.flag(d.slot) {
				n++
			}
			continue
		}
		if _, ok := r.value(d.slot); ok {
			n++
		}
	}
	return n
}

func typeMismatch(d *Descriptor, v any) error {
	return types.Errorf(types.ErrKindType, "property value", "%s (%s) cannot hold %T", d.Name, d.Shape, v)
}

// normalize checks v against the shape of d and returns the value to
// store, or nil when the assignment amounts to a clear.
func normalize(d *Descriptor, v any) (any, error) {
	switch d.Shape {
	case ShapeNodeID:
		id, ok := v.(types.NodeID)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		if id.IsZero() {
			return nil, nil
		}
		return id, nil
	case ShapeNodeIDVec:
		ids, ok := v.([]types.NodeID)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		out := make([]types.NodeID, 0, len(ids))
		for _, id := range ids {
			if !id.IsZero() {
				out = append(out, id)
			}
		}
		return out, nil
	case ShapeString:
		return checkType[string](d, v)
	case ShapeF64:
		return checkType[float64](d, v)
	case ShapeIndex:
		return checkType[uint64](d, v)
	case ShapeColor:
		return checkType[types.Color](d, v)
	case ShapeTextDecoration:
		td, ok := v.(types.TextDecoration)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		if !td.Valid() {
			return nil, types.Errorf(types.ErrKindInvalid, "property value", "%s: undefined %v", d.Name, td)
		}
		return td, nil
	case ShapeLengths:
		l, ok := v.([]uint8)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return cloneNonNil(l), nil
	case ShapeCoords:
		c, ok := v.([]float32)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return cloneNonNil(c), nil
	case ShapeBool:
		return checkType[bool](d, v)
	case ShapeEnum:
		raw, isRaw := v.(uint8)
		if !isRaw {
			var ok bool
			if raw, ok = d.Enum.Unbox(v); !ok {
				return nil, types.Errorf(types.ErrKindInvalid, "property value", "%s: not a defined %s: %v", d.Name, d.Enum.Type, v)
			}
		}
		boxed, ok := d.Enum.Box(raw)
		if !ok {
			return nil, types.Errorf(types.ErrKindInvalid, "property value", "%s: undefined %s %d", d.Name, d.Enum.Type, raw)
		}
		return boxed, nil
	case ShapeAffine:
		return checkType[types.Affine](d, v)
	case ShapeRect:
		return checkType[types.Rect](d, v)
	case ShapeTextSelection:
		return checkType[types.TextSelection](d, v)
	case ShapeCustomActions:
		c, ok := v.([]types.CustomAction)
		if !ok {
			return nil, typeMismatch(d, v)
		}
		return cloneNonNil(c), nil
	default:
		return nil, types.Errorf(types.ErrKindUnsupported, "property value", "%s has no value shape", d.Name)
	}
}

func checkType[T any](d *Descriptor, v any) (any, error) {
	t, ok := v.(T)
	if !ok {
		return nil, typeMismatch(d, v)
	}
	return t, nil
}

func copyValue(v any) any {
	switch t := v.(type) {
	case []types.NodeID:
		return cloneNonNil(t)
	case []uint8:
		return cloneNonNil(t)
	case []float32:
		return cloneNonNil(t)
	case []types.CustomAction:
		return cloneNonNil(t)
	default:
		return v
	}
}

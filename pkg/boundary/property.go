package boundary

import (
	"slices"

	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// Properties are addressed by registry ID. Getters accept node and builder
// handles; setters, pushers and Clear accept builder handles only.

func descriptor(id node.PropertyID, shapes ...node.Shape) (*node.Descriptor, error) {
	d, ok := node.Lookup(id)
	if !ok {
		return nil, types.Errorf(types.ErrKindNotFound, "property", "no property with id %d", id)
	}
	if !slices.Contains(shapes, d.Shape) {
		return nil, types.Errorf(types.ErrKindType, "property", "%s is a %s property, not %s", d.Name, d.Shape, shapes[0])
	}
	return d, nil
}

// lookup resolves the reader and descriptor of a getter and returns the
// stored value.
func (b *Boundary) lookup(p codec.Ptr, id node.PropertyID, shape node.Shape) (*node.Descriptor, any, bool, error) {
	d, err := descriptor(id, shape)
	if err != nil {
		return nil, nil, false, err
	}
	r, err := b.reader(p)
	if err != nil {
		return nil, nil, false, err
	}
	v, ok := node.Get(r, d)
	return d, v, ok, nil
}

func getOpt[T any](b *Boundary, op string, p codec.Ptr, id node.PropertyID, shape node.Shape) codec.Opt[T] {
	return call(b, op, func() (codec.Opt[T], error) {
		d, v, ok, err := b.lookup(p, id, shape)
		if err != nil || !ok {
			return codec.None[T](), err
		}
		t, ok := v.(T)
		if !ok {
			return codec.None[T](), types.Errorf(types.ErrKindType, op, "%s holds %T", d.Name, v)
		}
		return codec.Some(t), nil
	})
}

func (b *Boundary) set(op string, p codec.Ptr, id node.PropertyID, shape node.Shape, v any) {
	do(b, op, func() error {
		d, err := descriptor(id, shape)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, v)
	})
}

func (b *Boundary) push(op string, p codec.Ptr, id node.PropertyID, shape node.Shape, item any) {
	do(b, op, func() error {
		d, err := descriptor(id, shape)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Push(bld, d, item)
	})
}

// Clear removes any property from a builder.
func (b *Boundary) Clear(p codec.Ptr, id node.PropertyID) {
	do(b, "clear", func() error {
		d, ok := node.Lookup(id)
		if !ok {
			return types.Errorf(types.ErrKindNotFound, "clear", "no property with id %d", id)
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		node.Clear(bld, d)
		return nil
	})
}

// GetFlag reports whether a flag is set.
func (b *Boundary) GetFlag(p codec.Ptr, id node.PropertyID) bool {
	return call(b, "get_flag", func() (bool, error) {
		_, _, ok, err := b.lookup(p, id, node.ShapeFlag)
		return ok, err
	})
}

// SetFlag sets a flag.
func (b *Boundary) SetFlag(p codec.Ptr, id node.PropertyID) {
	b.set("set_flag", p, id, node.ShapeFlag, true)
}

// GetNodeID returns an optional id property.
func (b *Boundary) GetNodeID(p codec.Ptr, id node.PropertyID) codec.Opt[types.NodeID] {
	return getOpt[types.NodeID](b, "get_node_id", p, id, node.ShapeNodeID)
}

// SetNodeID sets an id property. The zero id clears it.
func (b *Boundary) SetNodeID(p codec.Ptr, id node.PropertyID, v types.NodeID) {
	b.set("set_node_id", p, id, node.ShapeNodeID, v)
}

// GetNodeIDs returns an id vector in a fresh buffer, released with
// BufferFree. An unset vector is the empty slice.
func (b *Boundary) GetNodeIDs(p codec.Ptr, id node.PropertyID) codec.Slice {
	return call(b, "get_node_ids", func() (codec.Slice, error) {
		_, v, ok, err := b.lookup(p, id, node.ShapeNodeIDVec)
		if err != nil || !ok {
			return codec.Slice{}, err
		}
		ids := v.([]types.NodeID)
		return newSlice(b, bufNodeIDs, codec.AppendNodeIDs(nil, ids), len(ids)), nil
	})
}

// SetNodeIDs replaces an id vector. The buffer is moved: a live id buffer
// is released by the call whether or not the builder accepts the value.
func (b *Boundary) SetNodeIDs(p codec.Ptr, id node.PropertyID, s codec.Slice) {
	do(b, "set_node_ids", func() error {
		if s.Values != 0 {
			if _, err := b.buffer(s.Values, bufNodeIDs); err == nil {
				defer func() { _, _ = b.buffers.Remove(hnd(s.Values)) }()
			}
		}
		data, n, err := b.slice(s, types.NodeIDSize, b.opts.limits.MaxVectorLen, bufNodeIDs)
		if err != nil {
			return err
		}
		ids, err := codec.DecodeNodeIDs(data, n)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeNodeIDVec)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, ids)
	})
}

// PushNodeID appends to an id vector. The zero id is rejected.
func (b *Boundary) PushNodeID(p codec.Ptr, id node.PropertyID, v types.NodeID) {
	b.push("push_node_id", p, id, node.ShapeNodeIDVec, v)
}

// GetString returns a string property as a fresh C string, released with
// StringFree. Absent, or not representable under the string policy, is
// null.
func (b *Boundary) GetString(p codec.Ptr, id node.PropertyID) codec.Ptr {
	return call(b, "get_string", func() (codec.Ptr, error) {
		_, v, ok, err := b.lookup(p, id, node.ShapeString)
		if err != nil || !ok {
			return 0, err
		}
		return b.outString(v.(string))
	})
}

// SetString copies the C string at s into a string property.
func (b *Boundary) SetString(p codec.Ptr, id node.PropertyID, s codec.Ptr) {
	do(b, "set_string", func() error {
		str, err := b.inString(s)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeString)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, str)
	})
}

// GetF64 returns an optional double.
func (b *Boundary) GetF64(p codec.Ptr, id node.PropertyID) codec.Opt[float64] {
	return getOpt[float64](b, "get_f64", p, id, node.ShapeF64)
}

// SetF64 sets a double.
func (b *Boundary) SetF64(p codec.Ptr, id node.PropertyID, v float64) {
	b.set("set_f64", p, id, node.ShapeF64, v)
}

// GetIndex returns an optional index.
func (b *Boundary) GetIndex(p codec.Ptr, id node.PropertyID) codec.Opt[uint64] {
	return getOpt[uint64](b, "get_index", p, id, node.ShapeIndex)
}

// SetIndex sets an index.
func (b *Boundary) SetIndex(p codec.Ptr, id node.PropertyID, v uint64) {
	b.set("set_index", p, id, node.ShapeIndex, v)
}

// GetColor returns an optional color.
func (b *Boundary) GetColor(p codec.Ptr, id node.PropertyID) codec.Opt[types.Color] {
	return getOpt[types.Color](b, "get_color", p, id, node.ShapeColor)
}

// SetColor sets a color.
func (b *Boundary) SetColor(p codec.Ptr, id node.PropertyID, v types.Color) {
	b.set("set_color", p, id, node.ShapeColor, v)
}

// GetTextDecoration returns an optional text decoration.
func (b *Boundary) GetTextDecoration(p codec.Ptr, id node.PropertyID) codec.Opt[types.TextDecoration] {
	return getOpt[types.TextDecoration](b, "get_text_decoration", p, id, node.ShapeTextDecoration)
}

// SetTextDecoration sets a text decoration.
func (b *Boundary) SetTextDecoration(p codec.Ptr, id node.PropertyID, v types.TextDecoration) {
	b.set("set_text_decoration", p, id, node.ShapeTextDecoration, v)
}

// GetBool returns an optional bool.
func (b *Boundary) GetBool(p codec.Ptr, id node.PropertyID) codec.Opt[bool] {
	return getOpt[bool](b, "get_bool", p, id, node.ShapeBool)
}

// SetBool sets a bool.
func (b *Boundary) SetBool(p codec.Ptr, id node.PropertyID, v bool) {
	b.set("set_bool", p, id, node.ShapeBool, v)
}

// GetEnum returns the wire value of an optional enum property.
func (b *Boundary) GetEnum(p codec.Ptr, id node.PropertyID) codec.Opt[uint8] {
	return call(b, "get_enum", func() (codec.Opt[uint8], error) {
		d, v, ok, err := b.lookup(p, id, node.ShapeEnum)
		if err != nil || !ok {
			return codec.None[uint8](), err
		}
		raw, ok := d.Enum.Unbox(v)
		if !ok {
			return codec.None[uint8](), types.Errorf(types.ErrKindType, "get_enum", "%s holds %T", d.Name, v)
		}
		return codec.Some(raw), nil
	})
}

// SetEnum sets an enum property from its wire value. Undefined members
// are rejected and leave the property unchanged.
func (b *Boundary) SetEnum(p codec.Ptr, id node.PropertyID, v uint8) {
	b.set("set_enum", p, id, node.ShapeEnum, v)
}

// GetAffine returns an optional transform.
func (b *Boundary) GetAffine(p codec.Ptr, id node.PropertyID) codec.Opt[types.Affine] {
	return getOpt[types.Affine](b, "get_affine", p, id, node.ShapeAffine)
}

// SetAffine sets a transform.
func (b *Boundary) SetAffine(p codec.Ptr, id node.PropertyID, v types.Affine) {
	b.set("set_affine", p, id, node.ShapeAffine, v)
}

// GetRect returns an optional rectangle.
func (b *Boundary) GetRect(p codec.Ptr, id node.PropertyID) codec.Opt[types.Rect] {
	return getOpt[types.Rect](b, "get_rect", p, id, node.ShapeRect)
}

// SetRect sets a rectangle.
func (b *Boundary) SetRect(p codec.Ptr, id node.PropertyID, v types.Rect) {
	b.set("set_rect", p, id, node.ShapeRect, v)
}

// GetTextSelection returns an optional text selection.
func (b *Boundary) GetTextSelection(p codec.Ptr, id node.PropertyID) codec.Opt[types.TextSelection] {
	return getOpt[types.TextSelection](b, "get_text_selection", p, id, node.ShapeTextSelection)
}

// SetTextSelection sets a text selection.
func (b *Boundary) SetTextSelection(p codec.Ptr, id node.PropertyID, v types.TextSelection) {
	b.set("set_text_selection", p, id, node.ShapeTextSelection, v)
}

// GetLengths returns a length-run vector in a fresh buffer, released with
// BufferFree. An unset vector is the empty slice.
func (b *Boundary) GetLengths(p codec.Ptr, id node.PropertyID) codec.Slice {
	return call(b, "get_lengths", func() (codec.Slice, error) {
		_, v, ok, err := b.lookup(p, id, node.ShapeLengths)
		if err != nil || !ok {
			return codec.Slice{}, err
		}
		l := v.([]uint8)
		return newSlice(b, bufLengths, codec.AppendBytes(nil, l), len(l)), nil
	})
}

// SetLengths copies a length-run vector. The slice is borrowed.
func (b *Boundary) SetLengths(p codec.Ptr, id node.PropertyID, s codec.Slice) {
	do(b, "set_lengths", func() error {
		data, n, err := b.slice(s, 1, b.opts.limits.MaxVectorLen, bufLengths)
		if err != nil {
			return err
		}
		l, err := codec.DecodeBytes(data, n)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeLengths)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, l)
	})
}

// GetCoords returns an optional coordinate vector. A present vector is in
// a fresh buffer released with BufferFree; present and empty has no buffer.
func (b *Boundary) GetCoords(p codec.Ptr, id node.PropertyID) codec.Opt[codec.Slice] {
	return call(b, "get_coords", func() (codec.Opt[codec.Slice], error) {
		_, v, ok, err := b.lookup(p, id, node.ShapeCoords)
		if err != nil || !ok {
			return codec.None[codec.Slice](), err
		}
		c := v.([]float32)
		return codec.Some(newSlice(b, bufCoords, codec.AppendF32s(nil, c), len(c))), nil
	})
}

// SetCoords copies a coordinate vector. The slice is borrowed; an empty
// slice marks the vector present and empty.
func (b *Boundary) SetCoords(p codec.Ptr, id node.PropertyID, s codec.Slice) {
	do(b, "set_coords", func() error {
		data, n, err := b.slice(s, 4, b.opts.limits.MaxVectorLen, bufCoords)
		if err != nil {
			return err
		}
		c, err := codec.DecodeF32s(data, n)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeCoords)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, c)
	})
}

// GetCustomActions returns the custom actions as a fresh array, released
// with ArrayFree.
func (b *Boundary) GetCustomActions(p codec.Ptr, id node.PropertyID) codec.Slice {
	return call(b, "get_custom_actions", func() (codec.Slice, error) {
		_, v, ok, err := b.lookup(p, id, node.ShapeCustomActions)
		if err != nil || !ok {
			return codec.Slice{}, err
		}
		return b.writeCustomActions(v.([]types.CustomAction))
	})
}

// SetCustomActions copies a custom-action array. The array and its
// descriptions are borrowed.
func (b *Boundary) SetCustomActions(p codec.Ptr, id node.PropertyID, s codec.Slice) {
	do(b, "set_custom_actions", func() error {
		cas, err := b.readCustomActions(s)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeCustomActions)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Set(bld, d, cas)
	})
}

// PushCustomAction appends a custom action. The description is borrowed.
func (b *Boundary) PushCustomAction(p codec.Ptr, id node.PropertyID, ca codec.CustomAction) {
	do(b, "push_custom_action", func() error {
		v, err := b.customAction(ca)
		if err != nil {
			return err
		}
		d, err := descriptor(id, node.ShapeCustomActions)
		if err != nil {
			return err
		}
		bld, err := b.builder(p)
		if err != nil {
			return err
		}
		return node.Push(bld, d, v)
	})
}

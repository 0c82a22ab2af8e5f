package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Record is one node record as stored (little-endian):
//
//	Offset  Size  Description
//	0x00    2     'n' 'd'
//	0x02    1     Role
//	0x03    1     Reserved, zero
//	0x04    4     Record size including this header, multiple of 8
//	0x08    16    Node id
//	0x18    4     Supported actions bitset
//	0x1C    4     Number of property entries
//	0x20    ...   Property entries
//
// Each property entry is an 8-byte header followed by its payload, padded
// to 8 bytes:
//
//	0x00    1     Property id
//	0x01    1     Shape
//	0x02    2     Reserved, zero
//	0x04    4     Payload length
type Record struct {
	ID      types.NodeID
	Role    types.Role
	Actions types.ActionSet
	Props   []Prop
}

// Prop is one raw property entry. Payload aliases the snapshot buffer.
type Prop struct {
	ID      node.PropertyID
	Shape   node.Shape
	Payload []byte
}

// Encode serializes u. Pairs are written in order, duplicates included.
func Encode(u tree.Update) ([]byte, error) {
	h := Header{MajorVersion: MajorVersion, MinorVersion: MinorVersion, NodeCount: uint32(len(u.Nodes)), Focus: u.Focus}
	if u.Tree != nil {
		h.Flags |= FlagHasTree
		h.Root = u.Tree.Root
		if u.Tree.HasRootScroller() {
			h.Flags |= FlagHasRootScroller
			h.RootScroller = u.Tree.RootScroller
		}
	}
	if !u.Focus.IsZero() {
		h.Flags |= FlagHasFocus
	}

	out := make([]byte, HeaderSize)
	for _, p := range u.Nodes {
		var err error
		if out, err = appendRecord(out, p); err != nil {
			return nil, fmt.Errorf("node %s: %w", p.ID, err)
		}
	}
	h.TotalSize = uint64(len(out))
	h.put(out)
	return out, nil
}

func appendRecord(out []byte, p tree.Pair) ([]byte, error) {
	start := len(out)
	out = append(out, make([]byte, NodeHeaderSize)...)
	rec := out[start:]
	copy(rec[NodeSignatureOffset:], NodeSignature)
	rec[NodeRoleOffset] = uint8(p.Node.Role())
	_ = codec.NodeIDLayout.Put(rec[NodeIDOffset:NodeIDOffset+types.NodeIDSize], p.ID)
	buf.PutU32LE(rec[NodeActionsOffset:], uint32(p.Node.Actions()))

	var (
		props int
		err   error
	)
	node.Each(p.Node, func(d *node.Descriptor, v any) {
		if err != nil {
			return
		}
		var payload []byte
		if payload, err = encodePayload(d, v); err != nil {
			return
		}
		var hdr [PropHeaderSize]byte
		hdr[PropIDOffset] = uint8(d.ID)
		hdr[PropShapeOffset] = uint8(d.Shape)
		buf.PutU32LE(hdr[PropLengthOffset:], uint32(len(payload)))
		out = append(out, hdr[:]...)
		out = append(out, payload...)
		out = append(out, make([]byte, Align8(len(payload))-len(payload))...)
		props++
	})
	if err != nil {
		return nil, err
	}
	buf.PutU32LE(out[start+NodeSizeOffset:], uint32(len(out)-start))
	buf.PutU32LE(out[start+NodePropCountOffset:], uint32(props))
	return out, nil
}

// Walk parses the header and calls fn for every node record in order.
// Records are validated structurally; payloads are not decoded.
func Walk(b []byte, limits types.Limits, fn func(Record) error) (Header, error) {
	limits = limits.Normalize()
	if int64(len(b)) > limits.MaxSnapshotSize {
		return Header{}, fmt.Errorf("snapshot of %d bytes exceeds %d: %w", len(b), limits.MaxSnapshotSize, ErrLimit)
	}
	h, err := ParseHeader(b)
	if err != nil {
		return Header{}, err
	}
	if int(h.NodeCount) > limits.MaxUpdateNodes {
		return Header{}, fmt.Errorf("%d nodes exceeds %d: %w", h.NodeCount, limits.MaxUpdateNodes, ErrLimit)
	}
	data := b[:h.TotalSize]
	off := HeaderSize
	for i := uint32(0); i < h.NodeCount; i++ {
		rec, next, err := parseRecord(data, off)
		if err != nil {
			return Header{}, fmt.Errorf("record %d: %w", i, err)
		}
		if err := fn(rec); err != nil {
			return Header{}, err
		}
		off = next
	}
	if off != len(data) {
		return Header{}, fmt.Errorf("%d trailing bytes after last record: %w", len(data)-off, ErrUnsupported)
	}
	return h, nil
}

func parseRecord(b []byte, off int) (Record, int, error) {
	hdr, ok := buf.Slice(b, off, NodeHeaderSize)
	if !ok {
		return Record{}, 0, ErrTruncated
	}
	if !bytes.Equal(hdr[NodeSignatureOffset:NodeSignatureOffset+2], NodeSignature) {
		return Record{}, 0, ErrSignatureMismatch
	}
	size := int(buf.U32LE(hdr[NodeSizeOffset:]))
	body, ok := buf.Slice(b, off, size)
	if !ok || size < NodeHeaderSize || size%RecordAlignment != 0 {
		return Record{}, 0, fmt.Errorf("size %d: %w", size, ErrTruncated)
	}
	id, _ := codec.NodeIDLayout.Decode(hdr[NodeIDOffset:])
	rec := Record{
		ID:      id,
		Role:    types.Role(hdr[NodeRoleOffset]),
		Actions: types.ActionSet(buf.U32LE(hdr[NodeActionsOffset:])),
	}
	n := int(buf.U32LE(hdr[NodePropCountOffset:]))
	if n > len(node.Properties()) {
		return Record{}, 0, fmt.Errorf("%d properties: %w", n, ErrLimit)
	}
	rec.Props = make([]Prop, 0, n)
	pos := NodeHeaderSize
	for i := 0; i < n; i++ {
		ph, ok := buf.Slice(body, pos, PropHeaderSize)
		if !ok {
			return Record{}, 0, fmt.Errorf("property %d: %w", i, ErrTruncated)
		}
		length := int(buf.U32LE(ph[PropLengthOffset:]))
		payload, ok := buf.Slice(body, pos+PropHeaderSize, length)
		if !ok {
			return Record{}, 0, fmt.Errorf("property %d: %w", i, ErrTruncated)
		}
		rec.Props = append(rec.Props, Prop{
			ID:      node.PropertyID(ph[PropIDOffset]),
			Shape:   node.Shape(ph[PropShapeOffset]),
			Payload: payload,
		})
		pos += PropHeaderSize + Align8(length)
	}
	if pos != size {
		return Record{}, 0, fmt.Errorf("record size %d, entries end at %d: %w", size, pos, ErrTruncated)
	}
	return rec, off + size, nil
}

// Decode rebuilds the update stored in b, building nodes against classes
// (nil for private classes). Entries naming an unknown property are
// skipped.
func Decode(b []byte, classes *node.ClassSet, limits types.Limits) (tree.Update, error) {
	limits = limits.Normalize()
	var u tree.Update
	h, err := Walk(b, limits, func(r Record) error {
		n, err := r.Build(classes, limits)
		if err != nil {
			return fmt.Errorf("node %s: %w", r.ID, err)
		}
		u.Push(r.ID, n)
		return nil
	})
	if err != nil {
		return tree.Update{}, err
	}
	if h.HasTree() {
		t := tree.New(h.Root)
		if h.Flags&FlagHasRootScroller != 0 {
			t.RootScroller = h.RootScroller
		}
		u.SetTree(t)
	}
	if h.Flags&FlagHasFocus != 0 {
		u.Focus = h.Focus
	}
	return u, nil
}

// Build decodes the record into a node.
func (r Record) Build(classes *node.ClassSet, limits types.Limits) (*node.Node, error) {
	if !r.Role.Valid() {
		return nil, fmt.Errorf("role %d: %w", uint8(r.Role), codec.ErrUndefinedEnum)
	}
	b := node.NewBuilder(r.Role)
	for a := types.Action(0); a.Valid(); a++ {
		if r.Actions.Has(a) {
			b.AddAction(a)
		}
	}
	for _, p := range r.Props {
		d, ok := node.Lookup(p.ID)
		if !ok {
			continue
		}
		if d.Shape != p.Shape {
			return nil, fmt.Errorf("%s stored as %s, want %s: %w", d.Name, p.Shape, d.Shape, ErrUnsupported)
		}
		v, err := decodePayload(d, p.Payload, limits)
		if err != nil {
			return nil, err
		}
		if err := node.Set(b, d, v); err != nil {
			return nil, err
		}
	}
	return b.Build(classes), nil
}

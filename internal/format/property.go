package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// Property payloads by shape. Fixed-size shapes reuse the boundary
// layouts; vectors are packed element arrays sized by the entry length:
//
//	flag             empty
//	node_id          16-byte id
//	node_ids         n x 16-byte id
//	string           UTF-8 bytes, no terminator
//	f64, index       8 bytes
//	color            4 bytes
//	text_decoration  1 byte
//	lengths          n bytes
//	coords           n x float32
//	bool, enum       1 byte
//	affine           6 x float64
//	rect             4 x float64
//	text_selection   2 x (16-byte id, uint64 index)
//	custom_actions   n x (int32 id, uint32 length, description bytes)

// customActionHeader is the fixed part of one custom action entry.
const customActionHeader = 8

func encodePayload(d *node.Descriptor, v any) ([]byte, error) {
	switch d.Shape {
	case node.ShapeFlag:
		return nil, nil
	case node.ShapeNodeID:
		return codec.NodeIDLayout.Encode(v.(types.NodeID)), nil
	case node.ShapeNodeIDVec:
		return codec.AppendNodeIDs(nil, v.([]types.NodeID)), nil
	case node.ShapeString:
		return []byte(v.(string)), nil
	case node.ShapeF64:
		return codec.F64Layout.Encode(v.(float64)), nil
	case node.ShapeIndex:
		return codec.IndexLayout.Encode(v.(uint64)), nil
	case node.ShapeColor:
		return codec.ColorLayout.Encode(v.(types.Color)), nil
	case node.ShapeTextDecoration:
		return codec.TextDecorationLayout.Encode(v.(types.TextDecoration)), nil
	case node.ShapeLengths:
		return codec.AppendBytes(nil, v.([]uint8)), nil
	case node.ShapeCoords:
		return codec.AppendF32s(nil, v.([]float32)), nil
	case node.ShapeBool:
		return codec.BoolLayout.Encode(v.(bool)), nil
	case node.ShapeEnum:
		raw, ok := d.Enum.Unbox(v)
		if !ok {
			return nil, fmt.Errorf("%s: undefined %s %v", d.Name, d.Enum.Type, v)
		}
		return []byte{raw}, nil
	case node.ShapeAffine:
		return codec.AffineLayout.Encode(v.(types.Affine)), nil
	case node.ShapeRect:
		return codec.RectLayout.Encode(v.(types.Rect)), nil
	case node.ShapeTextSelection:
		return codec.TextSelectionLayout.Encode(v.(types.TextSelection)), nil
	case node.ShapeCustomActions:
		var out []byte
		for _, ca := range v.([]types.CustomAction) {
			var hdr [customActionHeader]byte
			buf.PutI32LE(hdr[0:], ca.ID)
			buf.PutU32LE(hdr[4:], uint32(len(ca.Description)))
			out = append(out, hdr[:]...)
			out = append(out, ca.Description...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: shape %s: %w", d.Name, d.Shape, ErrUnsupported)
	}
}

func fixed[T any](l codec.Layout[T], p []byte) (any, error) {
	if len(p) != l.Size {
		return nil, fmt.Errorf("%s payload of %d bytes, want %d: %w", l.Name, len(p), l.Size, ErrTruncated)
	}
	return l.Decode(p)
}

func count(p []byte, size, limit int, name string) (int, error) {
	if len(p)%size != 0 {
		return 0, fmt.Errorf("%s payload of %d bytes is not a multiple of %d: %w", name, len(p), size, ErrTruncated)
	}
	n := len(p) / size
	if n > limit {
		return 0, fmt.Errorf("%s: %d elements exceeds %d: %w", name, n, limit, ErrLimit)
	}
	return n, nil
}

// decodePayload returns a value accepted by node.Set for d.
func decodePayload(d *node.Descriptor, p []byte, limits types.Limits) (any, error) {
	switch d.Shape {
	case node.ShapeFlag:
		return true, nil
	case node.ShapeNodeID:
		return fixed(codec.NodeIDLayout, p)
	case node.ShapeNodeIDVec:
		n, err := count(p, types.NodeIDSize, limits.MaxVectorLen, d.Name)
		if err != nil {
			return nil, err
		}
		return codec.DecodeNodeIDs(p, n)
	case node.ShapeString:
		if len(p) > limits.MaxStringBytes {
			return nil, fmt.Errorf("%s: %d bytes exceeds %d: %w", d.Name, len(p), limits.MaxStringBytes, ErrLimit)
		}
		if !utf8.Valid(p) {
			return nil, fmt.Errorf("%s: %w", d.Name, types.ErrMalformedString)
		}
		return string(p), nil
	case node.ShapeF64:
		return fixed(codec.F64Layout, p)
	case node.ShapeIndex:
		return fixed(codec.IndexLayout, p)
	case node.ShapeColor:
		return fixed(codec.ColorLayout, p)
	case node.ShapeTextDecoration:
		return fixed(codec.TextDecorationLayout, p)
	case node.ShapeLengths:
		n, err := count(p, 1, limits.MaxVectorLen, d.Name)
		if err != nil {
			return nil, err
		}
		return codec.DecodeBytes(p, n)
	case node.ShapeCoords:
		n, err := count(p, 4, limits.MaxVectorLen, d.Name)
		if err != nil {
			return nil, err
		}
		return codec.DecodeF32s(p, n)
	case node.ShapeBool:
		return fixed(codec.BoolLayout, p)
	case node.ShapeEnum:
		if len(p) != 1 {
			return nil, fmt.Errorf("%s payload of %d bytes: %w", d.Name, len(p), ErrTruncated)
		}
		return p[0], nil
	case node.ShapeAffine:
		return fixed(codec.AffineLayout, p)
	case node.ShapeRect:
		return fixed(codec.RectLayout, p)
	case node.ShapeTextSelection:
		return fixed(codec.TextSelectionLayout, p)
	case node.ShapeCustomActions:
		return decodeCustomActions(d, p, limits)
	default:
		return nil, fmt.Errorf("%s: shape %s: %w", d.Name, d.Shape, ErrUnsupported)
	}
}

func decodeCustomActions(d *node.Descriptor, p []byte, limits types.Limits) ([]types.CustomAction, error) {
	out := []types.CustomAction{}
	for off := 0; off < len(p); {
		if len(out) >= limits.MaxVectorLen {
			return nil, fmt.Errorf("%s: more than %d entries: %w", d.Name, limits.MaxVectorLen, ErrLimit)
		}
		hdr, ok := buf.Slice(p, off, customActionHeader)
		if !ok {
			return nil, fmt.Errorf("%s entry %d: %w", d.Name, len(out), ErrTruncated)
		}
		n := int(buf.U32LE(hdr[4:]))
		if n > limits.MaxStringBytes {
			return nil, fmt.Errorf("%s entry %d: description of %d bytes: %w", d.Name, len(out), n, ErrLimit)
		}
		desc, ok := buf.Slice(p, off+customActionHeader, n)
		if !ok {
			return nil, fmt.Errorf("%s entry %d: %w", d.Name, len(out), ErrTruncated)
		}
		if !utf8.Valid(desc) {
			return nil, fmt.Errorf("%s entry %d: %w", d.Name, len(out), types.ErrMalformedString)
		}
		out = append(out, types.CustomAction{ID: buf.I32LE(hdr), Description: string(desc)})
		off += customActionHeader + n
	}
	return out, nil
}

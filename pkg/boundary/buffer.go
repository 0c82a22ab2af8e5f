package boundary

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/types"
)

type bufKind uint8

const (
	bufRaw bufKind = iota
	bufString
	bufNodeIDs
	bufLengths
	bufCoords
	bufNodes
	bufCustomActions
)

var bufKindNames = [...]string{"raw", "string", "node_ids", "lengths", "coords", "nodes", "custom_actions"}

func (k bufKind) String() string {
	if int(k) < len(bufKindNames) {
		return bufKindNames[k]
	}
	return fmt.Sprintf("bufKind(%d)", uint8(k))
}

// buffer is memory handed across the boundary. Strings keep their
// terminating NUL. A custom-action array owns its description strings.
type buffer struct {
	kind    bufKind
	data    []byte
	count   int
	strings []codec.Ptr
}

func (b *Boundary) newBuffer(kind bufKind, data []byte, count int) codec.Ptr {
	return ptr(b.buffers.Insert(&buffer{kind: kind, data: data, count: count}))
}

// buffer resolves p, accepting raw buffers wherever a typed one is wanted.
func (b *Boundary) buffer(p codec.Ptr, want ...bufKind) (*buffer, error) {
	if hnd(p).Kind() != KindBuffer && !hnd(p).IsNull() {
		return nil, errKind(p, KindBuffer)
	}
	buf, err := b.buffers.Get(hnd(p))
	if err != nil {
		return nil, err
	}
	if buf.kind == bufRaw || len(want) == 0 || slices.Contains(want, buf.kind) {
		return buf, nil
	}
	return nil, types.Errorf(types.ErrKindType, "buffer", "%s buffer where %s is wanted", buf.kind, want[0])
}

// slice returns the bytes of the n elements named by s. An empty slice
// has no buffer.
func (b *Boundary) slice(s codec.Slice, elemSize, limit int, want bufKind) ([]byte, int, error) {
	n, err := s.Check(limit)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, nil
	}
	buf, err := b.buffer(s.Values, want)
	if err != nil {
		return nil, 0, err
	}
	if len(buf.data)/elemSize < n {
		return nil, 0, fmt.Errorf("%s buffer of %d bytes holds fewer than %d elements: %w",
			buf.kind, len(buf.data), n, codec.ErrTruncated)
	}
	return buf.data[:n*elemSize], n, nil
}

// outString allocates the C string for s, or returns null when the policy
// reports it absent.
func (b *Boundary) outString(s string) (codec.Ptr, error) {
	data, err := b.opts.policy.outgoing(s)
	if err != nil || data == nil {
		return 0, err
	}
	return b.newBuffer(bufString, data, len(data)-1), nil
}

// inString reads the C string at p.
func (b *Boundary) inString(p codec.Ptr) (string, error) {
	if p == 0 {
		return "", types.ErrInvalidArgument
	}
	buf, err := b.buffer(p, bufString)
	if err != nil {
		return "", err
	}
	return b.opts.policy.incoming(buf.data, b.opts.limits.MaxStringBytes)
}

// BufferNew copies data into a raw buffer. Raw buffers are accepted
// wherever a string or slice buffer is expected.
func (b *Boundary) BufferNew(data []byte) codec.Ptr {
	return call(b, "buffer_new", func() (codec.Ptr, error) {
		return b.newBuffer(bufRaw, bytes.Clone(data), len(data)), nil
	})
}

// BufferBytes returns a copy of the bytes of p, strings without their NUL.
func (b *Boundary) BufferBytes(p codec.Ptr) []byte {
	return call(b, "buffer_bytes", func() ([]byte, error) {
		buf, err := b.buffer(p)
		if err != nil {
			return nil, err
		}
		if buf.kind == bufString {
			return bytes.Clone(buf.data[:len(buf.data)-1]), nil
		}
		return bytes.Clone(buf.data), nil
	})
}

// BufferFree releases a raw or slice buffer. Strings are released with
// StringFree and custom-action arrays with ArrayFree.
func (b *Boundary) BufferFree(p codec.Ptr) {
	do(b, "buffer_free", func() error {
		if p == 0 {
			return nil
		}
		buf, err := b.buffer(p)
		if err != nil {
			return err
		}
		switch buf.kind {
		case bufString:
			return types.Errorf(types.ErrKindType, "buffer_free", "string buffer %#x needs string_free", uint64(p))
		case bufCustomActions:
			return types.Errorf(types.ErrKindType, "buffer_free", "custom action array %#x needs array_free", uint64(p))
		}
		_, err = b.buffers.Remove(hnd(p))
		return err
	})
}

// StringNew allocates a C string holding s. Like any C string it ends at
// its first NUL.
func (b *Boundary) StringNew(s string) codec.Ptr {
	return call(b, "string_new", func() (codec.Ptr, error) {
		data := append([]byte(s), 0)
		return b.newBuffer(bufString, data, len(s)), nil
	})
}

// StringValue returns the text of the C string at p, up to its first NUL.
func (b *Boundary) StringValue(p codec.Ptr) (string, bool) {
	type result struct {
		s  string
		ok bool
	}
	r := call(b, "string_value", func() (result, error) {
		buf, err := b.buffer(p, bufString)
		if err != nil {
			return result{}, err
		}
		raw := buf.data
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		return result{string(raw), true}, nil
	})
	return r.s, r.ok
}

// StringFree releases a string returned by a getter or StringNew. Null is
// ignored.
func (b *Boundary) StringFree(p codec.Ptr) {
	do(b, "string_free", func() error {
		if p == 0 {
			return nil
		}
		if _, err := b.buffer(p, bufString); err != nil {
			return err
		}
		_, err := b.buffers.Remove(hnd(p))
		return err
	})
}

// ArrayFree releases a custom-action array and the descriptions it owns.
// An empty array has nothing to release.
func (b *Boundary) ArrayFree(s codec.Slice) {
	do(b, "array_free", func() error {
		if s.Values == 0 {
			return nil
		}
		if _, err := b.buffer(s.Values, bufCustomActions); err != nil {
			return err
		}
		buf, err := b.buffers.Remove(hnd(s.Values))
		if err != nil {
			return err
		}
		for _, p := range buf.strings {
			_, _ = b.buffers.Remove(hnd(p))
		}
		return nil
	})
}

func newSlice(b *Boundary, kind bufKind, data []byte, n int) codec.Slice {
	if n == 0 {
		return codec.Slice{}
	}
	return codec.Slice{Length: uint64(n), Values: b.newBuffer(kind, data, n)}
}

// NodeIDsNew allocates a node_ids slice.
func (b *Boundary) NodeIDsNew(ids []types.NodeID) codec.Slice {
	return call(b, "node_ids_new", func() (codec.Slice, error) {
		return newSlice(b, bufNodeIDs, codec.AppendNodeIDs(nil, ids), len(ids)), nil
	})
}

// NodeIDs reads a node_ids slice.
func (b *Boundary) NodeIDs(s codec.Slice) []types.NodeID {
	return call(b, "node_ids", func() ([]types.NodeID, error) {
		data, n, err := b.slice(s, types.NodeIDSize, b.opts.limits.MaxVectorLen, bufNodeIDs)
		if err != nil {
			return nil, err
		}
		return codec.DecodeNodeIDs(data, n)
	})
}

// LengthsNew allocates a lengths slice.
func (b *Boundary) LengthsNew(v []uint8) codec.Slice {
	return call(b, "lengths_new", func() (codec.Slice, error) {
		return newSlice(b, bufLengths, codec.AppendBytes(nil, v), len(v)), nil
	})
}

// Lengths reads a lengths slice.
func (b *Boundary) Lengths(s codec.Slice) []uint8 {
	return call(b, "lengths", func() ([]uint8, error) {
		data, n, err := b.slice(s, 1, b.opts.limits.MaxVectorLen, bufLengths)
		if err != nil {
			return nil, err
		}
		return codec.DecodeBytes(data, n)
	})
}

// CoordsNew allocates a coords slice.
func (b *Boundary) CoordsNew(v []float32) codec.Slice {
	return call(b, "coords_new", func() (codec.Slice, error) {
		return newSlice(b, bufCoords, codec.AppendF32s(nil, v), len(v)), nil
	})
}

// Coords reads a coords slice.
func (b *Boundary) Coords(s codec.Slice) []float32 {
	return call(b, "coords", func() ([]float32, error) {
		data, n, err := b.slice(s, 4, b.opts.limits.MaxVectorLen, bufCoords)
		if err != nil {
			return nil, err
		}
		return codec.DecodeF32s(data, n)
	})
}

// NodesNew allocates the node pointer array of a tree_update.
func (b *Boundary) NodesNew(nodes []codec.Ptr) codec.Slice {
	return call(b, "nodes_new", func() (codec.Slice, error) {
		return newSlice(b, bufNodes, codec.AppendPtrs(nil, nodes), len(nodes)), nil
	})
}

// CustomActionsNew allocates a custom-action array whose descriptions are
// borrowed from the caller. ArrayFree releases it and leaves the borrowed
// descriptions alone.
func (b *Boundary) CustomActionsNew(cas []codec.CustomAction) codec.Slice {
	return call(b, "custom_actions_new", func() (codec.Slice, error) {
		return newSlice(b, bufCustomActions, codec.AppendCustomActions(nil, cas), len(cas)), nil
	})
}

// CustomActions reads a custom-action array, resolving descriptions.
func (b *Boundary) CustomActions(s codec.Slice) []types.CustomAction {
	return call(b, "custom_actions", func() ([]types.CustomAction, error) {
		return b.readCustomActions(s)
	})
}

func (b *Boundary) readCustomActions(s codec.Slice) ([]types.CustomAction, error) {
	data, n, err := b.slice(s, codec.CustomActionLayout.Size, b.opts.limits.MaxVectorLen, bufCustomActions)
	if err != nil {
		return nil, err
	}
	recs, err := codec.DecodeCustomActions(data, n)
	if err != nil {
		return nil, err
	}
	out := make([]types.CustomAction, len(recs))
	for i, r := range recs {
		// Arrays from GetCustomActions carry null for descriptions the
		// string policy could not represent.
		if r.Description == 0 {
			out[i] = types.CustomAction{ID: r.ID}
			continue
		}
		ca, err := b.customAction(r)
		if err != nil {
			return nil, fmt.Errorf("custom action %d: %w", i, err)
		}
		out[i] = ca
	}
	return out, nil
}

func (b *Boundary) customAction(r codec.CustomAction) (types.CustomAction, error) {
	desc, err := b.inString(r.Description)
	if err != nil {
		return types.CustomAction{}, err
	}
	return types.CustomAction{ID: r.ID, Description: desc}, nil
}

// writeCustomActions builds an array that owns fresh description strings.
func (b *Boundary) writeCustomActions(cas []types.CustomAction) (codec.Slice, error) {
	if len(cas) == 0 {
		return codec.Slice{}, nil
	}
	recs := make([]codec.CustomAction, len(cas))
	owned := make([]codec.Ptr, 0, len(cas))
	for i, ca := range cas {
		p, err := b.outString(ca.Description)
		if err != nil {
			for _, o := range owned {
				_, _ = b.buffers.Remove(hnd(o))
			}
			return codec.Slice{}, err
		}
		if p != 0 {
			owned = append(owned, p)
		}
		recs[i] = codec.CustomAction{ID: ca.ID, Description: p}
	}
	arr := &buffer{
		kind:    bufCustomActions,
		data:    codec.AppendCustomActions(nil, recs),
		count:   len(recs),
		strings: owned,
	}
	return codec.Slice{Length: uint64(len(recs)), Values: ptr(b.buffers.Insert(arr))}, nil
}

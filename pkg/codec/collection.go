package codec

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/types"
)

// Slice mirrors the {size_t length; T *values} header shared by plain
// slices (node_ids, lengths, coords) and converted arrays (custom_actions).
type Slice struct {
	Length uint64
	Values Ptr
}

// Check enforces the NULL <=> empty rule and returns the length as an int
// bounded by limit.
func (s Slice) Check(limit int) (int, error) {
	if (s.Values == 0) != (s.Length == 0) {
		return 0, fmt.Errorf("slice{len=%d, ptr=%#x}: %w", s.Length, uint64(s.Values), ErrNullMismatch)
	}
	return buf.CheckCount(s.Length, limit)
}

// SliceLayout is the 16-byte slice header.
var SliceLayout = Layout[Slice]{
	Name: "slice", Size: 16, Align: 8,
	put: func(b []byte, v Slice) {
		buf.PutU64LE(b, v.Length)
		buf.PutU64LE(b[8:], uint64(v.Values))
	},
	get: func(b []byte) (Slice, error) {
		return Slice{Length: buf.U64LE(b), Values: Ptr(buf.U64LE(b[8:]))}, nil
	},
}

// OptSliceLayout is opt_coords: {bool; {length; values}} (24 bytes).
var OptSliceLayout = Optional("opt_coords", SliceLayout)

// CustomAction mirrors custom_action: the description is a string handle.
type CustomAction struct {
	ID          int32
	Description Ptr
}

// CustomActionLayout is custom_action: int32_t id at 0, char* at 8.
var CustomActionLayout = Layout[CustomAction]{
	Name: "custom_action", Size: 16, Align: 8,
	put: func(b []byte, v CustomAction) {
		buf.PutI32LE(b, v.ID)
		buf.PutU64LE(b[8:], uint64(v.Description))
	},
	get: func(b []byte) (CustomAction, error) {
		return CustomAction{ID: buf.I32LE(b), Description: Ptr(buf.U64LE(b[8:]))}, nil
	},
}

// elements returns the n*size bytes at the front of b.
func elements(b []byte, n, size int, name string) ([]byte, error) {
	end, err := buf.CheckListBounds(len(b), 0, n, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrTruncated, err)
	}
	return b[:end], nil
}

// AppendNodeIDs appends the packed 16-byte forms of ids.
func AppendNodeIDs(dst []byte, ids []types.NodeID) []byte {
	for _, id := range ids {
		raw := id.Bytes()
		dst = append(dst, raw[:]...)
	}
	return dst
}

// DecodeNodeIDs reads n packed node ids.
func DecodeNodeIDs(b []byte, n int) ([]types.NodeID, error) {
	b, err := elements(b, n, types.NodeIDSize, "node_ids")
	if err != nil {
		return nil, err
	}
	out := make([]types.NodeID, n)
	for i := range out {
		var raw [types.NodeIDSize]byte
		copy(raw[:], b[i*types.NodeIDSize:])
		out[i] = types.NodeIDFromBytes(raw)
	}
	return out, nil
}

// AppendBytes appends a lengths vector; bytes have no byte order.
func AppendBytes(dst []byte, v []uint8) []byte { return append(dst, v...) }

// DecodeBytes copies n bytes.
func DecodeBytes(b []byte, n int) ([]uint8, error) {
	b, err := elements(b, n, 1, "lengths")
	if err != nil {
		return nil, err
	}
	return append([]uint8(nil), b...), nil
}

// AppendF32s appends a coordinate vector.
func AppendF32s(dst []byte, v []float32) []byte {
	if len(v) == 0 {
		return dst
	}
	if !cpu.IsBigEndian {
		return append(dst, unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)...)
	}
	for _, f := range v {
		var tmp [4]byte
		buf.PutF32LE(tmp[:], f)
		dst = append(dst, tmp[:]...)
	}
	return dst
}

// DecodeF32s reads n coordinates.
func DecodeF32s(b []byte, n int) ([]float32, error) {
	b, err := elements(b, n, 4, "coords")
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	if n == 0 {
		return out, nil
	}
	if !cpu.IsBigEndian {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*4), b)
		return out, nil
	}
	for i := range out {
		out[i] = buf.F32LE(b[i*4:])
	}
	return out, nil
}

// AppendPtrs appends an array of pointer fields, such as the nodes array
// of a tree_update.
func AppendPtrs(dst []byte, ps []Ptr) []byte {
	for _, p := range ps {
		dst = PtrLayout.Append(dst, p)
	}
	return dst
}

// DecodePtrs reads n pointer fields.
func DecodePtrs(b []byte, n int) ([]Ptr, error) {
	b, err := elements(b, n, PtrSize, "pointers")
	if err != nil {
		return nil, err
	}
	out := make([]Ptr, n)
	for i := range out {
		out[i] = Ptr(buf.U64LE(b[i*PtrSize:]))
	}
	return out, nil
}

// AppendCustomActions appends converted custom_action records.
func AppendCustomActions(dst []byte, cas []CustomAction) []byte {
	for _, ca := range cas {
		dst = CustomActionLayout.Append(dst, ca)
	}
	return dst
}

// DecodeCustomActions reads n custom_action records.
func DecodeCustomActions(b []byte, n int) ([]CustomAction, error) {
	b, err := elements(b, n, CustomActionLayout.Size, "custom_actions")
	if err != nil {
		return nil, err
	}
	out := make([]CustomAction, n)
	for i := range out {
		out[i], _ = CustomActionLayout.get(b[i*CustomActionLayout.Size : (i+1)*CustomActionLayout.Size])
	}
	return out, nil
}

package codec

import (
	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/types"
)

// NodeIDLayout is node_id: 16 little-endian bytes, byte aligned.
var NodeIDLayout = Layout[types.NodeID]{
	Name: "node_id", Size: types.NodeIDSize, Align: 1,
	put: func(b []byte, v types.NodeID) {
		raw := v.Bytes()
		copy(b, raw[:])
	},
	get: func(b []byte) (types.NodeID, error) {
		var raw [types.NodeIDSize]byte
		copy(raw[:], b)
		return types.NodeIDFromBytes(raw), nil
	},
}

// OptNodeIDLayout is opt_node_id (17 bytes).
var OptNodeIDLayout = Optional("opt_node_id", NodeIDLayout)

// OptID maps the zero id to None.
func OptID(id types.NodeID) Opt[types.NodeID] {
	if id.IsZero() {
		return None[types.NodeID]()
	}
	return Some(id)
}

// IDOrZero maps None to the zero id.
func IDOrZero(o Opt[types.NodeID]) types.NodeID {
	if !o.HasValue {
		return types.NodeID{}
	}
	return o.Value
}

var (
	// BoolLayout is a C bool.
	BoolLayout = Layout[bool]{
		Name: "bool", Size: 1, Align: 1,
		put: func(b []byte, v bool) { buf.PutBool(b, v) },
		get: func(b []byte) (bool, error) { return buf.Bool(b), nil },
	}
	// F64Layout is a double.
	F64Layout = Layout[float64]{
		Name: "double", Size: 8, Align: 8,
		put: func(b []byte, v float64) { buf.PutF64LE(b, v) },
		get: func(b []byte) (float64, error) { return buf.F64LE(b), nil },
	}
	// IndexLayout is a size_t.
	IndexLayout = Layout[uint64]{
		Name: "size_t", Size: 8, Align: 8,
		put: func(b []byte, v uint64) { buf.PutU64LE(b, v) },
		get: func(b []byte) (uint64, error) { return buf.U64LE(b), nil },
	}
	// ColorLayout is a packed uint32_t RGBA color.
	ColorLayout = Layout[types.Color]{
		Name: "color", Size: 4, Align: 4,
		put: func(b []byte, v types.Color) { buf.PutU32LE(b, uint32(v)) },
		get: func(b []byte) (types.Color, error) { return types.Color(buf.U32LE(b)), nil },
	}
	// PtrLayout is any pointer field.
	PtrLayout = Layout[Ptr]{
		Name: "pointer", Size: PtrSize, Align: 8,
		put: func(b []byte, v Ptr) { buf.PutU64LE(b, uint64(v)) },
		get: func(b []byte) (Ptr, error) { return Ptr(buf.U64LE(b)), nil },
	}
)

var (
	OptBoolLayout  = Optional("opt_bool", BoolLayout)
	OptF64Layout   = Optional("opt_double", F64Layout)
	OptIndexLayout = Optional("opt_index", IndexLayout)
	OptColorLayout = Optional("opt_color", ColorLayout)
)

// Enum returns the one-byte layout of a closed enumeration. Decoding an
// undefined member fails with ErrUndefinedEnum.
func Enum[E types.EnumValue](name string) Layout[E] {
	return Layout[E]{
		Name: name, Size: 1, Align: 1,
		put: func(b []byte, v E) { b[0] = uint8(v) },
		get: func(b []byte) (E, error) {
			v := E(b[0])
			if !v.Valid() {
				return v, ErrUndefinedEnum
			}
			return v, nil
		},
	}
}

// OptEnum returns the opt_<enum> layout (2 bytes).
func OptEnum[E types.EnumValue](name string) Layout[Opt[E]] {
	return Optional("opt_"+name, Enum[E](name))
}

var (
	RoleLayout              = Enum[types.Role]("role")
	ActionLayout            = Enum[types.Action]("action")
	TextDecorationLayout    = Enum[types.TextDecoration]("text_decoration")
	OptTextDecorationLayout = Optional("opt_text_decoration", TextDecorationLayout)
)

// ActionSetLayout is the supported-actions bitset as a uint32_t.
var ActionSetLayout = Layout[types.ActionSet]{
	Name: "actions", Size: 4, Align: 4,
	put: func(b []byte, v types.ActionSet) { buf.PutU32LE(b, uint32(v)) },
	get: func(b []byte) (types.ActionSet, error) { return types.ActionSet(buf.U32LE(b)), nil },
}

func putF64s(b []byte, vs ...float64) {
	for i, v := range vs {
		buf.PutF64LE(b[i*8:], v)
	}
}

func f64At(b []byte, i int) float64 { return buf.F64LE(b[i*8:]) }

var (
	// AffineLayout is affine: six doubles.
	AffineLayout = Layout[types.Affine]{
		Name: "affine", Size: 48, Align: 8,
		put: func(b []byte, v types.Affine) { putF64s(b, v[:]...) },
		get: func(b []byte) (types.Affine, error) {
			var a types.Affine
			for i := range a {
				a[i] = f64At(b, i)
			}
			return a, nil
		},
	}
	// RectLayout is rect: x0, y0, x1, y1.
	RectLayout = Layout[types.Rect]{
		Name: "rect", Size: 32, Align: 8,
		put: func(b []byte, v types.Rect) { putF64s(b, v.X0, v.Y0, v.X1, v.Y1) },
		get: func(b []byte) (types.Rect, error) {
			return types.Rect{X0: f64At(b, 0), Y0: f64At(b, 1), X1: f64At(b, 2), Y1: f64At(b, 3)}, nil
		},
	}
	PointLayout = Layout[types.Point]{
		Name: "point", Size: 16, Align: 8,
		put: func(b []byte, v types.Point) { putF64s(b, v.X, v.Y) },
		get: func(b []byte) (types.Point, error) { return types.Point{X: f64At(b, 0), Y: f64At(b, 1)}, nil },
	}
	Vec2Layout = Layout[types.Vec2]{
		Name: "vec2", Size: 16, Align: 8,
		put: func(b []byte, v types.Vec2) { putF64s(b, v.X, v.Y) },
		get: func(b []byte) (types.Vec2, error) { return types.Vec2{X: f64At(b, 0), Y: f64At(b, 1)}, nil },
	}
	SizeLayout = Layout[types.Size]{
		Name: "size", Size: 16, Align: 8,
		put: func(b []byte, v types.Size) { putF64s(b, v.Width, v.Height) },
		get: func(b []byte) (types.Size, error) {
			return types.Size{Width: f64At(b, 0), Height: f64At(b, 1)}, nil
		},
	}
)

var (
	OptAffineLayout = Optional("opt_affine", AffineLayout)
	OptRectLayout   = Optional("opt_rect", RectLayout)
)

// TextPositionLayout is text_position: node_id at 0, size_t character
// index at 16.
var TextPositionLayout = Layout[types.TextPosition]{
	Name: "text_position", Size: 24, Align: 8,
	put: func(b []byte, v types.TextPosition) {
		NodeIDLayout.put(field(b, 0, 16), v.Node)
		buf.PutU64LE(b[16:], v.CharacterIndex)
	},
	get: func(b []byte) (types.TextPosition, error) {
		id, _ := NodeIDLayout.get(field(b, 0, 16))
		return types.TextPosition{Node: id, CharacterIndex: buf.U64LE(b[16:])}, nil
	},
}

// TextSelectionLayout is text_selection: anchor then focus.
var TextSelectionLayout = Layout[types.TextSelection]{
	Name: "text_selection", Size: 48, Align: 8,
	put: func(b []byte, v types.TextSelection) {
		TextPositionLayout.put(field(b, 0, 24), v.Anchor)
		TextPositionLayout.put(field(b, 24, 24), v.Focus)
	},
	get: func(b []byte) (types.TextSelection, error) {
		a, _ := TextPositionLayout.get(field(b, 0, 24))
		f, _ := TextPositionLayout.get(field(b, 24, 24))
		return types.TextSelection{Anchor: a, Focus: f}, nil
	},
}

// OptTextSelectionLayout is opt_text_selection (56 bytes).
var OptTextSelectionLayout = Optional("opt_text_selection", TextSelectionLayout)

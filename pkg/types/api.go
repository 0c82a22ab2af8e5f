package types

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalid     ErrKind = iota // missing or out-of-range argument (null handle, zero id)
	ErrKindNotFound                   // unknown property, role or action name
	ErrKindReleased                   // handle used after it was freed or consumed
	ErrKindType                       // handle or value of the wrong kind for the operation
	ErrKindMalformed                  // bytes or strings that cannot be represented
	ErrKindUnsupported                // recognized but unsupported layout or variant
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalid:
		return "invalid"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindReleased:
		return "released"
	case ErrKindType:
		return "type"
	case ErrKindMalformed:
		return "malformed"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind wrapping a formatted cause.
func Errorf(kind ErrKind, msg string, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: msg, Err: fmt.Errorf(format, args...)}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidArgument indicates a null or out-of-range argument.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalid, Msg: "invalid argument"}
	// ErrZeroNodeID indicates a node id of zero where a present id is required.
	ErrZeroNodeID = &Error{Kind: ErrKindInvalid, Msg: "node id must be non-zero"}
	// ErrNotFound indicates an unknown name (property, role, action...).
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrReleased indicates a handle that was freed or consumed.
	ErrReleased = &Error{Kind: ErrKindReleased, Msg: "handle already released"}
	// ErrTypeMismatch indicates a handle or value of the wrong kind.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "type mismatch"}
	// ErrMalformedString indicates a string that cannot cross the boundary.
	ErrMalformedString = &Error{Kind: ErrKindMalformed, Msg: "string not representable as a nul-terminated buffer"}
	// ErrUnsupported indicates a recognized but unsupported variant.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported"}
)

// -----------------------------------------------------------------------------
// Node Identity
// -----------------------------------------------------------------------------

// NodeIDSize is the size of a node id on the wire.
const NodeIDSize = 16

// NodeID identifies a node within a tree. It is a 128-bit integer that is
// never zero for a real node; the zero value means "no node" wherever an id
// is optional (focus, root scroller, id-valued properties).
type NodeID struct {
	hi, lo uint64
}

// NewNodeID returns the id with the given 64-bit value. NewNodeID(0) is the
// absent id.
func NewNodeID(v uint64) NodeID { return NodeID{lo: v} }

// NodeIDFromHalves builds an id from its high and low 64-bit halves.
func NodeIDFromHalves(hi, lo uint64) NodeID { return NodeID{hi: hi, lo: lo} }

// NodeIDFromBytes decodes the 16-byte little-endian wire form.
func NodeIDFromBytes(b [NodeIDSize]byte) NodeID {
	return NodeID{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// NodeIDFromUUID interprets the 16 bytes of u as a big-endian integer.
func NodeIDFromUUID(u uuid.UUID) NodeID {
	return NodeID{
		hi: binary.BigEndian.Uint64(u[0:8]),
		lo: binary.BigEndian.Uint64(u[8:16]),
	}
}

// RandomNodeID returns a random version 4 UUID as a node id. It is never zero.
func RandomNodeID() NodeID { return NodeIDFromUUID(uuid.New()) }

// Bytes returns the 16-byte little-endian wire form.
func (id NodeID) Bytes() [NodeIDSize]byte {
	var b [NodeIDSize]byte
	binary.LittleEndian.PutUint64(b[0:8], id.lo)
	binary.LittleEndian.PutUint64(b[8:16], id.hi)
	return b
}

// IsZero reports whether id is the absent id.
func (id NodeID) IsZero() bool { return id.hi == 0 && id.lo == 0 }

// Halves returns the high and low 64-bit halves of id.
func (id NodeID) Halves() (hi, lo uint64) { return id.hi, id.lo }

// Uint64 returns id as a uint64 when it fits.
func (id NodeID) Uint64() (uint64, bool) { return id.lo, id.hi == 0 }

// UUID returns id as a UUID, the inverse of NodeIDFromUUID.
func (id NodeID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[0:8], id.hi)
	binary.BigEndian.PutUint64(u[8:16], id.lo)
	return u
}

// String formats ids that fit in 64 bits as decimal and larger ids as
// 32 hex digits with a 0x prefix.
func (id NodeID) String() string {
	if id.hi == 0 {
		return strconv.FormatUint(id.lo, 10)
	}
	return fmt.Sprintf("0x%016x%016x", id.hi, id.lo)
}

// MarshalText implements encoding.TextMarshaler.
func (id NodeID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *NodeID) UnmarshalText(b []byte) error {
	v, err := ParseNodeID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

var maxNodeID = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ParseNodeID accepts a decimal integer, a 0x-prefixed hex integer of up to
// 128 bits, or a UUID in its canonical text form.
func ParseNodeID(s string) (NodeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NodeID{}, Errorf(ErrKindInvalid, "parse node id", "empty string")
	}
	if u, err := uuid.Parse(s); err == nil && strings.Count(s, "-") == 4 {
		return NodeIDFromUUID(u), nil
	}
	n := new(big.Int)
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	if _, ok := n.SetString(digits, base); !ok || n.Sign() < 0 || n.Cmp(maxNodeID) > 0 {
		return NodeID{}, Errorf(ErrKindInvalid, "parse node id", "%q is not a 128-bit unsigned integer", s)
	}
	var b [NodeIDSize]byte
	n.FillBytes(b[:]) // big-endian
	return NodeID{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

package codec

import (
	"errors"
	"fmt"

	"github.com/joshuapare/axkit/internal/buf"
)

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a layout.
	ErrTruncated = errors.New("codec: truncated buffer")
	// ErrUndefinedEnum indicates an enum byte outside the defined members.
	ErrUndefinedEnum = errors.New("codec: undefined enum value")
	// ErrBadTag indicates an action_data tag outside the defined variants.
	ErrBadTag = errors.New("codec: unknown action data tag")
	// ErrNullMismatch indicates a slice whose pointer is NULL with a non-zero
	// length, or non-NULL with a zero length.
	ErrNullMismatch = errors.New("codec: slice pointer and length disagree")
)

// Ptr is the content of a pointer field: a boundary handle, 0 for NULL.
type Ptr uint64

// PtrSize is the size of a pointer field.
const PtrSize = 8

// Opt mirrors the opt_T structs.
type Opt[T any] struct {
	HasValue bool
	Value    T
}

// Some returns a present optional.
func Some[T any](v T) Opt[T] { return Opt[T]{HasValue: true, Value: v} }

// None returns an absent optional.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.Value, o.HasValue }

// Layout is the byte layout of one C type.
type Layout[T any] struct {
	Name  string
	Size  int
	Align int

	put func(b []byte, v T)       // b is exactly Size zeroed bytes
	get func(b []byte) (T, error) // b is exactly Size bytes
}

// Append appends the encoding of v to dst.
func (l Layout[T]) Append(dst []byte, v T) []byte {
	off := len(dst)
	dst = append(dst, make([]byte, l.Size)...)
	l.put(dst[off:off+l.Size], v)
	return dst
}

// Encode returns the encoding of v.
func (l Layout[T]) Encode(v T) []byte {
	return l.Append(make([]byte, 0, l.Size), v)
}

// Put writes v over the first Size bytes of b, zeroing padding.
func (l Layout[T]) Put(b []byte, v T) error {
	if len(b) < l.Size {
		return fmt.Errorf("%s: %w (have %d, need %d)", l.Name, ErrTruncated, len(b), l.Size)
	}
	clear(b[:l.Size])
	l.put(b[:l.Size], v)
	return nil
}

// Decode reads a value from the first Size bytes of b.
func (l Layout[T]) Decode(b []byte) (T, error) {
	if len(b) < l.Size {
		var zero T
		return zero, fmt.Errorf("%s: %w (have %d, need %d)", l.Name, ErrTruncated, len(b), l.Size)
	}
	v, err := l.get(b[:l.Size])
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", l.Name, err)
	}
	return v, nil
}

// DecodeAt reads the i-th element of a packed array of l.
func (l Layout[T]) DecodeAt(b []byte, i int) (T, error) {
	off, ok := buf.MulOverflowSafe(i, l.Size)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s[%d]: %w", l.Name, i, ErrTruncated)
	}
	sub, ok := buf.Slice(b, off, l.Size)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s[%d]: %w", l.Name, i, ErrTruncated)
	}
	return l.Decode(sub)
}

// Optional derives the opt_T layout of inner.
func Optional[T any](name string, inner Layout[T]) Layout[Opt[T]] {
	off := buf.Align(1, inner.Align)
	return Layout[Opt[T]]{
		Name:  name,
		Size:  buf.Align(off+inner.Size, inner.Align),
		Align: inner.Align,
		put: func(b []byte, v Opt[T]) {
			if !v.HasValue {
				return
			}
			buf.PutBool(b, true)
			inner.put(b[off:off+inner.Size], v.Value)
		},
		get: func(b []byte) (Opt[T], error) {
			if !buf.Bool(b) {
				return Opt[T]{}, nil
			}
			v, err := inner.get(b[off : off+inner.Size])
			if err != nil {
				return Opt[T]{}, err
			}
			return Some(v), nil
		},
	}
}

// field is a helper for struct layouts: the window of b at off of size n.
func field(b []byte, off, n int) []byte { return b[off : off+n] }

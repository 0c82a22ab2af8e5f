// Package codec defines the fixed byte layouts that cross the C boundary.
//
// Every layout is a Layout[T] value: a Go mirror type T plus the size,
// alignment and field offsets of the matching C struct on 64-bit targets.
// Pointer fields never carry addresses. They carry a Ptr, the 8-byte
// boundary handle of the buffer or object pointed to, with zero for NULL.
//
// # Optional values
//
// Optional(inner) lays out {bool has_value; T value} with the value at the
// first offset aligned for T. When has_value is false the value bytes are
// zero and decoders never read them.
//
// # Collections
//
// Plain slices ({size_t length; T *values}) and converted arrays share the
// Slice header. Element bytes live in a separate buffer named by Slice.Values
// and are encoded with the Append*/Decode* element helpers. A NULL Values is
// required exactly when Length is zero.
//
// # Byte order
//
// All multi-byte fields are little-endian. On little-endian hosts this is
// the in-memory form, and float and byte vectors are copied in bulk.
package codec

// Package types defines the vocabulary shared by every layer of axkit:
// node identifiers, roles, actions and the small closed enumerations used
// by node properties, 2D geometry, text positions, decode limits and typed
// errors.
//
// Design goals:
//   - Small, copyable values; a NodeID is two machine words and its zero
//     value means "no node".
//   - Every enumeration is a uint8 with String, Valid and name parsing, so
//     decoders can reject values a peer has no name for.
//   - Typed errors with stable categories (invalid/released/type/...).
package types

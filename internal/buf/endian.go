// Package buf contains the little-endian primitives the boundary layouts and
// the snapshot format are built from. Readers return 0 when the buffer is too
// short, so a truncated record decodes to an inert value instead of a panic.
package buf

import (
	"encoding/binary"
	"math"
)

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	return int32(U32LE(b))
}

// F32LE reads a little-endian IEEE-754 float32. Returns 0 when b is too short.
func F32LE(b []byte) float32 {
	return math.Float32frombits(U32LE(b))
}

// F64LE reads a little-endian IEEE-754 float64. Returns 0 when b is too short.
func F64LE(b []byte) float64 {
	return math.Float64frombits(U64LE(b))
}

// Bool reads a C bool. Any non-zero byte is true; a short buffer is false.
func Bool(b []byte) bool {
	return len(b) > 0 && b[0] != 0
}

// PutU16LE writes v at b[0:2]. Writes nothing when b is too short.
func PutU16LE(b []byte, v uint16) {
	if len(b) >= 2 {
		binary.LittleEndian.PutUint16(b, v)
	}
}

// PutU32LE writes v at b[0:4]. Writes nothing when b is too short.
func PutU32LE(b []byte, v uint32) {
	if len(b) >= 4 {
		binary.LittleEndian.PutUint32(b, v)
	}
}

// PutU64LE writes v at b[0:8]. Writes nothing when b is too short.
func PutU64LE(b []byte, v uint64) {
	if len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, v)
	}
}

// PutI32LE writes v at b[0:4].
func PutI32LE(b []byte, v int32) { PutU32LE(b, uint32(v)) }

// PutF32LE writes v at b[0:4].
func PutF32LE(b []byte, v float32) { PutU32LE(b, math.Float32bits(v)) }

// PutF64LE writes v at b[0:8].
func PutF64LE(b []byte, v float64) { PutU64LE(b, math.Float64bits(v)) }

// PutBool writes a C bool (0 or 1) at b[0].
func PutBool(b []byte, v bool) {
	if len(b) == 0 {
		return
	}
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

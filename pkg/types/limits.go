package types

// ============================================================================
// Boundary Decode Limits
// ============================================================================
// Lengths read from the far side of the boundary (slice lengths, string
// lengths, node counts) are checked against these before any allocation.

const (
	// DefaultMaxUpdateNodes bounds the (id, node) pairs in one tree update.
	DefaultMaxUpdateNodes = 1 << 20

	// RelaxedMaxUpdateNodes suits whole-document snapshots.
	RelaxedMaxUpdateNodes = 1 << 24

	// StrictMaxUpdateNodes suits untrusted input such as snapshot files
	// received from elsewhere.
	StrictMaxUpdateNodes = 1 << 14

	// DefaultMaxVectorLen bounds id vectors, custom action arrays, length
	// runs and coordinate vectors.
	DefaultMaxVectorLen = 1 << 20

	// StrictMaxVectorLen is the conservative vector bound.
	StrictMaxVectorLen = 1 << 12

	// DefaultMaxStringBytes bounds a single string property (1 MiB).
	DefaultMaxStringBytes = 1 << 20

	// RelaxedMaxStringBytes admits large inner_html values (16 MiB).
	RelaxedMaxStringBytes = 16 << 20

	// StrictMaxStringBytes is the conservative string bound (64 KiB).
	StrictMaxStringBytes = 64 << 10

	// DefaultMaxSnapshotSize bounds snapshot files (256 MiB).
	DefaultMaxSnapshotSize = 256 << 20

	// RelaxedMaxSnapshotSize bounds snapshot files (2 GiB).
	RelaxedMaxSnapshotSize = 2 << 30

	// StrictMaxSnapshotSize bounds snapshot files (16 MiB).
	StrictMaxSnapshotSize = 16 << 20
)

// Limits defines what decoders accept before they give up.
type Limits struct {
	// MaxUpdateNodes is the maximum number of (id, node) pairs in one update.
	MaxUpdateNodes int

	// MaxVectorLen is the maximum element count of any vector property.
	MaxVectorLen int

	// MaxStringBytes is the maximum byte length of one string, excluding the
	// terminating NUL.
	MaxStringBytes int

	// MaxSnapshotSize is the maximum size of a snapshot file in bytes.
	MaxSnapshotSize int64
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxUpdateNodes:  DefaultMaxUpdateNodes,
		MaxVectorLen:    DefaultMaxVectorLen,
		MaxStringBytes:  DefaultMaxStringBytes,
		MaxSnapshotSize: DefaultMaxSnapshotSize,
	}
}

// RelaxedLimits admits very large documents.
func RelaxedLimits() Limits {
	return Limits{
		MaxUpdateNodes:  RelaxedMaxUpdateNodes,
		MaxVectorLen:    DefaultMaxVectorLen,
		MaxStringBytes:  RelaxedMaxStringBytes,
		MaxSnapshotSize: RelaxedMaxSnapshotSize,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxUpdateNodes:  StrictMaxUpdateNodes,
		MaxVectorLen:    StrictMaxVectorLen,
		MaxStringBytes:  StrictMaxStringBytes,
		MaxSnapshotSize: StrictMaxSnapshotSize,
	}
}

// Normalize fills zero fields from DefaultLimits.
func (l Limits) Normalize() Limits {
	d := DefaultLimits()
	if l.MaxUpdateNodes <= 0 {
		l.MaxUpdateNodes = d.MaxUpdateNodes
	}
	if l.MaxVectorLen <= 0 {
		l.MaxVectorLen = d.MaxVectorLen
	}
	if l.MaxStringBytes <= 0 {
		l.MaxStringBytes = d.MaxStringBytes
	}
	if l.MaxSnapshotSize <= 0 {
		l.MaxSnapshotSize = d.MaxSnapshotSize
	}
	return l
}

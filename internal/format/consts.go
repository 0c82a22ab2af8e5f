// Package format encodes tree updates as flat, self-contained snapshot
// files (.axt). A snapshot holds everything needed to rebuild the update:
// the tree, the focus and every node with its role, actions and
// properties. Properties are stored by registry ID and shape, so a reader
// can skip entries it does not understand.
package format

var (
	// Signature is the four-byte magic at the start of every snapshot.
	// Layout:
	//   0x00  'a' 'x' 't' '1'
	Signature = []byte{'a', 'x', 't', '1'}

	// NodeSignature identifies a node record.
	NodeSignature = []byte{'n', 'd'}
)

const (
	// MajorVersion changes when old readers cannot parse new files.
	MajorVersion = 1
	// MinorVersion changes when fields are added that old readers skip.
	MinorVersion = 0

	// HeaderSize is the fixed snapshot header.
	HeaderSize = 0x50

	// Header field offsets.
	SignatureOffset    = 0x00
	SignatureSize      = 4
	MajorVersionOffset = 0x04
	MinorVersionOffset = 0x06
	FlagsOffset        = 0x08
	NodeCountOffset    = 0x0C
	TotalSizeOffset    = 0x10
	RootOffset         = 0x18
	RootScrollerOffset = 0x28
	FocusOffset        = 0x38
	ReservedOffset     = 0x48

	// NodeHeaderSize is the fixed part of a node record.
	NodeHeaderSize = 0x20

	// Node record field offsets.
	NodeSignatureOffset = 0x00
	NodeRoleOffset      = 0x02
	NodeReservedOffset  = 0x03
	NodeSizeOffset      = 0x04
	NodeIDOffset        = 0x08
	NodeActionsOffset   = 0x18
	NodePropCountOffset = 0x1C

	// PropHeaderSize is the fixed part of a property entry.
	PropHeaderSize = 8

	// Property entry field offsets.
	PropIDOffset     = 0x00
	PropShapeOffset  = 0x01
	PropLengthOffset = 0x04

	// RecordAlignment is the alignment of node records and property
	// entries.
	RecordAlignment     = 8
	RecordAlignmentMask = RecordAlignment - 1
)

// Header flags.
const (
	FlagHasTree uint32 = 1 << iota
	FlagHasRootScroller
	FlagHasFocus
)

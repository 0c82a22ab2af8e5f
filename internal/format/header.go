package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/types"
)

// Header is the fixed snapshot header (little-endian):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    'a' 'x' 't' '1'
//	 0x04    2    Major version
//	 0x06    2    Minor version
//	 0x08    4    Flags (FlagHasTree, FlagHasRootScroller, FlagHasFocus)
//	 0x0C    4    Number of node records
//	 0x10    8    Total size of the snapshot, header included
//	 0x18   16    Root node id (zero without FlagHasTree)
//	 0x28   16    Root scroller node id
//	 0x38   16    Focused node id
//	 0x48    8    Reserved, zero
//
// Node records follow the header back to back.
type Header struct {
	MajorVersion uint16
	MinorVersion uint16
	Flags        uint32
	NodeCount    uint32
	TotalSize    uint64
	Root         types.NodeID
	RootScroller types.NodeID
	Focus        types.NodeID
}

// HasTree reports whether the snapshot carries a tree.
func (h Header) HasTree() bool { return h.Flags&FlagHasTree != 0 }

// ParseHeader validates and extracts the snapshot header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SignatureOffset:SignatureOffset+SignatureSize], Signature) {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	h := Header{
		MajorVersion: buf.U16LE(b[MajorVersionOffset:]),
		MinorVersion: buf.U16LE(b[MinorVersionOffset:]),
		Flags:        buf.U32LE(b[FlagsOffset:]),
		NodeCount:    buf.U32LE(b[NodeCountOffset:]),
		TotalSize:    buf.U64LE(b[TotalSizeOffset:]),
	}
	if h.MajorVersion != MajorVersion {
		return Header{}, fmt.Errorf("header: version %d.%d: %w", h.MajorVersion, h.MinorVersion, ErrVersion)
	}
	h.Root, _ = codec.NodeIDLayout.Decode(b[RootOffset:])
	h.RootScroller, _ = codec.NodeIDLayout.Decode(b[RootScrollerOffset:])
	h.Focus, _ = codec.NodeIDLayout.Decode(b[FocusOffset:])
	if h.TotalSize < HeaderSize || h.TotalSize > uint64(len(b)) {
		return Header{}, fmt.Errorf("header: declared size %d for %d bytes: %w", h.TotalSize, len(b), ErrTruncated)
	}
	return h, nil
}

func (h Header) put(b []byte) {
	copy(b[SignatureOffset:], Signature)
	buf.PutU16LE(b[MajorVersionOffset:], h.MajorVersion)
	buf.PutU16LE(b[MinorVersionOffset:], h.MinorVersion)
	buf.PutU32LE(b[FlagsOffset:], h.Flags)
	buf.PutU32LE(b[NodeCountOffset:], h.NodeCount)
	buf.PutU64LE(b[TotalSizeOffset:], h.TotalSize)
	_ = codec.NodeIDLayout.Put(b[RootOffset:RootOffset+types.NodeIDSize], h.Root)
	_ = codec.NodeIDLayout.Put(b[RootScrollerOffset:RootScrollerOffset+types.NodeIDSize], h.RootScroller)
	_ = codec.NodeIDLayout.Put(b[FocusOffset:FocusOffset+types.NodeIDSize], h.Focus)
}

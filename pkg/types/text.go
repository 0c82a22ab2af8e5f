package types

import "fmt"

// TextPosition is a character offset within the text run of one node.
type TextPosition struct {
	// Node is the inline text box (or similar) the offset refers to.
	Node NodeID
	// CharacterIndex counts characters, not bytes, from the start of Node.
	CharacterIndex uint64
}

// TextSelection is an anchor/focus pair. The anchor stays put while the
// focus moves as the user extends the selection; both may sit in
// different nodes and either may come first in document order.
type TextSelection struct {
	Anchor TextPosition
	Focus  TextPosition
}

// IsCollapsed reports whether the selection is a caret.
func (s TextSelection) IsCollapsed() bool { return s.Anchor == s.Focus }

// CustomAction is an application-defined action, invoked through
// ActionCustomAction with the matching id.
type CustomAction struct {
	ID          int32
	Description string
}

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// RGBA packs four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Channels unpacks c.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string { return fmt.Sprintf("#%08x", uint32(c)) }

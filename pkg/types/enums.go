package types

// AriaCurrent marks the current item within a set of related elements.
type AriaCurrent uint8

const (
	AriaCurrentFalse AriaCurrent = iota
	AriaCurrentTrue
	AriaCurrentPage
	AriaCurrentStep
	AriaCurrentLocation
	AriaCurrentDate
	AriaCurrentTime
)

var ariaCurrentNames = [...]string{
	"False",
	"True",
	"Page",
	"Step",
	"Location",
	"Date",
	"Time",
}

func (v AriaCurrent) String() string { return enumString(ariaCurrentNames[:], uint8(v), "AriaCurrent") }

// Valid reports whether v is a defined AriaCurrent.
func (v AriaCurrent) Valid() bool { return int(v) < len(ariaCurrentNames) }

// CheckedState is the tri-state value of a checkbox-like control.
type CheckedState uint8

const (
	CheckedStateFalse CheckedState = iota
	CheckedStateTrue
	CheckedStateMixed
)

var checkedStateNames = [...]string{
	"False",
	"True",
	"Mixed",
}

func (v CheckedState) String() string { return enumString(checkedStateNames[:], uint8(v), "CheckedState") }

// Valid reports whether v is a defined CheckedState.
func (v CheckedState) Valid() bool { return int(v) < len(checkedStateNames) }

// DefaultActionVerb describes what the default action of a node does.
type DefaultActionVerb uint8

const (
	DefaultActionVerbClick DefaultActionVerb = iota
	DefaultActionVerbFocus
	DefaultActionVerbCheck
	DefaultActionVerbUncheck
	DefaultActionVerbClickAncestor
	DefaultActionVerbJump
	DefaultActionVerbOpen
	DefaultActionVerbPress
	DefaultActionVerbSelect
)

var defaultActionVerbNames = [...]string{
	"Click",
	"Focus",
	"Check",
	"Uncheck",
	"ClickAncestor",
	"Jump",
	"Open",
	"Press",
	"Select",
}

func (v DefaultActionVerb) String() string { return enumString(defaultActionVerbNames[:], uint8(v), "DefaultActionVerb") }

// Valid reports whether v is a defined DefaultActionVerb.
func (v DefaultActionVerb) Valid() bool { return int(v) < len(defaultActionVerbNames) }

// DescriptionFrom records where a node's description was computed from.
type DescriptionFrom uint8

const (
	DescriptionFromAriaDescription DescriptionFrom = iota
	DescriptionFromButtonLabel
	DescriptionFromRelatedElement
	DescriptionFromRubyAnnotation
	DescriptionFromSummary
	DescriptionFromTableCaption
	DescriptionFromTitle
)

var descriptionFromNames = [...]string{
	"AriaDescription",
	"ButtonLabel",
	"RelatedElement",
	"RubyAnnotation",
	"Summary",
	"TableCaption",
	"Title",
}

func (v DescriptionFrom) String() string { return enumString(descriptionFromNames[:], uint8(v), "DescriptionFrom") }

// Valid reports whether v is a defined DescriptionFrom.
func (v DescriptionFrom) Valid() bool { return int(v) < len(descriptionFromNames) }

// HasPopup indicates the kind of popup a node can open.
type HasPopup uint8

const (
	HasPopupTrue HasPopup = iota
	HasPopupMenu
	HasPopupListbox
	HasPopupTree
	HasPopupGrid
	HasPopupDialog
)

var hasPopupNames = [...]string{
	"True",
	"Menu",
	"Listbox",
	"Tree",
	"Grid",
	"Dialog",
}

func (v HasPopup) String() string { return enumString(hasPopupNames[:], uint8(v), "HasPopup") }

// Valid reports whether v is a defined HasPopup.
func (v HasPopup) Valid() bool { return int(v) < len(hasPopupNames) }

// Invalid reports why the value of a node failed validation.
type Invalid uint8

const (
	InvalidTrue Invalid = iota
	InvalidGrammar
	InvalidSpelling
)

var invalidNames = [...]string{
	"True",
	"Grammar",
	"Spelling",
}

func (v Invalid) String() string { return enumString(invalidNames[:], uint8(v), "Invalid") }

// Valid reports whether v is a defined Invalid.
func (v Invalid) Valid() bool { return int(v) < len(invalidNames) }

// ListStyle is the marker style of a list item.
type ListStyle uint8

const (
	ListStyleCircle ListStyle = iota
	ListStyleDisc
	ListStyleImage
	ListStyleNumeric
	ListStyleSquare
	ListStyleOther
)

var listStyleNames = [...]string{
	"Circle",
	"Disc",
	"Image",
	"Numeric",
	"Square",
	"Other",
}

func (v ListStyle) String() string { return enumString(listStyleNames[:], uint8(v), "ListStyle") }

// Valid reports whether v is a defined ListStyle.
func (v ListStyle) Valid() bool { return int(v) < len(listStyleNames) }

// Live is the politeness level of a live region.
type Live uint8

const (
	LiveOff Live = iota
	LivePolite
	LiveAssertive
)

var liveNames = [...]string{
	"Off",
	"Polite",
	"Assertive",
}

func (v Live) String() string { return enumString(liveNames[:], uint8(v), "Live") }

// Valid reports whether v is a defined Live.
func (v Live) Valid() bool { return int(v) < len(liveNames) }

// NameFrom records where a node's name was computed from.
type NameFrom uint8

const (
	NameFromAttribute NameFrom = iota
	NameFromAttributeExplicitlyEmpty
	NameFromCaption
	NameFromContents
	NameFromPlaceholder
	NameFromRelatedElement
	NameFromTitle
	NameFromValue
)

var nameFromNames = [...]string{
	"Attribute",
	"AttributeExplicitlyEmpty",
	"Caption",
	"Contents",
	"Placeholder",
	"RelatedElement",
	"Title",
	"Value",
}

func (v NameFrom) String() string { return enumString(nameFromNames[:], uint8(v), "NameFrom") }

// Valid reports whether v is a defined NameFrom.
func (v NameFrom) Valid() bool { return int(v) < len(nameFromNames) }

// Orientation of a scrollbar, slider, toolbar and similar.
type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

var orientationNames = [...]string{
	"Horizontal",
	"Vertical",
}

func (v Orientation) String() string { return enumString(orientationNames[:], uint8(v), "Orientation") }

// Valid reports whether v is a defined Orientation.
func (v Orientation) Valid() bool { return int(v) < len(orientationNames) }

// SortDirection of a sortable table column header.
type SortDirection uint8

const (
	SortDirectionUnsorted SortDirection = iota
	SortDirectionAscending
	SortDirectionDescending
	SortDirectionOther
)

var sortDirectionNames = [...]string{
	"Unsorted",
	"Ascending",
	"Descending",
	"Other",
}

func (v SortDirection) String() string { return enumString(sortDirectionNames[:], uint8(v), "SortDirection") }

// Valid reports whether v is a defined SortDirection.
func (v SortDirection) Valid() bool { return int(v) < len(sortDirectionNames) }

// TextAlign is the horizontal alignment of a text run.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignNames = [...]string{
	"Left",
	"Right",
	"Center",
	"Justify",
}

func (v TextAlign) String() string { return enumString(textAlignNames[:], uint8(v), "TextAlign") }

// Valid reports whether v is a defined TextAlign.
func (v TextAlign) Valid() bool { return int(v) < len(textAlignNames) }

// TextDecoration is the line style of an overline, strikethrough or underline.
type TextDecoration uint8

const (
	TextDecorationSolid TextDecoration = iota
	TextDecorationDotted
	TextDecorationDashed
	TextDecorationDouble
	TextDecorationWavy
)

var textDecorationNames = [...]string{
	"Solid",
	"Dotted",
	"Dashed",
	"Double",
	"Wavy",
}

func (v TextDecoration) String() string { return enumString(textDecorationNames[:], uint8(v), "TextDecoration") }

// Valid reports whether v is a defined TextDecoration.
func (v TextDecoration) Valid() bool { return int(v) < len(textDecorationNames) }

// TextDirection is the writing direction of a text run.
type TextDirection uint8

const (
	TextDirectionLeftToRight TextDirection = iota
	TextDirectionRightToLeft
	TextDirectionTopToBottom
	TextDirectionBottomToTop
)

var textDirectionNames = [...]string{
	"LeftToRight",
	"RightToLeft",
	"TopToBottom",
	"BottomToTop",
}

func (v TextDirection) String() string { return enumString(textDirectionNames[:], uint8(v), "TextDirection") }

// Valid reports whether v is a defined TextDirection.
func (v TextDirection) Valid() bool { return int(v) < len(textDirectionNames) }

// VerticalOffset marks a text run as raised or lowered.
type VerticalOffset uint8

const (
	VerticalOffsetSubscript VerticalOffset = iota
	VerticalOffsetSuperscript
)

var verticalOffsetNames = [...]string{
	"Subscript",
	"Superscript",
}

func (v VerticalOffset) String() string { return enumString(verticalOffsetNames[:], uint8(v), "VerticalOffset") }

// Valid reports whether v is a defined VerticalOffset.
func (v VerticalOffset) Valid() bool { return int(v) < len(verticalOffsetNames) }

package node

import "github.com/joshuapare/axkit/pkg/types"

// Declaration order assigns PropertyIDs, which snapshots and the boundary
// depend on. New entries go at the end of the file.

// Flags.
var (
	AutofillAvailable      = newFlag("is_autofill_available", "set_autofill_available", "clear_autofill_available")
	Default                = newFlag("is_default", "set_default", "clear_default")
	Editable               = newFlag("is_editable", "set_editable", "clear_editable")
	Hovered                = newFlag("is_hovered", "set_hovered", "clear_hovered")
	Hidden                 = newFlag("is_hidden", "set_hidden", "clear_hidden")
	Linked                 = newFlag("is_linked", "set_linked", "clear_linked")
	Multiline              = newFlag("is_multiline", "set_multiline", "clear_multiline")
	Multiselectable        = newFlag("is_multiselectable", "set_multiselectable", "clear_multiselectable")
	Protected              = newFlag("is_protected", "set_protected", "clear_protected")
	Required               = newFlag("is_required", "set_required", "clear_required")
	Visited                = newFlag("is_visited", "set_visited", "clear_visited")
	Busy                   = newFlag("is_busy", "set_busy", "clear_busy")
	LiveAtomic             = newFlag("is_live_atomic", "set_live_atomic", "clear_live_atomic")
	Modal                  = newFlag("is_modal", "set_modal", "clear_modal")
	Scrollable             = newFlag("is_scrollable", "set_scrollable", "clear_scrollable")
	SelectedFromFocus      = newFlag("is_selected_from_focus", "set_selected_from_focus", "clear_selected_from_focus")
	TouchPassThrough       = newFlag("is_touch_pass_through", "set_touch_pass_through", "clear_touch_pass_through")
	ReadOnly               = newFlag("is_read_only", "set_read_only", "clear_read_only")
	Disabled               = newFlag("is_disabled", "set_disabled", "clear_disabled")
	Bold                   = newFlag("is_bold", "set_bold", "clear_bold")
	Italic                 = newFlag("is_italic", "set_italic", "clear_italic")
	CanvasHasFallback      = newFlag("canvas_has_fallback", "set_canvas_has_fallback", "clear_canvas_has_fallback")
	ClipsChildren          = newFlag("clips_children", "set_clips_children", "clear_clips_children")
	LineBreakingObject     = newFlag("is_line_breaking_object", "set_is_line_breaking_object", "clear_is_line_breaking_object")
	PageBreakingObject     = newFlag("is_page_breaking_object", "set_is_page_breaking_object", "clear_is_page_breaking_object")
	SpellingError          = newFlag("is_spelling_error", "set_is_spelling_error", "clear_is_spelling_error")
	GrammarError           = newFlag("is_grammar_error", "set_is_grammar_error", "clear_is_grammar_error")
	SearchMatch            = newFlag("is_search_match", "set_is_search_match", "clear_is_search_match")
	Suggestion             = newFlag("is_suggestion", "set_is_suggestion", "clear_is_suggestion")
	NonatomicTextFieldRoot = newFlag("is_nonatomic_text_field_root", "set_is_nonatomic_text_field_root", "clear_is_nonatomic_text_field_root")
)

// Relations to other nodes, in order.
var (
	Children         = newVec[types.NodeID](ShapeNodeIDVec, "children", "push_child")
	IndirectChildren = newVec[types.NodeID](ShapeNodeIDVec, "indirect_children", "push_indirect_child")
	Controls         = newVec[types.NodeID](ShapeNodeIDVec, "controls", "push_controlled")
	Details          = newVec[types.NodeID](ShapeNodeIDVec, "details", "push_detail")
	DescribedBy      = newVec[types.NodeID](ShapeNodeIDVec, "described_by", "push_described_by")
	FlowTo           = newVec[types.NodeID](ShapeNodeIDVec, "flow_to", "push_flow_to")
	LabelledBy       = newVec[types.NodeID](ShapeNodeIDVec, "labelled_by", "push_labelled_by")
	RadioGroup       = newVec[types.NodeID](ShapeNodeIDVec, "radio_group", "push_to_radio_group")
)

// Single relations. The zero id never appears as a value.
var (
	ActiveDescendant  = newValue[types.NodeID](ShapeNodeID, "active_descendant")
	ErrorMessage      = newValue[types.NodeID](ShapeNodeID, "error_message")
	InPageLinkTarget  = newValue[types.NodeID](ShapeNodeID, "in_page_link_target")
	MemberOf          = newValue[types.NodeID](ShapeNodeID, "member_of")
	NextOnLine        = newValue[types.NodeID](ShapeNodeID, "next_on_line")
	PreviousOnLine    = newValue[types.NodeID](ShapeNodeID, "previous_on_line")
	PopupFor          = newValue[types.NodeID](ShapeNodeID, "popup_for")
	TableHeader       = newValue[types.NodeID](ShapeNodeID, "table_header")
	TableRowHeader    = newValue[types.NodeID](ShapeNodeID, "table_row_header")
	TableColumnHeader = newValue[types.NodeID](ShapeNodeID, "table_column_header")
	NextFocus         = newValue[types.NodeID](ShapeNodeID, "next_focus")
	PreviousFocus     = newValue[types.NodeID](ShapeNodeID, "previous_focus")
)

var (
	Name                    = newValue[string](ShapeString, "name")
	Description             = newValue[string](ShapeString, "description")
	Value                   = newValue[string](ShapeString, "value")
	AccessKey               = newValue[string](ShapeString, "access_key")
	AutoComplete            = newValue[string](ShapeString, "auto_complete")
	CheckedStateDescription = newValue[string](ShapeString, "checked_state_description")
	ClassName               = newValue[string](ShapeString, "class_name")
	CSSDisplay              = newValue[string](ShapeString, "css_display")
	FontFamily              = newValue[string](ShapeString, "font_family")
	HTMLTag                 = newValue[string](ShapeString, "html_tag")
	InnerHTML               = newValue[string](ShapeString, "inner_html")
	InputType               = newValue[string](ShapeString, "input_type")
	KeyShortcuts            = newValue[string](ShapeString, "key_shortcuts")
	Language                = newValue[string](ShapeString, "language")
	LiveRelevant            = newValue[string](ShapeString, "live_relevant")
	Placeholder             = newValue[string](ShapeString, "placeholder")
	AriaRole                = newValue[string](ShapeString, "aria_role")
	RoleDescription         = newValue[string](ShapeString, "role_description")
	Tooltip                 = newValue[string](ShapeString, "tooltip")
	URL                     = newValue[string](ShapeString, "url")
)

var (
	ScrollX          = newValue[float64](ShapeF64, "scroll_x")
	ScrollXMin       = newValue[float64](ShapeF64, "scroll_x_min")
	ScrollXMax       = newValue[float64](ShapeF64, "scroll_x_max")
	ScrollY          = newValue[float64](ShapeF64, "scroll_y")
	ScrollYMin       = newValue[float64](ShapeF64, "scroll_y_min")
	ScrollYMax       = newValue[float64](ShapeF64, "scroll_y_max")
	NumericValue     = newValue[float64](ShapeF64, "numeric_value")
	MinNumericValue  = newValue[float64](ShapeF64, "min_numeric_value")
	MaxNumericValue  = newValue[float64](ShapeF64, "max_numeric_value")
	NumericValueStep = newValue[float64](ShapeF64, "numeric_value_step")
	NumericValueJump = newValue[float64](ShapeF64, "numeric_value_jump")
	FontSize         = newValue[float64](ShapeF64, "font_size")
	FontWeight       = newValue[float64](ShapeF64, "font_weight")
	TextIndent       = newValue[float64](ShapeF64, "text_indent")
)

var (
	TableRowCount        = newValue[uint64](ShapeIndex, "table_row_count")
	TableColumnCount     = newValue[uint64](ShapeIndex, "table_column_count")
	TableRowIndex        = newValue[uint64](ShapeIndex, "table_row_index")
	TableColumnIndex     = newValue[uint64](ShapeIndex, "table_column_index")
	TableCellColumnIndex = newValue[uint64](ShapeIndex, "table_cell_column_index")
	TableCellColumnSpan  = newValue[uint64](ShapeIndex, "table_cell_column_span")
	TableCellRowIndex    = newValue[uint64](ShapeIndex, "table_cell_row_index")
	TableCellRowSpan     = newValue[uint64](ShapeIndex, "table_cell_row_span")
	HierarchicalLevel    = newValue[uint64](ShapeIndex, "hierarchical_level")
	SizeOfSet            = newValue[uint64](ShapeIndex, "size_of_set")
	PositionInSet        = newValue[uint64](ShapeIndex, "position_in_set")
)

var (
	ColorValue      = newValue[types.Color](ShapeColor, "color_value")
	BackgroundColor = newValue[types.Color](ShapeColor, "background_color")
	ForegroundColor = newValue[types.Color](ShapeColor, "foreground_color")
)

var (
	Overline      = newValue[types.TextDecoration](ShapeTextDecoration, "overline")
	Strikethrough = newValue[types.TextDecoration](ShapeTextDecoration, "strikethrough")
	Underline     = newValue[types.TextDecoration](ShapeTextDecoration, "underline")
)

// Per-character data of inline text boxes.
var (
	CharacterLengths   = Slice[uint8]{simple(ShapeLengths, "character_lengths")}
	WordLengths        = Slice[uint8]{simple(ShapeLengths, "word_lengths")}
	CharacterPositions = OptSlice[float32]{simple(ShapeCoords, "character_positions")}
	CharacterWidths    = OptSlice[float32]{simple(ShapeCoords, "character_widths")}
)

// Tri-state booleans: absent means "not applicable".
var (
	Expanded = Property[bool]{register(ShapeBool, "expanded", "is_expanded", "set_expanded", "", "clear_expanded")}
	Selected = Property[bool]{register(ShapeBool, "selected", "is_selected", "set_selected", "", "clear_selected")}
)

var (
	NameFrom          = newEnum[types.NameFrom]("name_from")
	DescriptionFrom   = newEnum[types.DescriptionFrom]("description_from")
	Invalid           = newEnum[types.Invalid]("invalid")
	CheckedState      = newEnum[types.CheckedState]("checked_state")
	Live              = newEnum[types.Live]("live")
	DefaultActionVerb = newEnum[types.DefaultActionVerb]("default_action_verb")
	TextDirection     = newEnum[types.TextDirection]("text_direction")
	Orientation       = newEnum[types.Orientation]("orientation")
	SortDirection     = newEnum[types.SortDirection]("sort_direction")
	AriaCurrent       = newEnum[types.AriaCurrent]("aria_current")
	HasPopup          = newEnum[types.HasPopup]("has_popup")
	ListStyle         = newEnum[types.ListStyle]("list_style")
	TextAlign         = newEnum[types.TextAlign]("text_align")
	VerticalOffset    = newEnum[types.VerticalOffset]("vertical_offset")
)

var (
	Transform     = newValue[types.Affine](ShapeAffine, "transform")
	Bounds        = newValue[types.Rect](ShapeRect, "bounds")
	TextSelection = newValue[types.TextSelection](ShapeTextSelection, "text_selection")
	CustomActions = newVec[types.CustomAction](ShapeCustomActions, "custom_actions", "push_custom_action")
)

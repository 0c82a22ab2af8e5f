package types

// Role is the semantic role of a node. Every node has exactly one.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleInlineTextBox
	RoleCell
	RoleStaticText
	RoleImage
	RoleLink
	RoleRow
	RoleListItem
	RoleListMarker
	RoleTreeItem
	RoleListBoxOption
	RoleMenuItem
	RoleMenuListOption
	RoleParagraph
	RoleGenericContainer
	RolePresentation
	RoleCheckBox
	RoleRadioButton
	RoleTextField
	RoleButton
	RoleLabelText
	RolePane
	RoleRowHeader
	RoleColumnHeader
	RoleColumn
	RoleRowGroup
	RoleList
	RoleTable
	RoleTableHeaderContainer
	RoleLayoutTableCell
	RoleLayoutTableRow
	RoleLayoutTable
	RoleSwitch
	RoleToggleButton
	RoleMenu
	RoleAbbr
	RoleAlert
	RoleAlertDialog
	RoleApplication
	RoleArticle
	RoleAudio
	RoleBanner
	RoleBlockquote
	RoleCanvas
	RoleCaption
	RoleCaret
	RoleClient
	RoleCode
	RoleColorWell
	RoleComboBoxGrouping
	RoleComboBoxMenuButton
	RoleComplementary
	RoleComment
	RoleContentDeletion
	RoleContentInsertion
	RoleContentInfo
	RoleDate
	RoleDateTime
	RoleDefinition
	RoleDescriptionList
	RoleDescriptionListDetail
	RoleDescriptionListTerm
	RoleDetails
	RoleDialog
	RoleDirectory
	RoleDisclosureTriangle
	RoleDocument
	RoleEmbeddedObject
	RoleEmphasis
	RoleFeed
	RoleFigureCaption
	RoleFigure
	RoleFooter
	RoleFooterAsNonLandmark
	RoleForm
	RoleGrid
	RoleGroup
	RoleHeader
	RoleHeaderAsNonLandmark
	RoleHeading
	RoleIframe
	RoleIframePresentational
	RoleImeCandidate
	RoleInputTime
	RoleKeyboard
	RoleLegend
	RoleLineBreak
	RoleListBox
	RoleLog
	RoleMain
	RoleMark
	RoleMarquee
	RoleMath
	RoleMenuBar
	RoleMenuItemCheckBox
	RoleMenuItemRadio
	RoleMenuListPopup
	RoleMeter
	RoleNavigation
	RoleNote
	RolePluginObject
	RolePopupButton
	RolePortal
	RolePre
	RoleProgressIndicator
	RoleRadioGroup
	RoleRegion
	RoleRootWebArea
	RoleRuby
	RoleRubyAnnotation
	RoleScrollBar
	RoleScrollView
	RoleSearch
	RoleSearchBox
	RoleSection
	RoleSlider
	RoleSpinButton
	RoleSplitter
	RoleStatus
	RoleStrong
	RoleSuggestion
	RoleSvgRoot
	RoleTab
	RoleTabList
	RoleTabPanel
	RoleTerm
	RoleTextFieldWithComboBox
	RoleTime
	RoleTimer
	RoleTitleBar
	RoleToolbar
	RoleTooltip
	RoleTree
	RoleTreeGrid
	RoleVideo
	RoleWebView
	RoleWindow
	RolePdfActionableHighlight
	RolePdfRoot
	RoleGraphicsDocument
	RoleGraphicsObject
	RoleGraphicsSymbol
	RoleDocAbstract
	RoleDocAcknowledgements
	RoleDocAfterword
	RoleDocAppendix
	RoleDocBackLink
	RoleDocBiblioEntry
	RoleDocBibliography
	RoleDocBiblioRef
	RoleDocChapter
	RoleDocColophon
	RoleDocConclusion
	RoleDocCover
	RoleDocCredit
	RoleDocCredits
	RoleDocDedication
	RoleDocEndnote
	RoleDocEndnotes
	RoleDocEpigraph
	RoleDocEpilogue
	RoleDocErrata
	RoleDocExample
	RoleDocFootnote
	RoleDocForeword
	RoleDocGlossary
	RoleDocGlossRef
	RoleDocIndex
	RoleDocIntroduction
	RoleDocNoteRef
	RoleDocNotice
	RoleDocPageBreak
	RoleDocPageFooter
	RoleDocPageHeader
	RoleDocPageList
	RoleDocPart
	RoleDocPreface
	RoleDocPrologue
	RoleDocPullquote
	RoleDocQna
	RoleDocSubtitle
	RoleDocTip
	RoleDocToc
	RoleListGrid
)

var roleNames = [...]string{
	"Unknown",
	"InlineTextBox",
	"Cell",
	"StaticText",
	"Image",
	"Link",
	"Row",
	"ListItem",
	"ListMarker",
	"TreeItem",
	"ListBoxOption",
	"MenuItem",
	"MenuListOption",
	"Paragraph",
	"GenericContainer",
	"Presentation",
	"CheckBox",
	"RadioButton",
	"TextField",
	"Button",
	"LabelText",
	"Pane",
	"RowHeader",
	"ColumnHeader",
	"Column",
	"RowGroup",
	"List",
	"Table",
	"TableHeaderContainer",
	"LayoutTableCell",
	"LayoutTableRow",
	"LayoutTable",
	"Switch",
	"ToggleButton",
	"Menu",
	"Abbr",
	"Alert",
	"AlertDialog",
	"Application",
	"Article",
	"Audio",
	"Banner",
	"Blockquote",
	"Canvas",
	"Caption",
	"Caret",
	"Client",
	"Code",
	"ColorWell",
	"ComboBoxGrouping",
	"ComboBoxMenuButton",
	"Complementary",
	"Comment",
	"ContentDeletion",
	"ContentInsertion",
	"ContentInfo",
	"Date",
	"DateTime",
	"Definition",
	"DescriptionList",
	"DescriptionListDetail",
	"DescriptionListTerm",
	"Details",
	"Dialog",
	"Directory",
	"DisclosureTriangle",
	"Document",
	"EmbeddedObject",
	"Emphasis",
	"Feed",
	"FigureCaption",
	"Figure",
	"Footer",
	"FooterAsNonLandmark",
	"Form",
	"Grid",
	"Group",
	"Header",
	"HeaderAsNonLandmark",
	"Heading",
	"Iframe",
	"IframePresentational",
	"ImeCandidate",
	"InputTime",
	"Keyboard",
	"Legend",
	"LineBreak",
	"ListBox",
	"Log",
	"Main",
	"Mark",
	"Marquee",
	"Math",
	"MenuBar",
	"MenuItemCheckBox",
	"MenuItemRadio",
	"MenuListPopup",
	"Meter",
	"Navigation",
	"Note",
	"PluginObject",
	"PopupButton",
	"Portal",
	"Pre",
	"ProgressIndicator",
	"RadioGroup",
	"Region",
	"RootWebArea",
	"Ruby",
	"RubyAnnotation",
	"ScrollBar",
	"ScrollView",
	"Search",
	"SearchBox",
	"Section",
	"Slider",
	"SpinButton",
	"Splitter",
	"Status",
	"Strong",
	"Suggestion",
	"SvgRoot",
	"Tab",
	"TabList",
	"TabPanel",
	"Term",
	"TextFieldWithComboBox",
	"Time",
	"Timer",
	"TitleBar",
	"Toolbar",
	"Tooltip",
	"Tree",
	"TreeGrid",
	"Video",
	"WebView",
	"Window",
	"PdfActionableHighlight",
	"PdfRoot",
	"GraphicsDocument",
	"GraphicsObject",
	"GraphicsSymbol",
	"DocAbstract",
	"DocAcknowledgements",
	"DocAfterword",
	"DocAppendix",
	"DocBackLink",
	"DocBiblioEntry",
	"DocBibliography",
	"DocBiblioRef",
	"DocChapter",
	"DocColophon",
	"DocConclusion",
	"DocCover",
	"DocCredit",
	"DocCredits",
	"DocDedication",
	"DocEndnote",
	"DocEndnotes",
	"DocEpigraph",
	"DocEpilogue",
	"DocErrata",
	"DocExample",
	"DocFootnote",
	"DocForeword",
	"DocGlossary",
	"DocGlossRef",
	"DocIndex",
	"DocIntroduction",
	"DocNoteRef",
	"DocNotice",
	"DocPageBreak",
	"DocPageFooter",
	"DocPageHeader",
	"DocPageList",
	"DocPart",
	"DocPreface",
	"DocPrologue",
	"DocPullquote",
	"DocQna",
	"DocSubtitle",
	"DocTip",
	"DocToc",
	"ListGrid",
}

func (v Role) String() string { return enumString(roleNames[:], uint8(v), "Role") }

// Valid reports whether v is a defined Role.
func (v Role) Valid() bool { return int(v) < len(roleNames) }

package types

import "strings"

// Action is a request an assistive technology can make of a node. Nodes advertise
// the actions they support through a bitset, so there are at most 32.
type Action uint8

const (
	ActionDefault Action = iota
	ActionFocus
	ActionBlur
	ActionCollapse
	ActionExpand
	ActionCustomAction
	ActionDecrement
	ActionIncrement
	ActionHideTooltip
	ActionShowTooltip
	ActionInvalidateTree
	ActionLoadInlineTextBoxes
	ActionReplaceSelectedText
	ActionScrollBackward
	ActionScrollDown
	ActionScrollForward
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollIntoView
	ActionScrollToPoint
	ActionSetScrollOffset
	ActionSetTextSelection
	ActionSetSequentialFocusNavigationStartingPoint
	ActionSetValue
	ActionShowContextMenu
)

var actionNames = [...]string{
	"Default",
	"Focus",
	"Blur",
	"Collapse",
	"Expand",
	"CustomAction",
	"Decrement",
	"Increment",
	"HideTooltip",
	"ShowTooltip",
	"InvalidateTree",
	"LoadInlineTextBoxes",
	"ReplaceSelectedText",
	"ScrollBackward",
	"ScrollDown",
	"ScrollForward",
	"ScrollLeft",
	"ScrollRight",
	"ScrollUp",
	"ScrollIntoView",
	"ScrollToPoint",
	"SetScrollOffset",
	"SetTextSelection",
	"SetSequentialFocusNavigationStartingPoint",
	"SetValue",
	"ShowContextMenu",
}

func (v Action) String() string { return enumString(actionNames[:], uint8(v), "Action") }

// Valid reports whether v is a defined Action.
func (v Action) Valid() bool { return int(v) < len(actionNames) }

// ParseAction looks an action up by name.
func ParseAction(s string) (Action, error) { return ParseEnum[Action](s) }

// ParseRole looks a role up by name.
func ParseRole(s string) (Role, error) { return ParseEnum[Role](s) }

// ActionSet is the bitset of actions a node supports, bit n set for Action n.
type ActionSet uint32

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool { return a.Valid() && s&(1<<a) != 0 }

// With returns the set with a added. Undefined actions are ignored.
func (s ActionSet) With(a Action) ActionSet {
	if !a.Valid() {
		return s
	}
	return s | 1<<a
}

// Without returns the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	if !a.Valid() {
		return s
	}
	return s &^ (1 << a)
}

// Actions lists the members of the set in ascending order.
func (s ActionSet) Actions() []Action {
	var out []Action
	for a := Action(0); a.Valid(); a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s ActionSet) String() string {
	acts := s.Actions()
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Package action carries requests from assistive technology back to the
// application: a Request names an action, its target node and optional
// Data, and a Handler receives each request exactly once.
package action

import (
	"fmt"

	"github.com/joshuapare/axkit/pkg/types"
)

// DataKind tags the variant of a Data value. The numbering matches the
// wire tag of action_data.
type DataKind uint32

const (
	KindCustomAction DataKind = iota
	KindValue
	KindNumericValue
	KindScrollTargetRect
	KindScrollToPoint
	KindSetScrollOffset
	KindSetTextSelection
)

var kindNames = [...]string{
	"custom_action", "value", "numeric_value", "scroll_target_rect",
	"scroll_to_point", "set_scroll_offset", "set_text_selection",
}

func (k DataKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("DataKind(%d)", uint32(k))
}

// Valid reports whether k names a defined variant.
func (k DataKind) Valid() bool { return int(k) < len(kindNames) }

// Data is the payload of a request. The set of implementations is closed.
type Data interface {
	Kind() DataKind
	isData()
}

// CustomAction invokes the custom action with the given id.
type CustomAction int32

// Value replaces the value of a text field or similar.
type Value string

// NumericValue sets the value of a slider, spin button or similar.
type NumericValue float64

// ScrollTargetRect scrolls the given rectangle, in the target's coordinate
// space, into view.
type ScrollTargetRect types.Rect

// ScrollToPoint scrolls the target so its origin lands at the given point
// in the coordinate space of the parent.
type ScrollToPoint types.Point

// SetScrollOffset sets the scroll position of the target.
type SetScrollOffset types.Point

// SetTextSelection selects text, possibly across nodes.
type SetTextSelection types.TextSelection

func (CustomAction) Kind() DataKind     { return KindCustomAction }
func (Value) Kind() DataKind            { return KindValue }
func (NumericValue) Kind() DataKind     { return KindNumericValue }
func (ScrollTargetRect) Kind() DataKind { return KindScrollTargetRect }
func (ScrollToPoint) Kind() DataKind    { return KindScrollToPoint }
func (SetScrollOffset) Kind() DataKind  { return KindSetScrollOffset }
func (SetTextSelection) Kind() DataKind { return KindSetTextSelection }

func (CustomAction) isData()     {}
func (Value) isData()            {}
func (NumericValue) isData()     {}
func (ScrollTargetRect) isData() {}
func (ScrollToPoint) isData()    {}
func (SetScrollOffset) isData()  {}
func (SetTextSelection) isData() {}

// Request is one action requested by assistive technology.
type Request struct {
	Action types.Action
	Target types.NodeID
	Data   Data // nil when the action carries no data
}

// Validate checks that the request names a defined action and a target.
func (r Request) Validate() error {
	if !r.Action.Valid() {
		return types.Errorf(types.ErrKindInvalid, "action request", "undefined action %d", uint8(r.Action))
	}
	if r.Target.IsZero() {
		return types.ErrZeroNodeID
	}
	return nil
}

func (r Request) String() string {
	if r.Data == nil {
		return fmt.Sprintf("%s -> %s", r.Action, r.Target)
	}
	return fmt.Sprintf("%s -> %s (%s: %v)", r.Action, r.Target, r.Data.Kind(), r.Data)
}

// Handler receives action requests. Do is called synchronously on the
// adapter's thread, once per request; it must not retain r.Data beyond
// the call when Data refers to caller-owned memory.
type Handler interface {
	Do(r Request)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Request)

// Do calls f(r).
func (f HandlerFunc) Do(r Request) { f(r) }

// Recorder is a Handler that keeps every request it receives. It is meant
// for tests and the inspector.
type Recorder struct {
	Requests []Request
}

// Do appends r.
func (rec *Recorder) Do(r Request) { rec.Requests = append(rec.Requests, r) }

// Last returns the most recent request.
func (rec *Recorder) Last() (Request, bool) {
	if len(rec.Requests) == 0 {
		return Request{}, false
	}
	return rec.Requests[len(rec.Requests)-1], true
}

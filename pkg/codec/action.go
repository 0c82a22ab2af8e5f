package codec

import (
	"fmt"

	"github.com/joshuapare/axkit/internal/buf"
	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/types"
)

// ActionData mirrors the action_data tagged union. Only the field selected
// by Tag is encoded; Point serves both scroll_to_point and
// set_scroll_offset.
type ActionData struct {
	Tag           action.DataKind
	CustomAction  int32
	Value         Ptr
	NumericValue  float64
	Rect          types.Rect
	Point         types.Point
	TextSelection types.TextSelection
}

const actionDataUnionOff = 8

// ActionDataLayout is action_data: uint32 tag at 0, 48-byte union at 8.
var ActionDataLayout = Layout[ActionData]{
	Name: "action_data", Size: 56, Align: 8,
	put: func(b []byte, v ActionData) {
		buf.PutU32LE(b, uint32(v.Tag))
		u := b[actionDataUnionOff:]
		switch v.Tag {
		case action.KindCustomAction:
			buf.PutI32LE(u, v.CustomAction)
		case action.KindValue:
			buf.PutU64LE(u, uint64(v.Value))
		case action.KindNumericValue:
			buf.PutF64LE(u, v.NumericValue)
		case action.KindScrollTargetRect:
			RectLayout.put(u[:RectLayout.Size], v.Rect)
		case action.KindScrollToPoint, action.KindSetScrollOffset:
			PointLayout.put(u[:PointLayout.Size], v.Point)
		case action.KindSetTextSelection:
			TextSelectionLayout.put(u[:TextSelectionLayout.Size], v.TextSelection)
		}
	},
	get: func(b []byte) (ActionData, error) {
		v := ActionData{Tag: action.DataKind(buf.U32LE(b))}
		u := b[actionDataUnionOff:]
		switch v.Tag {
		case action.KindCustomAction:
			v.CustomAction = buf.I32LE(u)
		case action.KindValue:
			v.Value = Ptr(buf.U64LE(u))
		case action.KindNumericValue:
			v.NumericValue = buf.F64LE(u)
		case action.KindScrollTargetRect:
			v.Rect, _ = RectLayout.get(u[:RectLayout.Size])
		case action.KindScrollToPoint, action.KindSetScrollOffset:
			v.Point, _ = PointLayout.get(u[:PointLayout.Size])
		case action.KindSetTextSelection:
			v.TextSelection, _ = TextSelectionLayout.get(u[:TextSelectionLayout.Size])
		default:
			return ActionData{}, fmt.Errorf("tag %d: %w", uint32(v.Tag), ErrBadTag)
		}
		return v, nil
	},
}

// OptActionDataLayout is opt_action_data (64 bytes).
var OptActionDataLayout = Optional("opt_action_data", ActionDataLayout)

// ActionRequest mirrors action_request.
type ActionRequest struct {
	Action types.Action
	Target types.NodeID
	Data   Opt[ActionData]
}

const (
	actionRequestTargetOff = 1
	actionRequestDataOff   = 24
)

// ActionRequestLayout is action_request: uint8 action at 0, node_id target
// at 1, opt_action_data at 24 (88 bytes).
var ActionRequestLayout = Layout[ActionRequest]{
	Name: "action_request", Size: 88, Align: 8,
	put: func(b []byte, v ActionRequest) {
		b[0] = uint8(v.Action)
		NodeIDLayout.put(field(b, actionRequestTargetOff, 16), v.Target)
		OptActionDataLayout.put(field(b, actionRequestDataOff, OptActionDataLayout.Size), v.Data)
	},
	get: func(b []byte) (ActionRequest, error) {
		a, err := ActionLayout.get(b[:1])
		if err != nil {
			return ActionRequest{}, err
		}
		target, _ := NodeIDLayout.get(field(b, actionRequestTargetOff, 16))
		data, err := OptActionDataLayout.get(field(b, actionRequestDataOff, OptActionDataLayout.Size))
		if err != nil {
			return ActionRequest{}, err
		}
		return ActionRequest{Action: a, Target: target, Data: data}, nil
	},
}

// FromData converts d to its mirror. Strings are turned into handles by
// str, which takes ownership decisions on behalf of the caller.
func FromData(d action.Data, str func(string) Ptr) Opt[ActionData] {
	if d == nil {
		return None[ActionData]()
	}
	v := ActionData{Tag: d.Kind()}
	switch t := d.(type) {
	case action.CustomAction:
		v.CustomAction = int32(t)
	case action.Value:
		v.Value = str(string(t))
	case action.NumericValue:
		v.NumericValue = float64(t)
	case action.ScrollTargetRect:
		v.Rect = types.Rect(t)
	case action.ScrollToPoint:
		v.Point = types.Point(t)
	case action.SetScrollOffset:
		v.Point = types.Point(t)
	case action.SetTextSelection:
		v.TextSelection = types.TextSelection(t)
	}
	return Some(v)
}

// Data converts the mirror back. str resolves the handle of a Value
// string; an unresolvable handle fails with types.ErrMalformedString.
func (a ActionData) Data(str func(Ptr) (string, bool)) (action.Data, error) {
	switch a.Tag {
	case action.KindCustomAction:
		return action.CustomAction(a.CustomAction), nil
	case action.KindValue:
		s, ok := str(a.Value)
		if !ok {
			return nil, fmt.Errorf("action_data value: %w", types.ErrMalformedString)
		}
		return action.Value(s), nil
	case action.KindNumericValue:
		return action.NumericValue(a.NumericValue), nil
	case action.KindScrollTargetRect:
		return action.ScrollTargetRect(a.Rect), nil
	case action.KindScrollToPoint:
		return action.ScrollToPoint(a.Point), nil
	case action.KindSetScrollOffset:
		return action.SetScrollOffset(a.Point), nil
	case action.KindSetTextSelection:
		return action.SetTextSelection(a.TextSelection), nil
	default:
		return nil, fmt.Errorf("tag %d: %w", uint32(a.Tag), ErrBadTag)
	}
}

// FromRequest converts r to its mirror.
func FromRequest(r action.Request, str func(string) Ptr) ActionRequest {
	return ActionRequest{Action: r.Action, Target: r.Target, Data: FromData(r.Data, str)}
}

// Request converts the mirror back.
func (r ActionRequest) Request(str func(Ptr) (string, bool)) (action.Request, error) {
	out := action.Request{Action: r.Action, Target: r.Target}
	if !r.Data.HasValue {
		return out, nil
	}
	d, err := r.Data.Value.Data(str)
	if err != nil {
		return action.Request{}, err
	}
	out.Data = d
	return out, nil
}

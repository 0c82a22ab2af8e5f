package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/pkg/types"
)

func TestDataKinds(t *testing.T) {
	tests := []struct {
		data Data
		kind DataKind
		name string
	}{
		{CustomAction(7), KindCustomAction, "custom_action"},
		{Value("hello"), KindValue, "value"},
		{NumericValue(1.5), KindNumericValue, "numeric_value"},
		{ScrollTargetRect(types.Rect{X1: 1, Y1: 1}), KindScrollTargetRect, "scroll_target_rect"},
		{ScrollToPoint(types.Point{X: 3}), KindScrollToPoint, "scroll_to_point"},
		{SetScrollOffset(types.Point{Y: 4}), KindSetScrollOffset, "set_scroll_offset"},
		{SetTextSelection{}, KindSetTextSelection, "set_text_selection"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.data.Kind())
			assert.Equal(t, DataKind(i), tt.kind)
			assert.Equal(t, tt.name, tt.kind.String())
			assert.True(t, tt.kind.Valid())
		})
	}
	assert.False(t, DataKind(7).Valid())
	assert.Equal(t, "DataKind(9)", DataKind(9).String())
}

func TestRequest_Validate(t *testing.T) {
	r := Request{Action: types.ActionFocus, Target: types.NewNodeID(2)}
	require.NoError(t, r.Validate())

	r.Target = types.NodeID{}
	assert.ErrorIs(t, r.Validate(), types.ErrZeroNodeID)

	r = Request{Action: types.Action(250), Target: types.NewNodeID(2)}
	assert.Error(t, r.Validate())
}

func TestHandlerFunc(t *testing.T) {
	var got []Request
	var h Handler = HandlerFunc(func(r Request) { got = append(got, r) })
	h.Do(Request{Action: types.ActionDefault, Target: types.NewNodeID(1)})
	h.Do(Request{Action: types.ActionFocus, Target: types.NewNodeID(2), Data: Value("x")})
	require.Len(t, got, 2)
	assert.Equal(t, Value("x"), got[1].Data)
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	_, ok := rec.Last()
	assert.False(t, ok)

	sel := SetTextSelection{
		Anchor: types.TextPosition{Node: types.NewNodeID(4), CharacterIndex: 2},
		Focus:  types.TextPosition{Node: types.NewNodeID(5), CharacterIndex: 9},
	}
	rec.Do(Request{Action: types.ActionSetTextSelection, Target: types.NewNodeID(3), Data: sel})
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, sel, last.Data)
	assert.Contains(t, last.String(), "set_text_selection")
}

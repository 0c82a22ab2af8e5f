package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumCounts(t *testing.T) {
	assert.Equal(t, 184, EnumCount[Role]())
	assert.Equal(t, 26, EnumCount[Action]())
	assert.Equal(t, 7, EnumCount[AriaCurrent]())
	assert.Equal(t, 3, EnumCount[CheckedState]())
	assert.Equal(t, 9, EnumCount[DefaultActionVerb]())
	assert.Equal(t, 7, EnumCount[DescriptionFrom]())
	assert.Equal(t, 6, EnumCount[HasPopup]())
	assert.Equal(t, 3, EnumCount[Invalid]())
	assert.Equal(t, 6, EnumCount[ListStyle]())
	assert.Equal(t, 3, EnumCount[Live]())
	assert.Equal(t, 8, EnumCount[NameFrom]())
	assert.Equal(t, 2, EnumCount[Orientation]())
	assert.Equal(t, 4, EnumCount[SortDirection]())
	assert.Equal(t, 4, EnumCount[TextAlign]())
	assert.Equal(t, 5, EnumCount[TextDecoration]())
	assert.Equal(t, 4, EnumCount[TextDirection]())
	assert.Equal(t, 2, EnumCount[VerticalOffset]())
}

func TestEnumWireOrder(t *testing.T) {
	assert.Equal(t, Role(0), RoleUnknown)
	assert.Equal(t, Role(19), RoleButton)
	assert.Equal(t, Role(183), RoleListGrid)
	assert.Equal(t, Action(0), ActionDefault)
	assert.Equal(t, Action(22), ActionSetTextSelection)
	assert.Equal(t, Action(25), ActionShowContextMenu)
	assert.Equal(t, DefaultActionVerb(0), DefaultActionVerbClick)
}

func TestParseEnum(t *testing.T) {
	for _, in := range []string{"CheckBox", "check_box", "check-box", "CHECKBOX", "check box"} {
		r, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, RoleCheckBox, r)
	}

	a, err := ParseAction("set_text_selection")
	require.NoError(t, err)
	assert.Equal(t, ActionSetTextSelection, a)

	live, err := ParseEnum[Live]("polite")
	require.NoError(t, err)
	assert.Equal(t, LivePolite, live)

	_, err = ParseRole("not-a-role")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnumNamesRoundTrip(t *testing.T) {
	for i, name := range EnumNames[Role]() {
		r, err := ParseRole(name)
		require.NoError(t, err, name)
		assert.Equal(t, Role(i), r)
	}
	for i, name := range EnumNames[HasPopup]() {
		v, err := ParseEnum[HasPopup](name)
		require.NoError(t, err, name)
		assert.Equal(t, HasPopup(i), v)
	}
}

func TestEnumString_OutOfRange(t *testing.T) {
	assert.Equal(t, "Button", RoleButton.String())
	assert.Equal(t, "Role(200)", Role(200).String())
	assert.False(t, Role(184).Valid())
	assert.True(t, Role(183).Valid())
	assert.Equal(t, "Live(3)", Live(3).String())
	assert.False(t, Orientation(255).Valid())
}

func TestActionSet(t *testing.T) {
	var s ActionSet
	s = s.With(ActionFocus).With(ActionDefault).With(ActionShowContextMenu)
	assert.True(t, s.Has(ActionFocus))
	assert.True(t, s.Has(ActionShowContextMenu))
	assert.False(t, s.Has(ActionBlur))
	assert.Equal(t, []Action{ActionDefault, ActionFocus, ActionShowContextMenu}, s.Actions())
	assert.Equal(t, "{Default,Focus,ShowContextMenu}", s.String())

	s = s.Without(ActionFocus)
	assert.False(t, s.Has(ActionFocus))

	assert.Equal(t, s, s.With(Action(40)), "undefined actions are ignored")
	assert.False(t, ActionSet(0xFFFFFFFF).Has(Action(31)))
}

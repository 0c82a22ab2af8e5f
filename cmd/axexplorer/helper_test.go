package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// TestHelper provides utilities for testing the TUI model
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model over u
func NewTestHelper(u tree.Update) *TestHelper {
	return &TestHelper{model: NewModel("test.axt", u)}
}

// SendKey simulates a key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
	return h
}

// CurrentID returns the id under the cursor
func (h *TestHelper) CurrentID() types.NodeID {
	r, _ := h.model.current()
	return r.ID
}

func nid(v uint64) types.NodeID { return types.NewNodeID(v) }

func build(role types.Role, name string, children []types.NodeID, actions ...types.Action) *node.Node {
	b := node.NewBuilder(role)
	if name != "" {
		node.Name.Set(b, name)
	}
	if children != nil {
		node.Children.Set(b, children)
	}
	for _, a := range actions {
		b.AddAction(a)
	}
	return b.Build(nil)
}

// sampleUpdate is a window holding a button and a group with a label,
// plus one node the root cannot reach. The label has focus.
func sampleUpdate() tree.Update {
	u := tree.Update{Focus: nid(4)}
	u.SetTree(tree.New(nid(1)))
	u.Push(nid(1), build(types.RoleWindow, "Main", []types.NodeID{nid(2), nid(3)}))
	u.Push(nid(2), build(types.RoleButton, "OK", nil, types.ActionFocus, types.ActionDefault))
	u.Push(nid(3), build(types.RoleGroup, "", []types.NodeID{nid(4)}))
	u.Push(nid(4), build(types.RoleLabelText, "Status", nil, types.ActionFocus))
	u.Push(nid(5), build(types.RoleLabelText, "Stray", nil))
	return u
}

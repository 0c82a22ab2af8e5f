package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/axkit/internal/server"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// detailModel shows one node as its JSON document in a modal.
type detailModel struct {
	id       types.NodeID
	viewport viewport.Model
	width    int
	height   int
	visible  bool
}

func newDetailModel() detailModel {
	return detailModel{viewport: viewport.New(0, 0)}
}

// Init implements tea.Model
func (m *detailModel) Init() tea.Cmd { return nil }

// Show displays details for a node
func (m *detailModel) Show(id types.NodeID, n *node.Node) {
	m.id = id
	m.visible = true
	m.viewport.SetContent(nodeDocument(id, n))
	m.viewport.GotoTop()
}

// Hide closes the detail view
func (m *detailModel) Hide() { m.visible = false }

// IsVisible returns whether the detail view is currently shown
func (m *detailModel) IsVisible() bool { return m.visible }

// Update handles messages
func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		// Modal takes 80% of the screen; border and padding take 6 columns
		// and 4 lines.
		m.viewport.Width = max(int(float64(m.width)*0.8)-6, 10)
		m.viewport.Height = max(int(float64(m.height)*0.8)-6, 3)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *detailModel) View() string {
	title := modalTitleStyle.Render(fmt.Sprintf("Node %s", m.id))
	footer := statusStyle.Render(fmt.Sprintf("%3.f%%  esc to close", m.viewport.ScrollPercent()*100))
	return modalStyle.Render(title + "\n\n" + m.viewport.View() + "\n" + footer)
}

// nodeDocument renders n the way the inspector serves it.
func nodeDocument(id types.NodeID, n *node.Node) string {
	b, err := json.MarshalIndent(server.EncodeNode(id, n), "", "  ")
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return strings.TrimSpace(string(b))
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/internal/server"
	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter/memory"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Pane represents which pane is focused
type Pane int

const (
	TreePane Pane = iota
	PropsPane
)

// Layout constants
const (
	headerHeight = 2
	statusHeight = 2
	paneChrome   = 2 // top and bottom border
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// Model is the main application model
type Model struct {
	path    string
	outline *outline
	rows    []row
	cursor  int
	offset  int

	props  viewport.Model
	detail detailModel
	help   help.Model
	keys   KeyMap

	// adapter plays the application; requests records what reached it.
	adapter  *memory.Adapter
	requests *action.Recorder

	focusedPane Pane
	width       int
	height      int
	showHelp    bool

	// Status message for temporary feedback
	statusMessage string
	statusErr     bool

	err error
}

// NewModel creates the explorer for an update read from path.
func NewModel(path string, u tree.Update) Model {
	m := Model{
		path:     path,
		outline:  newOutline(u),
		props:    viewport.New(0, 0),
		detail:   newDetailModel(),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		requests: &action.Recorder{},
	}
	m.rows = m.outline.rows()

	a, err := startAdapter(u, m.requests)
	if err != nil {
		logger.Warn("actions disabled", "error", err)
		m.setStatus(fmt.Sprintf("Actions disabled: %v", err), true)
	}
	m.adapter = a
	m.refreshProps()
	return m
}

// startAdapter activates an in-memory adapter over u so action requests
// are checked the way a platform adapter checks them.
func startAdapter(u tree.Update, h action.Handler) (*memory.Adapter, error) {
	a, err := memory.New(func() tree.Update { return u }, h, memory.WithLogger(logger.L))
	if err != nil {
		return nil, err
	}
	q, err := a.Activate()
	if err != nil {
		return nil, err
	}
	q.Raise()
	return a, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd { return nil }

// Close releases resources held by the model.
func (m Model) Close() error { return nil }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.detail.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Esc, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}
	if m.detail.IsVisible() {
		if key.Matches(msg, m.keys.Esc, m.keys.Detail, m.keys.Quit) {
			m.detail.Hide()
			return m, nil
		}
		_, cmd := m.detail.Update(msg)
		return m, cmd
	}

	m.statusMessage = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == TreePane {
			m.focusedPane = PropsPane
		} else {
			m.focusedPane = TreePane
		}
	case m.focusedPane == PropsPane && !key.Matches(msg, m.keys.Detail, m.keys.Copy, m.keys.CopyJSON, m.keys.Default, m.keys.Focus):
		var cmd tea.Cmd
		m.props, cmd = m.props.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveTo(m.cursor - m.treeHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveTo(m.cursor + m.treeHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)
	case key.Matches(msg, m.keys.End):
		m.moveTo(len(m.rows) - 1)
	case key.Matches(msg, m.keys.Enter):
		if r, ok := m.current(); ok {
			m.outline.toggle(r.ID)
			m.rebuild(r.ID)
		}
	case key.Matches(msg, m.keys.Right):
		if r, ok := m.current(); ok && r.HasKids && !r.Expanded {
			m.outline.toggle(r.ID)
			m.rebuild(r.ID)
		}
	case key.Matches(msg, m.keys.Left):
		m.collapseOrParent()
	case key.Matches(msg, m.keys.GoToParent):
		if r, ok := m.current(); ok {
			if p, ok := m.outline.parent[r.ID]; ok {
				m.selectID(p)
			}
		}
	case key.Matches(msg, m.keys.GoToFocus):
		if m.outline.focus.IsZero() {
			m.setStatus("No focused node", true)
		} else {
			m.outline.reveal(m.outline.focus)
			m.rebuild(m.outline.focus)
		}
	case key.Matches(msg, m.keys.ExpandAll):
		r, _ := m.current()
		m.outline.expandAll()
		m.rebuild(r.ID)
	case key.Matches(msg, m.keys.CollapseAll):
		m.outline.collapseAll()
		m.rebuild(m.outline.root)
	case key.Matches(msg, m.keys.Detail):
		if r, ok := m.current(); ok {
			m.detail.Show(r.ID, m.outline.nodes[r.ID])
		}
	case key.Matches(msg, m.keys.Copy):
		if r, ok := m.current(); ok {
			m.copy(r.ID.String(), "node id "+r.ID.String())
		}
	case key.Matches(msg, m.keys.CopyJSON):
		if r, ok := m.current(); ok {
			b, err := json.Marshal(server.EncodeNode(r.ID, m.outline.nodes[r.ID]))
			if err != nil {
				m.setStatus(err.Error(), true)
				break
			}
			m.copy(string(b), "node "+r.ID.String()+" as JSON")
		}
	case key.Matches(msg, m.keys.Default):
		m.request(types.ActionDefault)
	case key.Matches(msg, m.keys.Focus):
		m.request(types.ActionFocus)
	}
	return m, nil
}

func (m *Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) moveTo(i int) {
	m.cursor = min(max(i, 0), max(len(m.rows)-1, 0))
	m.ensureVisible()
	m.refreshProps()
}

// rebuild reflattens the outline and keeps id selected if it is visible.
func (m *Model) rebuild(id types.NodeID) {
	m.rows = m.outline.rows()
	m.selectID(id)
}

func (m *Model) selectID(id types.NodeID) {
	for i, r := range m.rows {
		if r.ID == id {
			m.moveTo(i)
			return
		}
	}
	m.moveTo(m.cursor)
}

func (m *Model) collapseOrParent() {
	r, ok := m.current()
	if !ok {
		return
	}
	if r.Expanded && r.HasKids {
		m.outline.toggle(r.ID)
		m.rebuild(r.ID)
		return
	}
	if p, ok := m.outline.parent[r.ID]; ok {
		m.selectID(p)
	}
}

func (m *Model) ensureVisible() {
	h := m.treeHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *Model) request(a types.Action) {
	r, ok := m.current()
	if !ok {
		return
	}
	if m.adapter == nil {
		m.setStatus("Actions disabled: the update has no tree", true)
		return
	}
	req := action.Request{Action: a, Target: r.ID}
	if err := m.adapter.Do(context.Background(), req); err != nil {
		m.setStatus(fmt.Sprintf("%s rejected: %v", req, err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Requested %s (%d so far)", req, len(m.requests.Requests)), false)
}

func (m *Model) copy(text, what string) {
	if err := writeClipboard(text); err != nil {
		logger.Debug("clipboard write failed", "error", err)
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus("Copied "+what, false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMessage = msg
	m.statusErr = isErr
}

func (m *Model) treeWidth() int { return max(m.width*2/5, 20) }

func (m *Model) treeHeight() int {
	return max(m.height-headerHeight-statusHeight-paneChrome, 1)
}

func (m *Model) layout() {
	m.props.Width = max(m.width-m.treeWidth()-8, 10)
	m.props.Height = m.treeHeight()
	m.ensureVisible()
	m.refreshProps()
}

// refreshProps fills the property pane for the selected node.
func (m *Model) refreshProps() {
	r, ok := m.current()
	if !ok {
		m.props.SetContent("(empty update)")
		return
	}
	n := m.outline.nodes[r.ID]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", propNameStyle.Render("role"), roleStyle.Render(n.Role().String()))
	if a := n.Actions(); a != 0 {
		fmt.Fprintf(&b, "%s %s\n", propNameStyle.Render("actions"), a)
	}
	if r.ID == m.outline.focus {
		b.WriteString(focusStyle.Render("focused") + "\n")
	}
	b.WriteString("\n")
	width := 0
	node.Each(n, func(d *node.Descriptor, _ any) { width = max(width, len(d.Name)) })
	node.Each(n, func(d *node.Descriptor, v any) {
		name := propNameStyle.Render(fmt.Sprintf("%-*s", width, d.Name))
		fmt.Fprintf(&b, "%s  %s\n", name, shapeColor(d.Shape).Render(fmt.Sprint(treefile.Value(d, v))))
	})
	if node.Count(n) == 0 {
		b.WriteString(statusStyle.Render("(no properties)"))
	}
	m.props.SetContent(b.String())
	m.props.GotoTop()
}

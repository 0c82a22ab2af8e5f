package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/axkit/pkg/node"
)

// staticView is a pre-rendered screen usable as an overlay layer.
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)

	var fg tea.Model
	switch {
	case m.showHelp:
		fg = staticView(m.renderHelp())
	case m.detail.IsVisible():
		fg = &m.detail
	default:
		return screen
	}
	return overlay.New(fg, staticView(screen), overlay.Center, overlay.Center, 0, 0).View()
}

// renderHeader renders the title, file and tree summary
func (m Model) renderHeader() string {
	o := m.outline
	summary := fmt.Sprintf("File: %s  nodes: %d", m.path, len(o.nodes))
	if !o.root.IsZero() {
		summary += "  root: " + o.root.String()
	}
	if !o.focus.IsZero() {
		summary += "  focus: " + o.focus.String()
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("Accessibility Tree Explorer"),
		"  ",
		pathStyle.Render(summary),
	) + "\n"
}

func (m Model) renderContent() string {
	treeStyle, propStyle := activePaneStyle, paneStyle
	if m.focusedPane == PropsPane {
		treeStyle, propStyle = paneStyle, activePaneStyle
	}
	h := m.treeHeight()
	left := treeStyle.Width(m.treeWidth()).Height(h).Render(m.renderTree())
	right := propStyle.Width(m.props.Width).Height(h).Render(m.props.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderTree renders the visible window of rows.
func (m Model) renderTree() string {
	if len(m.rows) == 0 {
		return statusStyle.Render("(no nodes)")
	}
	width := m.treeWidth() - 2
	end := min(m.offset+m.treeHeight(), len(m.rows))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r row, selected bool, width int) string {
	marker := "•"
	if r.HasKids {
		marker = "▸"
		if r.Expanded {
			marker = "▾"
		}
	}
	n := m.outline.nodes[r.ID]
	name, _ := node.Name.Get(n)
	indent := strings.Repeat("  ", r.Depth)

	var tags []string
	if r.ID == m.outline.focus {
		tags = append(tags, "●")
	}
	if r.Detached {
		tags = append(tags, "(detached)")
	}

	if selected {
		plain := fmt.Sprintf("%s%s #%s %s %s %s", indent, marker, r.ID, n.Role(), name, strings.Join(tags, " "))
		return selectedStyle.Render(truncate(strings.TrimRight(plain, " "), width))
	}
	parts := []string{indent + marker, idStyle.Render("#" + r.ID.String()), roleStyle.Render(n.Role().String())}
	if name != "" {
		parts = append(parts, name)
	}
	for _, t := range tags {
		if t == "●" {
			parts = append(parts, focusStyle.Render(t))
		} else {
			parts = append(parts, detachedStyle.Render(t))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, " "))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// renderStatus renders the status line and the short help
func (m Model) renderStatus() string {
	msg := statusStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.rows)))
	if m.statusMessage != "" {
		style := statusOKStyle
		if m.statusErr {
			style = statusErrStyle
		}
		msg += style.Render(m.statusMessage)
	}
	return msg + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// renderHelp renders the keyboard shortcut modal
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	return modalStyle.Render(modalTitleStyle.Render("Keyboard Shortcuts") + "\n\n" + h.View(m.keys) + "\n\n" + statusStyle.Render("? or esc to close"))
}

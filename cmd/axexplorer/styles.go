package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/axkit/pkg/node"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	activePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	idStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	roleStyle     = lipgloss.NewStyle().Foreground(secondaryColor)
	focusStyle    = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	detachedStyle = lipgloss.NewStyle().Foreground(warningColor)

	propNameStyle = lipgloss.NewStyle().Foreground(primaryColor)
	propValStyle  = lipgloss.NewStyle()

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	statusOKStyle  = lipgloss.NewStyle().Foreground(successColor).Padding(0, 1)
	statusErrStyle = lipgloss.NewStyle().Foreground(errorColor).Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)
)

// shapeColor picks the value color for a property shape.
func shapeColor(s node.Shape) lipgloss.Style {
	switch s {
	case node.ShapeString:
		return propValStyle.Foreground(successColor)
	case node.ShapeNodeID, node.ShapeNodeIDVec:
		return propValStyle.Foreground(secondaryColor)
	case node.ShapeFlag, node.ShapeBool, node.ShapeEnum:
		return propValStyle.Foreground(warningColor)
	default:
		return propValStyle
	}
}

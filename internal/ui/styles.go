package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder    = "240"
	ColorHeader    = "252"
	ColorName      = "81"
	ColorMuted     = "240"
	ColorHint      = "245"
	ColorAction    = "214"
	ColorSSO       = "81"
	ColorOkta      = "214"
	ColorStandard  = "245"
	ColorSuccess   = "82"
	ColorError     = "196"
	ColorHighlight = "82"
)

// Shared styles
var (
	BorderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	NameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	MutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
	ActionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAction))
	SSOStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSSO))
	OktaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOkta))
	StandardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStandard))
	SuccessStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// padToWidth pads a string to exactly the given width, truncating if needed
func padToWidth(s string, width int) string {
	return padRight(s, width)
}

package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vietdv277/aash/internal/profile"
)

const (
	menuListHeight = 10
	minWidth       = 60
	maxWidth       = 120
)

// ErrCancelled is returned when the user aborts a selector or prompt
var ErrCancelled = errors.New("cancelled")

// MenuAction identifies what a menu item does when selected
type MenuAction int

const (
	// ActionUseProfile authenticates an existing profile
	ActionUseProfile MenuAction = iota
	// ActionCreateSSO starts the SSO profile creation flow
	ActionCreateSSO
	// ActionCreateOkta starts the Okta profile creation flow
	ActionCreateOkta
	// ActionCreateStandard starts the static-credentials creation flow
	ActionCreateStandard
)

// MenuItem is one selectable row in the main menu
type MenuItem struct {
	Action  MenuAction
	Profile profile.Profile // set when Action is ActionUseProfile
	label   string
}

// BuildMenu assembles the main menu: the three create actions followed by
// the existing profiles.
func BuildMenu(profiles []profile.Profile) []MenuItem {
	items := []MenuItem{
		{Action: ActionCreateSSO, label: "+ Add a new SSO profile"},
		{Action: ActionCreateOkta, label: "+ Add a new Okta profile"},
		{Action: ActionCreateStandard, label: "+ Add a new credentials profile"},
	}
	for _, p := range profiles {
		items = append(items, MenuItem{Action: ActionUseProfile, Profile: p, label: p.Name})
	}
	return items
}

// MenuModel is the bubbletea model for the main menu
type MenuModel struct {
	items        []MenuItem
	filtered     []MenuItem
	cursor       int
	offset       int
	search       string
	selected     *MenuItem
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
}

// NewMenuModel creates a menu model over the given items
func NewMenuModel(items []MenuItem) MenuModel {
	m := MenuModel{
		items:     items,
		filtered:  items,
		termWidth: 80,
	}
	m.calculateWidths()
	return m
}

func (m *MenuModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+menuListHeight {
					m.offset = m.cursor - menuListHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterItems()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterItems()
		}
	}

	return m, nil
}

func (m *MenuModel) filterItems() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			if strings.Contains(strings.ToLower(item.label), query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Title
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padToWidth(" Select AWS Profile", w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Search input
	searchLine := " > " + m.search
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(padToWidth(searchLine, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Empty line
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Item list
	visibleEnd := m.offset + menuListHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}

	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderMenuRow(i))
	}

	// Fill remaining lines
	for i := len(m.filtered); i < m.offset+menuListHeight; i++ {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m MenuModel) renderMenuRow(idx int) string {
	var sb strings.Builder
	item := m.filtered[idx]
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(Vertical))

	var line strings.Builder
	plainWidth := 0

	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	if item.Action != ActionUseProfile {
		text := padRight(item.label, w-plainWidth)
		line.WriteString(ActionStyle.Render(text))
		plainWidth = w
	} else {
		p := item.Profile

		nameWidth := 30
		line.WriteString(NameStyle.Render(padRight(p.Name, nameWidth)))
		line.WriteString("  ")
		plainWidth += nameWidth + 2

		kindWidth := 10
		line.WriteString(KindStyle(p.Kind).Render(padRight(p.Kind.String(), kindWidth)))
		line.WriteString("  ")
		plainWidth += kindWidth + 2

		region := p.Region
		if region == "" {
			region = "-"
		}
		regionWidth := 20
		line.WriteString(MutedStyle.Render(padRight(region, regionWidth)))
		plainWidth += regionWidth
	}

	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (m MenuModel) renderStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d entries", len(m.filtered), len(m.items))
	hintsPlain := "[Enter:select] [Esc:cancel]"

	countWidth := runewidth.StringWidth(countInfo)
	hintsWidth := runewidth.StringWidth(hintsPlain)
	padding := w - countWidth - hintsWidth

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// KindStyle returns the display style for a profile kind badge
func KindStyle(k profile.Kind) lipgloss.Style {
	switch k {
	case profile.KindSSO:
		return SSOStyle
	case profile.KindFederated:
		return OktaStyle
	default:
		return StandardStyle
	}
}

// SelectFromMenu displays the interactive main menu and returns the chosen
// item. Returns ErrCancelled when the user aborts.
func SelectFromMenu(items []MenuItem) (MenuItem, error) {
	m := NewMenuModel(items)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return MenuItem{}, fmt.Errorf("error running menu: %w", err)
	}

	result := finalModel.(MenuModel)
	if result.cancelled || result.selected == nil {
		return MenuItem{}, ErrCancelled
	}

	return *result.selected, nil
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is the bubbletea model for a single-line text prompt
type PromptModel struct {
	label      string
	help       string
	defaultVal string
	input      string
	done       bool
	cancelled  bool
}

// NewPromptModel creates a prompt with a label, an optional help line and
// an optional default value.
func NewPromptModel(label, help, defaultVal string) PromptModel {
	return PromptModel{label: label, help: help, defaultVal: defaultVal}
}

// Init implements tea.Model
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case tea.KeySpace:
			m.input += " "

		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

// View implements tea.Model
func (m PromptModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HighlightStyle.Render("? "))
	sb.WriteString(HeaderStyle.Render(m.label))
	sb.WriteString(" ")
	if m.input == "" && m.defaultVal != "" {
		sb.WriteString(MutedStyle.Render("(" + m.defaultVal + ") "))
	}
	sb.WriteString(NameStyle.Render(m.input))
	sb.WriteString(NameStyle.Render("█"))
	sb.WriteString("\n")
	if m.help != "" {
		sb.WriteString(HintStyle.Render("  " + m.help))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Value returns the accepted input, trimmed, falling back to the default
// when the user entered nothing.
func (m PromptModel) Value() string {
	v := strings.TrimSpace(m.input)
	if v == "" {
		return m.defaultVal
	}
	return v
}

// PromptText displays a single-line text prompt and returns the entered
// value. Returns ErrCancelled when the user aborts.
func PromptText(label, help, defaultVal string) (string, error) {
	m := NewPromptModel(label, help, defaultVal)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running prompt: %w", err)
	}

	result := finalModel.(PromptModel)
	if result.cancelled {
		return "", ErrCancelled
	}

	return result.Value(), nil
}

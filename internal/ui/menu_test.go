package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/aash/internal/profile"
)

func testProfiles() []profile.Profile {
	return []profile.Profile{
		{Name: "default", Kind: profile.KindStandard, Region: "us-east-1"},
		{Name: "org-sso", Kind: profile.KindSSO},
		{Name: "org-okta", Kind: profile.KindFederated},
	}
}

func TestBuildMenu(t *testing.T) {
	items := BuildMenu(testProfiles())
	require.Len(t, items, 6)

	// Create actions first, then profiles in load order
	assert.Equal(t, ActionCreateSSO, items[0].Action)
	assert.Equal(t, ActionCreateOkta, items[1].Action)
	assert.Equal(t, ActionCreateStandard, items[2].Action)
	assert.Equal(t, ActionUseProfile, items[3].Action)
	assert.Equal(t, "default", items[3].Profile.Name)
	assert.Equal(t, "org-okta", items[5].Profile.Name)
}

func TestBuildMenuEmpty(t *testing.T) {
	items := BuildMenu(nil)
	require.Len(t, items, 3, "create actions remain available with no profiles")
}

func keyMsg(runes string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)}
}

func TestMenuModelSearch(t *testing.T) {
	m := NewMenuModel(BuildMenu(testProfiles()))

	updated, _ := m.Update(keyMsg("okta"))
	m = updated.(MenuModel)

	require.Len(t, m.filtered, 2)
	assert.Equal(t, ActionCreateOkta, m.filtered[0].Action)
	assert.Equal(t, "org-okta", m.filtered[1].Profile.Name)

	// Erasing the query restores the full list
	for i := 0; i < 4; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		m = updated.(MenuModel)
	}
	assert.Len(t, m.filtered, 6)
}

func TestMenuModelSelection(t *testing.T) {
	m := NewMenuModel(BuildMenu(testProfiles()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(MenuModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(MenuModel)

	require.NotNil(t, m.selected)
	assert.Equal(t, ActionCreateOkta, m.selected.Action)
	assert.True(t, m.quitting)
	assert.False(t, m.cancelled)
}

func TestMenuModelCancel(t *testing.T) {
	m := NewMenuModel(BuildMenu(testProfiles()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(MenuModel)

	assert.True(t, m.cancelled)
	assert.Nil(t, m.selected)
}

func TestMenuModelCursorClamping(t *testing.T) {
	m := NewMenuModel(BuildMenu(testProfiles()))

	for i := 0; i < 20; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(MenuModel)
	}
	assert.Equal(t, len(m.filtered)-1, m.cursor)

	// Narrowing the filter pulls the cursor back into range
	updated, _ := m.Update(keyMsg("sso"))
	m = updated.(MenuModel)
	assert.Less(t, m.cursor, len(m.filtered))
}

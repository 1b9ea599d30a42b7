package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m *Model, keyName string) tea.Cmd {
	var msg tea.KeyMsg
	switch keyName {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keyName)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func resize(m *Model, w, h int) {
	m.Update(tea.WindowSizeMsg{Width: w, Height: h})
}

func TestViewBeforeResize(t *testing.T) {
	m := NewResultModel(game.ReferenceSession(nil), game.Master)
	assert.Equal(t, "Loading...", m.View())
}

func TestMasterTabs(t *testing.T) {
	m := NewResultModel(game.ReferenceSession(nil), game.Master)
	resize(m, 100, 40)

	assert.Equal(t, []TabType{CluesTab, AssociationsTab, SuspectsTab}, m.availableTabs())
	assert.Equal(t, CluesTab, m.currentTab)
	assert.Contains(t, m.View(), "bilhete rasgado")

	press(m, "3")
	assert.Equal(t, AssociationsTab, m.currentTab)
	assert.Contains(t, m.View(), "Bucket 6")

	press(m, "1")
	assert.Equal(t, AssociationsTab, m.currentTab, "walk tab is not available on master")

	press(m, "right")
	assert.Equal(t, SuspectsTab, m.currentTab)
	view := m.View()
	assert.Contains(t, view, "Most cited suspect")
	assert.Contains(t, view, "Joaquim")

	press(m, "right")
	assert.Equal(t, CluesTab, m.currentTab, "tabs wrap around")

	press(m, "left")
	assert.Equal(t, SuspectsTab, m.currentTab)
}

func TestAllLevelShowsEveryTab(t *testing.T) {
	m := NewResultModel(game.ReferenceSession(nil), game.All)
	resize(m, 100, 40)

	assert.Len(t, m.availableTabs(), 4)
	assert.Equal(t, WalkTab, m.currentTab)
	assert.Contains(t, m.View(), "Adega")
}

func TestNoviceHasOnlyWalk(t *testing.T) {
	m := NewResultModel(game.ReferenceSession(nil), game.Novice)
	resize(m, 80, 30)

	assert.Equal(t, []TabType{WalkTab}, m.availableTabs())
	press(m, "2")
	assert.Equal(t, WalkTab, m.currentTab)
	assert.Contains(t, m.View(), "dead end reached")
}

func TestMenuPlaysSelectedLevel(t *testing.T) {
	m := NewMenuModel(game.ReferenceSession(nil))
	resize(m, 100, 40)

	assert.True(t, m.menuMode)
	assert.Contains(t, m.View(), "Choose a level")

	press(m, "down")
	press(m, "enter")

	require.False(t, m.menuMode)
	assert.Equal(t, game.Adventurer, m.level)
	assert.Equal(t, []TabType{CluesTab}, m.availableTabs())

	press(m, "esc")
	assert.True(t, m.menuMode, "esc goes back to the menu")
}

func TestQuit(t *testing.T) {
	m := NewMenuModel(game.ReferenceSession(nil))
	resize(m, 80, 24)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestScrollIsClamped(t *testing.T) {
	m := NewResultModel(game.ReferenceSession(nil), game.Adventurer)
	resize(m, 80, 10)

	for range 50 {
		press(m, "j")
	}
	m.View()

	assert.Less(t, m.scrollPositions[CluesTab], 50)
	assert.GreaterOrEqual(t, m.scrollPositions[CluesTab], 0)

	press(m, "k")
	assert.GreaterOrEqual(t, m.scrollPositions[CluesTab], 0)
}

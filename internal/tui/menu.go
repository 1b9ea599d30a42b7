package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/utils"
)

// levelItem represents a playable level in the menu
type levelItem struct {
	level game.Level
}

func (i levelItem) FilterValue() string {
	return i.level.String()
}

func (i levelItem) Title() string {
	return fmt.Sprintf("%d - %s", menuNumber(i.level), strings.ToUpper(i.level.String()[:1])+i.level.String()[1:])
}

func (i levelItem) Description() string {
	return i.level.Title()
}

// menuNumber mirrors the numbers accepted by game.ParseLevel.
func menuNumber(l game.Level) int {
	if l == game.All {
		return 0
	}
	return int(l) + 1
}

func newLevelList() list.Model {
	levels := game.Levels()
	items := make([]list.Item, len(levels))
	for i, l := range levels {
		items[i] = levelItem{level: l}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Choose a level"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	// q and ctrl+c are handled by the model; esc must not quit from the menu
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.levelList.SelectedItem().(levelItem); ok {
			m.play(item.level)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.levelList, cmd = m.levelList.Update(msg)
	return m, cmd
}

func (m *Model) renderMenuView() string {
	header := utils.HeaderStyle.Width(m.width).Render("🕵️ Detective Quest: " + m.session.Case)
	statusView := utils.StatusBarStyle.Width(m.width).
		Render("Rooms, clues and suspects are fixed by the case file")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		utils.MutedStyle.Render(utils.Rule(m.width)),
		m.levelList.View(),
		statusView,
	)
}

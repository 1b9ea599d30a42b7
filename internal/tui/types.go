package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/internal/investigate"
)

type Model struct {
	// Data
	session *game.Session
	level   game.Level
	walk    []estate.Step
	result  *investigate.Result

	// UI State
	menuMode   bool
	levelList  list.Model
	currentTab TabType
	width      int
	height     int

	scrollPositions map[TabType]int

	// Key bindings
	keys KeyMap
	help help.Model
}

type TabType int

const (
	WalkTab TabType = iota
	CluesTab
	AssociationsTab
	SuspectsTab
)

var (
	tabIcons = []string{"🚶", "📜", "🗂️", "👥"}
	tabNames = []string{"Walk", "Clues", "Associations", "Suspects"}
)

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Tab4  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Menu  key.Binding
	Quit  key.Binding
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:  k([]string{"1"}, "1", "walk"),
		Tab2:  k([]string{"2"}, "2", "clues"),
		Tab3:  k([]string{"3"}, "3", "associations"),
		Tab4:  k([]string{"4"}, "4", "suspects"),
		Left:  k([]string{"left", "h"}, "←/h", "prev tab"),
		Right: k([]string{"right", "l"}, "→/l", "next tab"),
		Up:    k([]string{"up", "k"}, "↑/k", "up"),
		Down:  k([]string{"down", "j"}, "↓/j", "down"),
		Enter: k([]string{"enter"}, "enter", "play level"),
		Menu:  k([]string{"esc", "m"}, "esc", "levels"),
		Quit:  k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Menu, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Tab1, km.Tab2, km.Tab3, km.Tab4},
		{km.Left, km.Right, km.Up, km.Down},
		{km.Enter, km.Menu, km.Quit},
	}
}

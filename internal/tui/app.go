package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/utils"
)

const PageSize = 10 // Number of lines to scroll per page

func initialModel(session *game.Session) *Model {
	return &Model{
		session:         session,
		levelList:       newLevelList(),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		scrollPositions: make(map[TabType]int),
	}
}

// NewMenuModel starts on the level menu.
func NewMenuModel(session *game.Session) *Model {
	m := initialModel(session)
	m.menuMode = true
	return m
}

// NewResultModel plays level right away and shows its results.
func NewResultModel(session *game.Session, level game.Level) *Model {
	m := initialModel(session)
	m.play(level)
	return m
}

func (m *Model) play(level game.Level) {
	m.level = level
	m.walk = nil
	m.result = nil

	for _, out := range m.session.Play(level) {
		if out.Walk != nil {
			m.walk = out.Walk
		}
		if out.Result != nil {
			m.result = out.Result
		}
	}

	m.menuMode = false
	m.scrollPositions = make(map[TabType]int)
	m.currentTab = m.availableTabs()[0]
}

// availableTabs lists the tabs the played level has data for.
func (m *Model) availableTabs() []TabType {
	var tabs []TabType
	if m.walk != nil {
		tabs = append(tabs, WalkTab)
	}
	if m.result != nil {
		tabs = append(tabs, CluesTab)
		if m.level == game.Master || m.level == game.All {
			tabs = append(tabs, AssociationsTab, SuspectsTab)
		}
	}
	if len(tabs) == 0 {
		tabs = append(tabs, WalkTab)
	}
	return tabs
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.levelList.SetSize(msg.Width, max(msg.Height-4, 0))

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.menuMode {
			return m.handleMenuKeys(msg)
		}
		return m.handleResultKeys(msg)
	}

	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menuMode = true
	case key.Matches(msg, m.keys.Tab1):
		m.selectTab(WalkTab)
	case key.Matches(msg, m.keys.Tab2):
		m.selectTab(CluesTab)
	case key.Matches(msg, m.keys.Tab3):
		m.selectTab(AssociationsTab)
	case key.Matches(msg, m.keys.Tab4):
		m.selectTab(SuspectsTab)
	case key.Matches(msg, m.keys.Left):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.Up):
		if m.scrollPositions[m.currentTab] > 0 {
			m.scrollPositions[m.currentTab]--
		}
	case key.Matches(msg, m.keys.Down):
		// Bounded in rendering
		m.scrollPositions[m.currentTab]++
	case msg.String() == "pgup":
		m.scrollPositions[m.currentTab] = max(m.scrollPositions[m.currentTab]-PageSize, 0)
	case msg.String() == "pgdown":
		m.scrollPositions[m.currentTab] += PageSize
	}
	return m, nil
}

func (m *Model) selectTab(tab TabType) {
	if slices.Contains(m.availableTabs(), tab) {
		m.currentTab = tab
	}
}

func (m *Model) cycleTab(direction int) {
	tabs := m.availableTabs()
	i := slices.Index(tabs, m.currentTab)
	m.currentTab = tabs[(i+direction+len(tabs))%len(tabs)]
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.menuMode {
		return m.renderMenuView()
	}

	contentHeight := max(m.height-4, 1)

	var content string
	switch m.currentTab {
	case WalkTab:
		content = RenderWalk(m.walk)
	case CluesTab:
		content = RenderClues(m.result)
	case AssociationsTab:
		content = RenderAssociations(m.result.Associations)
	case SuspectsTab:
		content = RenderSuspects(m.result, m.width, contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.applyScrolling(content, contentHeight),
		m.help.View(m.keys),
	)
}

// applyScrolling clamps the scroll position of the current tab and cuts
// content to height lines.
func (m *Model) applyScrolling(content string, height int) string {
	lines := strings.Split(content, "\n")
	maxScroll := max(len(lines)-height, 0)

	pos := min(m.scrollPositions[m.currentTab], maxScroll)
	m.scrollPositions[m.currentTab] = pos

	end := min(pos+height, len(lines))
	return strings.Join(lines[pos:end], "\n")
}

func (m *Model) renderHeader() string {
	var tabs []string

	for _, tab := range m.availableTabs() {
		style := utils.TabInactiveStyle
		indicator := " "

		if tab == m.currentTab {
			style = utils.TabActiveStyle
			indicator = "●"
		}

		tabText := fmt.Sprintf("%s %s %s [%d]", indicator, tabIcons[tab], tabNames[tab], int(tab)+1)
		tabs = append(tabs, style.Render(tabText))
	}

	title := utils.MutedStyle.Render(fmt.Sprintf("%s · %s", m.session.Case, m.level))
	tabLine := strings.Join(tabs, "  ") + "  " + title

	return lipgloss.JoinVertical(lipgloss.Left, tabLine, utils.Rule(m.width))
}

func run(model *Model) error {
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}

// StartTUI shows the results of level in a tabbed view.
func StartTUI(session *game.Session, level game.Level) error {
	return run(NewResultModel(session, level))
}

// StartMenu opens the level menu.
func StartMenu(session *game.Session) error {
	return run(NewMenuModel(session))
}

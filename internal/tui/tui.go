// Package tui provides the interactive terminal interface: an entry
// browser, a totals panel and a settings panel with a theme selector.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/tui/ui"
	"github.com/toolstack/overtimeit/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabTotals
	TabSettings
)

var tabNames = []string{"Entries", "Totals", "Settings"}

// SaveThemeFunc persists the chosen theme name between runs.
type SaveThemeFunc func(name string) error

// Model is the root TUI model
type Model struct {
	svc       *ledger.Service
	saveTheme SaveThemeFunc

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	entriesView  views.EntriesModel
	totalsView   views.TotalsModel
	settingsView views.SettingsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(svc *ledger.Service, themeName string, saveTheme SaveThemeFunc) Model {
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		svc:           svc,
		saveTheme:     saveTheme,
		activeTab:     TabEntries,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		entriesView:   views.NewEntriesModel(svc, styles, keys),
		totalsView:    views.NewTotalsModel(svc, styles, keys),
		settingsView:  views.NewSettingsModel(svc, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.entriesView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The entry form captures all character keys.
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabEntries
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabTotals
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabSettings
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.entriesView.SetSize(m.width, contentHeight)
		m.totalsView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.entriesView, _ = m.entriesView.Update(themeMsg)
		m.totalsView, _ = m.totalsView.Update(themeMsg)
		m.settingsView, _ = m.settingsView.Update(themeMsg)

		return m, m.persistTheme(newTheme)
	}

	switch m.activeTab {
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabTotals:
		m.totalsView, cmd = m.totalsView.Update(msg)
	case TabSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabTotals:
		b.WriteString(m.totalsView.View())
	case TabSettings:
		b.WriteString(m.settingsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Tab", "switch field"))
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabEntries:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("e", "edit"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("c", "duplicate"))
			parts = append(parts, m.renderKeyHelp("L", "lock"))
			parts = append(parts, m.renderKeyHelp("h/l", "month"))
		case TabSettings:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabSettings:
		return m.settingsView.IsSelectingTheme()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.Init()
	case TabTotals:
		return m.totalsView.Init()
	case TabSettings:
		return m.settingsView.Init()
	}
	return nil
}

// persistTheme saves the chosen theme between runs
func (m Model) persistTheme(themeName string) tea.Cmd {
	if m.saveTheme == nil {
		return nil
	}
	save := m.saveTheme
	return func() tea.Msg {
		_ = save(themeName)
		return nil
	}
}

// renderHelpOverlay renders the keyboard shortcut overlay
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabEntries:
		help.WriteString(m.styles.StatLabel.Render("Entries:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  h/l        Previous/next month\n")
		help.WriteString("  t          This month\n")
		help.WriteString("  n          New entry\n")
		help.WriteString("  e          Edit entry\n")
		help.WriteString("  d          Delete entry\n")
		help.WriteString("  c          Duplicate entry\n")
		help.WriteString("  L          Lock/unlock month\n")
	case TabSettings:
		help.WriteString(m.styles.StatLabel.Render("Settings:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the interactive interface
func Run(svc *ledger.Service, themeName string, saveTheme SaveThemeFunc) error {
	model := New(svc, themeName, saveTheme)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

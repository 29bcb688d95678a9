package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/profile"
	"github.com/toolstack/overtimeit/internal/tui/ui"
)

// SettingsModel is the model for the settings view. It shows the ledger's
// settings and profile and hosts the theme selector.
type SettingsModel struct {
	svc           *ledger.Service
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width     int
	height    int
	settings  ledger.Settings
	profile   profile.Profile
	themeName string

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(svc *ledger.Service, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) SettingsModel {
	themes := themeProvider.AvailableThemes()
	currentTheme := themeProvider.CurrentName()

	cursor := 0
	for i, t := range themes {
		if t == currentTheme {
			cursor = i
			break
		}
	}

	return SettingsModel{
		svc:           svc,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themeName:     currentTheme,
		themes:        themes,
		themeCursor:   cursor,
	}
}

// settingsLoadedMsg is sent when the ledger settings are loaded
type settingsLoadedMsg struct {
	settings ledger.Settings
	profile  profile.Profile
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return m.loadSettings()
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}

	case settingsLoadedMsg:
		m.settings = msg.settings
		m.profile = msg.profile

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, nil
	}

	return m, nil
}

// handleThemeSelection handles keys when the theme selector is open
func (m SettingsModel) handleThemeSelection(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		selectedTheme := m.themes[m.themeCursor]
		m.selectingTheme = false
		return m, m.requestThemeChange(selectedTheme)

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		for i, t := range m.themes {
			if t == m.themeName {
				m.themeCursor = i
				break
			}
		}
		return m, nil
	}

	return m, nil
}

// updateThemeOffset adjusts scroll offset to keep the cursor visible
func (m *SettingsModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// requestThemeChange creates a command to request a theme change by name
func (m SettingsModel) requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n\n")

	step := "none"
	if m.settings.RoundingStep > 0 {
		step = fmt.Sprintf("%d min", m.settings.RoundingStep)
	}
	b.WriteString(m.renderLine("Standard day:", cli.FormatMinutes(m.settings.StandardDayMins)))
	b.WriteString(m.renderLine("Rounding step:", step))
	b.WriteString("\n")
	b.WriteString(m.renderLine("Organization:", m.profile.Org))
	b.WriteString(m.renderLine("Prepared by:", m.profile.User))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n\n")

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(m.renderLine("Theme:", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Press Enter or 't' to change theme"))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Edit day length and profile with the settings/profile commands"))
	}

	return b.String()
}

// renderThemeSelector renders the theme selection list
func (m SettingsModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("Theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := m.themeOffset + maxVisibleThemes
	if endIdx > len(m.themes) {
		endIdx = len(m.themes)
	}

	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		if i == m.themeCursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + theme))
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(" (current)"))
			}
		} else {
			b.WriteString("  ")
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(theme + " (current)"))
			} else {
				b.WriteString(m.styles.StatValue.Render(theme))
			}
		}
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsSelectingTheme reports whether the theme selector is open
func (m SettingsModel) IsSelectingTheme() bool {
	return m.selectingTheme
}

// loadSettings creates a command to load the ledger settings and profile
func (m SettingsModel) loadSettings() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return settingsLoadedMsg{
			settings: svc.Ledger().Settings,
			profile:  svc.Profile(),
		}
	}
}

func (m SettingsModel) renderLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}

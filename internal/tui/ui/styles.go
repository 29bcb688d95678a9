package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryDate     lipgloss.Style
	EntryTime     lipgloss.Style
	EntryWorked   lipgloss.Style
	EntryNote     lipgloss.Style

	// Period header
	PeriodLabel lipgloss.Style
	LockMarker  lipgloss.Style

	// Totals
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Primary: Purple (tabs, titles, period header)
// - Secondary: Cyan (clock ranges, status keys)
// - Accent: BrightPurple (worked durations)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		EntrySelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryDate: lipgloss.NewStyle().
			Foreground(muted).
			Width(12),
		EntryTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(13),
		EntryWorked: lipgloss.NewStyle().
			Foreground(accent).
			Width(9).
			Align(lipgloss.Right),
		EntryNote: lipgloss.NewStyle().
			Foreground(fg),

		PeriodLabel: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		LockMarker: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}

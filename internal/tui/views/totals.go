package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/tui/ui"
)

// TotalsModel is the model for the totals view
type TotalsModel struct {
	svc    *ledger.Service
	styles ui.Styles
	keys   ui.KeyMap

	width  int
	height int
	period string
	totals ledger.Totals
	count  int
}

// NewTotalsModel creates a new totals view model
func NewTotalsModel(svc *ledger.Service, styles ui.Styles, keys ui.KeyMap) TotalsModel {
	return TotalsModel{svc: svc, styles: styles, keys: keys}
}

// totalsLoadedMsg is sent when totals are computed
type totalsLoadedMsg struct {
	period string
	totals ledger.Totals
	count  int
}

// Init implements tea.Model
func (m TotalsModel) Init() tea.Cmd {
	return m.loadTotals()
}

// Update implements tea.Model
func (m TotalsModel) Update(msg tea.Msg) (TotalsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case totalsLoadedMsg:
		m.period = msg.period
		m.totals = msg.totals
		m.count = msg.count

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m TotalsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Totals for " + m.period))
	b.WriteString("\n\n")

	t := m.totals
	b.WriteString(m.renderStatLine("Days logged:", fmt.Sprintf("%d %s", t.DaysLogged, pluralize("day", t.DaysLogged))))
	b.WriteString(m.renderStatLine("Entries:", fmt.Sprintf("%d", m.count)))
	b.WriteString(m.renderStatLine("Worked:", cli.FormatMinutes(t.TotalWork)))
	b.WriteString(m.renderStatLine("Breaks:", cli.FormatMinutes(t.TotalBreak)))
	b.WriteString(m.renderStatLine("Expected:", cli.FormatMinutes(t.Expected)))
	b.WriteString(m.renderStatLine("Balance:", cli.FormatSignedMinutes(t.Balance)))

	b.WriteString("\n")
	if t.Overtime > 0 {
		b.WriteString(m.styles.Success.Render("Overtime: " + cli.FormatMinutes(t.Overtime)))
	} else if t.Balance < 0 {
		b.WriteString(m.styles.Warning.Render("Short of expected by " + cli.FormatMinutes(-t.Balance)))
	} else {
		b.WriteString(m.styles.StatLabel.Render("On target"))
	}
	b.WriteString("\n")

	return b.String()
}

// SetSize sets the view dimensions
func (m *TotalsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadTotals creates a command that computes totals for the filtered view
func (m TotalsModel) loadTotals() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		l := svc.Ledger()
		entries := l.Filtered()
		return totalsLoadedMsg{
			period: l.PeriodLabel(),
			totals: ledger.ComputeTotals(entries, l.Settings),
			count:  len(entries),
		}
	}
}

func (m TotalsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}

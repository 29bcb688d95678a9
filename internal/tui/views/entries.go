package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/clock"
	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeEdit
	entryModeDelete
)

// form field order: date, start, end, break, note
const formFields = 5

// EntriesModel is the model for the entries view
type EntriesModel struct {
	svc    *ledger.Service
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	entries []entry.Entry
	period  string
	locked  bool
	totals  ledger.Totals
	err     error

	// Input mode state
	mode         entryMode
	inputs       [formFields]textinput.Model
	focusedInput int
	editID       string // id of the entry being edited
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(svc *ledger.Service, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	m := EntriesModel{svc: svc, styles: styles, keys: keys}

	placeholders := [formFields]string{
		"Date (YYYY-MM-DD)",
		"Start (HH:MM)",
		"End (HH:MM)",
		"Break minutes",
		"Note...",
	}
	widths := [formFields]int{14, 10, 10, 8, 40}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = widths[i]
		in.CharLimit = 200
		m.inputs[i] = in
	}

	return m
}

// viewLoadedMsg is sent when the filtered view is (re)loaded
type viewLoadedMsg struct {
	entries []entry.Entry
	period  string
	locked  bool
	totals  ledger.Totals
	err     error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadView()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd, entryModeEdit:
			return m.handleFormMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		}
		return m.handleNormalMode(msg)

	case viewLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.entries = msg.entries
			m.period = msg.period
			m.locked = msg.locked
			m.totals = msg.totals
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
			// Every reload closes an open form; in particular a lock
			// landing mid-edit discards the edit.
			m.closeForm()
			m.mode = entryModeNormal
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

func (m EntriesModel) handleNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth):
		return m, m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m, m.shiftMonth(1)
	case key.Matches(msg, m.keys.CurrentMonth):
		return m, m.setMonth(entry.CurrentMonth())
	case key.Matches(msg, m.keys.Lock):
		return m, m.toggleLock()
	case key.Matches(msg, m.keys.New):
		if m.locked {
			m.err = ledger.ErrMonthLocked
			return m, nil
		}
		m.openForm(entryModeAdd, entry.Entry{Date: entry.Today()})
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if len(m.entries) == 0 || m.cursor >= len(m.entries) {
			return m, nil
		}
		if m.locked {
			m.err = ledger.ErrMonthLocked
			return m, nil
		}
		e := m.entries[m.cursor]
		m.editID = e.ID
		m.openForm(entryModeEdit, e)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 && m.cursor < len(m.entries) {
			if m.locked {
				m.err = ledger.ErrMonthLocked
				return m, nil
			}
			m.mode = entryModeDelete
		}
		return m, nil
	case key.Matches(msg, m.keys.Duplicate):
		if len(m.entries) > 0 && m.cursor < len(m.entries) {
			return m, m.duplicateEntry(m.entries[m.cursor].ID)
		}
		return m, nil
	}
	return m, nil
}

// openForm puts the view in add or edit mode with the form seeded from e.
func (m *EntriesModel) openForm(mode entryMode, e entry.Entry) {
	m.mode = mode
	m.err = nil
	m.inputs[0].SetValue(e.Date)
	m.inputs[1].SetValue(e.Start)
	m.inputs[2].SetValue(e.End)
	if mode == entryModeAdd {
		m.inputs[3].SetValue("")
	} else {
		m.inputs[3].SetValue(strconv.Itoa(e.BreakMins))
	}
	m.inputs[4].SetValue(e.Note)
	m.focusedInput = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m *EntriesModel) closeForm() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.editID = ""
}

// handleFormMode handles key events when the add/edit form is open
func (m EntriesModel) handleFormMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		d, err := m.formDraft()
		if err != nil {
			m.err = err
			return m, nil
		}
		if m.mode == entryModeAdd {
			return m, m.addEntry(d)
		}
		return m, m.editEntry(m.editID, d)
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.closeForm()
		m.err = nil
		return m, nil
	case msg.String() == "tab":
		m.inputs[m.focusedInput].Blur()
		m.focusedInput = (m.focusedInput + 1) % formFields
		m.inputs[m.focusedInput].Focus()
		return m, textinput.Blink
	case msg.String() == "shift+tab":
		m.inputs[m.focusedInput].Blur()
		m.focusedInput = (m.focusedInput - 1 + formFields) % formFields
		m.inputs[m.focusedInput].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// formDraft validates the form fields and builds the draft to commit.
func (m EntriesModel) formDraft() (entry.Draft, error) {
	d := entry.Draft{
		Date:  strings.TrimSpace(m.inputs[0].Value()),
		Start: strings.TrimSpace(m.inputs[1].Value()),
		End:   strings.TrimSpace(m.inputs[2].Value()),
		Note:  strings.TrimSpace(m.inputs[4].Value()),
	}
	if !entry.ValidDate(d.Date) {
		return d, ledger.ErrInvalidDate
	}
	if !clock.ValidClock(d.Start) || !clock.ValidClock(d.End) {
		return d, fmt.Errorf("start and end must be HH:MM clock times")
	}
	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return d, fmt.Errorf("break must be a number of minutes")
		}
		d.BreakMins = n
	}
	return d, nil
}

// handleDeleteMode handles key events in the delete confirmation dialog
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			id := m.entries[m.cursor].ID
			m.mode = entryModeNormal
			return m, m.deleteEntry(id)
		}
	case "n", "N", "esc":
		m.mode = entryModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderForm("New Entry")
	case entryModeEdit:
		return m.renderForm("Edit Entry")
	case entryModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder

	header := m.styles.PeriodLabel.Render(m.period)
	if m.locked {
		header += " " + m.styles.LockMarker.Render("(locked)")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to log a work day"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Worked %s in %d %s, balance %s",
		cli.FormatMinutes(m.totals.TotalWork),
		m.totals.DaysLogged,
		pluralize("day", m.totals.DaysLogged),
		cli.FormatSignedMinutes(m.totals.Balance)))

	return b.String()
}

// renderForm renders the add/edit form
func (m EntriesModel) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	labels := [formFields]string{"Date:", "Start:", "End:", "Break:", "Note:"}
	for i, label := range labels {
		if i == m.focusedInput {
			label = "▸ " + label
		}
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.entries) {
		e := m.entries[m.cursor]
		b.WriteString(m.styles.Warning.Render("Delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Date: "))
		b.WriteString(m.styles.StatValue.Render(e.Date))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Time: "))
		b.WriteString(m.styles.StatValue.Render(cli.FormatClockRange(e)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Worked: "))
		b.WriteString(m.styles.StatValue.Render(cli.FormatMinutes(e.WorkMins)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.mode == entryModeAdd || m.mode == entryModeEdit
}

// loadView creates a command that snapshots the filtered view
func (m EntriesModel) loadView() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		l := svc.Ledger()
		entries := l.Filtered()
		return viewLoadedMsg{
			entries: entries,
			period:  l.PeriodLabel(),
			locked:  !l.UI.UseRange && l.IsMonthLocked(l.UI.ActiveMonth),
			totals:  ledger.ComputeTotals(entries, l.Settings),
		}
	}
}

func (m EntriesModel) addEntry(d entry.Draft) tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		if _, err := svc.Add(d); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m EntriesModel) editEntry(id string, d entry.Draft) tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		if _, err := svc.Update(id, d); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m EntriesModel) deleteEntry(id string) tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		if _, err := svc.Delete(id); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m EntriesModel) duplicateEntry(id string) tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		if _, err := svc.Duplicate(id); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m EntriesModel) toggleLock() tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		l := svc.Ledger()
		if l.UI.UseRange {
			// Locks are per month; the range view has no single month.
			return load()
		}
		if _, err := svc.ToggleLock(l.UI.ActiveMonth); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

func (m EntriesModel) shiftMonth(delta int) tea.Cmd {
	return m.setMonth(entry.ShiftMonth(m.svc.Ledger().UI.ActiveMonth, delta))
}

func (m EntriesModel) setMonth(month string) tea.Cmd {
	svc := m.svc
	load := m.loadView()
	return func() tea.Msg {
		if err := svc.SetActiveMonth(month); err != nil {
			return viewLoadedMsg{err: err}
		}
		return load()
	}
}

package tui

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/storage"
	"github.com/toolstack/overtimeit/internal/tui/ui"
)

func setupTestService(t *testing.T) *ledger.Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	store, err := storage.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc, err := ledger.NewService(store, logger)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNew(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	if model.activeTab != TabEntries {
		t.Errorf("expected initial tab to be Entries, got %d", model.activeTab)
	}
	if model.svc == nil {
		t.Error("expected service to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestInit(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	if model.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m := newModel.(Model)
	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)
	if m.activeTab != TabTotals {
		t.Errorf("expected TabTotals after pressing tab, got %d", m.activeTab)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = newModel.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("expected TabEntries after shift+tab, got %d", m.activeTab)
	}
}

func TestUpdate_TabWraparound(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)
	if m.activeTab != TabSettings {
		t.Errorf("expected TabSettings (wraparound) after shift+tab from TabEntries, got %d", m.activeTab)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("expected TabEntries (wraparound) after tab from TabSettings, got %d", m.activeTab)
	}
}

func TestUpdate_DirectTabKeys(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'2', TabTotals},
		{'3', TabSettings},
		{'1', TabEntries},
	}

	m := model
	for _, tt := range tests {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m = newModel.(Model)
		if m.activeTab != tt.expected {
			t.Errorf("pressing %c: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestView_Loading(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	if !strings.Contains(model.View(), "Loading") {
		t.Errorf("expected 'Loading...' when width is 0, got %q", model.View())
	}
}

func TestView_AllTabs(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	for _, tab := range []Tab{TabEntries, TabTotals, TabSettings} {
		m.activeTab = tab
		if m.View() == "" {
			t.Errorf("expected non-empty view for tab %d", tab)
		}
	}
}

func TestRenderTabs(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	tabs := model.renderTabs()
	for _, name := range tabNames {
		if !strings.Contains(tabs, name) {
			t.Errorf("expected tab name %s in rendered tabs", name)
		}
	}
}

func TestRenderStatusBar_EntriesTab(t *testing.T) {
	model := New(setupTestService(t), "", nil)
	model.width = 100

	statusBar := model.renderStatusBar()

	for _, want := range []string{"new", "edit", "delete", "duplicate", "lock", "quit"} {
		if !strings.Contains(statusBar, want) {
			t.Errorf("expected %q in status bar for entries tab", want)
		}
	}
}

func TestRenderStatusBar_SettingsTab(t *testing.T) {
	model := New(setupTestService(t), "", nil)
	model.width = 80
	model.activeTab = TabSettings

	if !strings.Contains(model.renderStatusBar(), "themes") {
		t.Error("expected 'themes' in status bar for settings tab")
	}
}

func TestUpdate_FormBlocksTabSwitch(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := newModel.(Model)

	// Open the add form, then try to switch views
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = newModel.(Model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = newModel.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("expected to stay on TabEntries while the form is open, got %d", m.activeTab)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("expected Tab to not switch views while the form is open, got %d", m.activeTab)
	}
}

func TestInitCurrentView_InvalidTab(t *testing.T) {
	model := New(setupTestService(t), "", nil)

	model.activeTab = Tab(999)
	if model.initCurrentView() != nil {
		t.Error("expected nil command for invalid tab")
	}
}

func TestUpdate_ThemeChangeRequest(t *testing.T) {
	saved := ""
	model := New(setupTestService(t), "", func(name string) error {
		saved = name
		return nil
	})

	newModel, cmd := model.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	m := newModel.(Model)

	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("expected theme nord, got %s", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Fatal("expected a command to persist the theme")
	}
	cmd()
	if saved != "nord" {
		t.Errorf("expected theme nord to be saved, got %q", saved)
	}
}

package ui

import (
	"sort"
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %s, got %s", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_Initial(t *testing.T) {
	tp := NewThemeProvider("nord")
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme nord, got %s", tp.CurrentName())
	}
}

func TestNewThemeProvider_UnknownFallsBack(t *testing.T) {
	tp := NewThemeProvider("no-such-theme")
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %s, got %s", DefaultTheme, tp.CurrentName())
	}
}

func TestSetTheme(t *testing.T) {
	tp := NewThemeProvider("")
	if !tp.SetTheme("nord") {
		t.Fatal("expected SetTheme to succeed for a known theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected nord, got %s", tp.CurrentName())
	}
	if tp.SetTheme("no-such-theme") {
		t.Error("expected SetTheme to fail for an unknown theme")
	}
}

func TestAvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")
	themes := tp.AvailableThemes()

	if len(themes) == 0 {
		t.Fatal("expected at least one theme")
	}
	if !sort.StringsAreSorted(themes) {
		t.Error("expected themes to be sorted")
	}

	found := false
	for _, name := range themes {
		if name == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected %s in available themes", DefaultTheme)
	}
}

func TestStyles(t *testing.T) {
	tp := NewThemeProvider("")
	styles := tp.Styles()

	// A handful of spot checks that theme colors landed in the styles.
	if !styles.TabActive.GetBold() {
		t.Error("expected TabActive to be bold")
	}
	if !styles.StatusKey.GetBold() {
		t.Error("expected StatusKey to be bold")
	}
	if styles.EntryWorked.GetWidth() == 0 {
		t.Error("expected EntryWorked to have a fixed width")
	}
}

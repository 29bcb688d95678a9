package cmd

import (
	"strings"
	"testing"
)

func TestEditEntry_Success(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")
	stdout.Reset()

	resetFlags(t, editCmd)
	setFlag(t, editCmd, "end", "18:00")
	editEntry(editCmd, "1")

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Updated 2024-05-02 09:00-18:00: 9h 00m worked") {
		t.Errorf("expected recomputed work time, got: %s", stdout.String())
	}
}

func TestEditEntry_KeepsUnnamedFields(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	resetFlags(t, addCmd)
	setFlag(t, addCmd, "date", "2024-05-02")
	setFlag(t, addCmd, "start", "09:00")
	setFlag(t, addCmd, "end", "17:00")
	setFlag(t, addCmd, "note", "keep me")
	addEntry(addCmd)
	stdout.Reset()

	resetFlags(t, editCmd)
	setFlag(t, editCmd, "break", "60")
	editEntry(editCmd, "1")

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}

	stdout.Reset()
	listEntries()
	out := stdout.String()
	if !strings.Contains(out, "keep me") {
		t.Errorf("expected note to survive the edit, got: %s", out)
	}
	if !strings.Contains(out, "7h 00m") {
		t.Errorf("expected worked time with the new break, got: %s", out)
	}
}

func TestEditEntry_NoFlags(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")

	resetFlags(t, editCmd)
	editEntry(editCmd, "1")

	if !strings.Contains(stderr.String(), "At least one of") {
		t.Errorf("expected a flag-required error, got: %s", stderr.String())
	}
}

func TestEditEntry_InvalidIndex(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")

	resetFlags(t, editCmd)
	setFlag(t, editCmd, "end", "18:00")
	editEntry(editCmd, "7")

	if !strings.Contains(stderr.String(), "out of range") {
		t.Errorf("expected out of range error, got: %s", stderr.String())
	}
}

func TestEditEntry_LockedMonth(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")
	toggleLock("2024-05")

	resetFlags(t, editCmd)
	setFlag(t, editCmd, "end", "18:00")
	editEntry(editCmd, "1")

	if !strings.Contains(stderr.String(), "Failed to edit entry") {
		t.Errorf("expected locked month to reject the edit, got: %s", stderr.String())
	}
}

func TestEditEntry_LockedTargetMonth(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")
	toggleLock("2024-06")

	// Moving the entry into a locked month must also be rejected.
	resetFlags(t, editCmd)
	setFlag(t, editCmd, "date", "2024-06-02")
	editEntry(editCmd, "1")

	if !strings.Contains(stderr.String(), "Failed to edit entry") {
		t.Errorf("expected locked target month to reject the edit, got: %s", stderr.String())
	}
}

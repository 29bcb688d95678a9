package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportJSON_RoundTripsThroughImport(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:30", "30")
	stdout.Reset()

	exportJSON()
	if stderr.Len() > 0 {
		t.Fatalf("unexpected stderr output: %s", stderr.String())
	}
	backup := stdout.String()
	if !strings.Contains(backup, `"exportedAt"`) {
		t.Errorf("expected export envelope, got: %s", backup)
	}
	if !strings.Contains(backup, "2024-05-02") {
		t.Errorf("expected entry in export, got: %s", backup)
	}

	// Mutate, then import the backup over it.
	addTestEntry(t, "2024-05-03", "08:00", "12:00", "")

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(backup), 0644); err != nil {
		t.Fatalf("write backup: %v", err)
	}

	stdout.Reset()
	yesFlag = true
	defer func() { yesFlag = false }()
	runImport(path)

	if stderr.Len() > 0 {
		t.Fatalf("unexpected stderr output: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Imported 1 entries") {
		t.Errorf("expected import confirmation, got: %s", stdout.String())
	}

	stdout.Reset()
	listEntries()
	out := stdout.String()
	if !strings.Contains(out, "2024-05-02") {
		t.Errorf("expected backed-up entry after import, got: %s", out)
	}
	if strings.Contains(out, "2024-05-03") {
		t.Errorf("expected later entry to be replaced, got: %s", out)
	}
}

func TestRunImport_RejectsNonListEntries(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")

	path := filepath.Join(t.TempDir(), "bad.json")
	payload := `{"exportedAt":"2024-05-01T00:00:00Z","data":{"entries":{"0":{}}}}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	yesFlag = true
	defer func() { yesFlag = false }()
	runImport(path)

	if !strings.Contains(stderr.String(), "Import rejected") {
		t.Errorf("expected rejection, got: %s", stderr.String())
	}

	// Nothing changed.
	stdout.Reset()
	listEntries()
	if !strings.Contains(stdout.String(), "2024-05-02") {
		t.Errorf("expected existing state to survive a rejected import, got: %s", stdout.String())
	}
}

func TestRunImport_MissingFile(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	runImport(filepath.Join(t.TempDir(), "nope.json"))

	if !strings.Contains(stderr.String(), "Failed to read import file") {
		t.Errorf("expected read error, got: %s", stderr.String())
	}
}

func TestRunImport_CancelledPrompt(t *testing.T) {
	d, stdout, _ := testDeps(t)
	d.Stdin = strings.NewReader("n\n")
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:00", "")
	stdout.Reset()

	exportJSON()
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, stdout.Bytes(), 0644); err != nil {
		t.Fatalf("write backup: %v", err)
	}

	stdout.Reset()
	runImport(path)

	if !strings.Contains(stdout.String(), "Import cancelled") {
		t.Errorf("expected cancellation message, got: %s", stdout.String())
	}
}

func TestExportCSV_FilteredView(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:30", "30")
	addTestEntry(t, "2024-06-01", "09:00", "17:00", "")
	stdout.Reset()

	exportCSV()

	if stderr.Len() > 0 {
		t.Fatalf("unexpected stderr output: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "date,start,end,breakMins,workMins,workHours,note") {
		t.Errorf("expected CSV header, got: %s", out)
	}
	if !strings.Contains(out, "2024-05-02,09:00,17:30,30,480,8.00,") {
		t.Errorf("expected entry row, got: %s", out)
	}
	if strings.Contains(out, "2024-06-01") {
		t.Errorf("expected CSV to honor the filter, got: %s", out)
	}
}

func TestRunReport(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	setMonth("2024-05")
	addTestEntry(t, "2024-05-02", "09:00", "17:30", "30")
	stdout.Reset()

	runReport()

	if stderr.Len() > 0 {
		t.Fatalf("unexpected stderr output: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Overtime Report: ToolStack") {
		t.Errorf("expected report header, got: %s", out)
	}
	if !strings.Contains(out, "Period: 2024-05") {
		t.Errorf("expected period line, got: %s", out)
	}
	if !strings.Contains(out, "2024-05-02") {
		t.Errorf("expected entry row, got: %s", out)
	}
}

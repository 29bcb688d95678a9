package cmd

import (
	"strings"
	"testing"
)

func TestRunSettings_Show(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, settingsCmd)
	runSettings(settingsCmd)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Standard day: 8h 00m (480 minutes)") {
		t.Errorf("expected default standard day, got: %s", out)
	}
	if !strings.Contains(out, "Rounding step: 0 minutes") {
		t.Errorf("expected default rounding step, got: %s", out)
	}
}

func TestRunSettings_Update(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, settingsCmd)
	setFlag(t, settingsCmd, "standard-day", "450")
	setFlag(t, settingsCmd, "rounding", "15")
	runSettings(settingsCmd)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Standard day: 450 minutes, rounding step: 15 minutes") {
		t.Errorf("expected updated settings, got: %s", stdout.String())
	}

	// The new rounding step applies to the next save.
	stdout.Reset()
	addTestEntry(t, "2024-05-02", "09:00", "10:37", "")
	if !strings.Contains(stdout.String(), "1h 30m worked") {
		t.Errorf("expected 97 minutes rounded down to 90, got: %s", stdout.String())
	}
}

func TestRunSettings_InvalidRounding(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, settingsCmd)
	setFlag(t, settingsCmd, "rounding", "7")
	runSettings(settingsCmd)

	if !strings.Contains(stderr.String(), "Rounding step must be 0, 5 or 15") {
		t.Errorf("expected rounding validation error, got: %s", stderr.String())
	}
}

func TestRunSettings_InvalidStandardDay(t *testing.T) {
	d, _, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, settingsCmd)
	setFlag(t, settingsCmd, "standard-day", "-10")
	runSettings(settingsCmd)

	if !strings.Contains(stderr.String(), "Standard day must be a positive number") {
		t.Errorf("expected standard day validation error, got: %s", stderr.String())
	}
}

func TestRunProfile_ShowDefaults(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, profileCmd)
	runProfile(profileCmd)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Organization: ToolStack") {
		t.Errorf("expected default organization, got: %s", out)
	}
	if !strings.Contains(out, "Language: EN") {
		t.Errorf("expected default language, got: %s", out)
	}
}

func TestRunProfile_Update(t *testing.T) {
	d, stdout, stderr := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, profileCmd)
	setFlag(t, profileCmd, "org", "Acme Hotel")
	setFlag(t, profileCmd, "user", "N. Garcia")
	setFlag(t, profileCmd, "language", "DE")
	runProfile(profileCmd)

	if stderr.Len() > 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Organization: Acme Hotel") {
		t.Errorf("expected updated organization, got: %s", out)
	}
	if !strings.Contains(out, "User: N. Garcia") {
		t.Errorf("expected updated user, got: %s", out)
	}
	if !strings.Contains(out, "Language: DE") {
		t.Errorf("expected updated language, got: %s", out)
	}

	// The profile survives the next session.
	stdout.Reset()
	resetFlags(t, profileCmd)
	runProfile(profileCmd)
	if !strings.Contains(stdout.String(), "Acme Hotel") {
		t.Errorf("expected profile to persist, got: %s", stdout.String())
	}
}

func TestRunProfile_InvalidLanguageCoerced(t *testing.T) {
	d, stdout, _ := testDeps(t)
	SetDeps(d)
	defer ResetDeps()

	resetFlags(t, profileCmd)
	setFlag(t, profileCmd, "language", "FR")
	runProfile(profileCmd)

	if !strings.Contains(stdout.String(), "Language: EN") {
		t.Errorf("expected unknown language to fall back to EN, got: %s", stdout.String())
	}
}

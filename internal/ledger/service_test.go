package ledger

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/profile"
)

// fakeStore keeps the records in memory and counts saves so tests can
// verify the persist-after-every-mutation contract.
type fakeStore struct {
	ledger    Ledger
	profile   profile.Profile
	defaulted bool
	saves     int
	saveErr   error
}

func (f *fakeStore) LoadLedger() (Ledger, bool, error) {
	return f.ledger, f.defaulted, nil
}

func (f *fakeStore) SaveLedger(l *Ledger) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.ledger = *l
	f.saves++
	return nil
}

func (f *fakeStore) LoadProfile() (profile.Profile, bool, error) {
	return f.profile, false, nil
}

func (f *fakeStore) SaveProfile(p profile.Profile) error {
	f.profile = p
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{ledger: Default("2024-05"), profile: profile.Default()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(store, logger)
	if err != nil {
		t.Fatalf("NewService() returned unexpected error: %v", err)
	}
	return svc, store
}

func TestService_AddPersists(t *testing.T) {
	svc, store := newTestService(t)

	e, err := svc.Add(entry.Draft{Date: "2024-05-02", Start: "09:00", End: "17:00"})
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("expected 1 save after Add, got %d", store.saves)
	}
	if len(store.ledger.Entries) != 1 || store.ledger.Entries[0].ID != e.ID {
		t.Error("added entry was not persisted")
	}
}

func TestService_FailedMutationDoesNotPersist(t *testing.T) {
	svc, store := newTestService(t)

	if _, err := svc.Add(entry.Draft{Date: "2024-05-02"}); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("Add() error = %v, expected ErrDraftIncomplete", err)
	}
	if store.saves != 0 {
		t.Errorf("rejected mutation must not save, got %d saves", store.saves)
	}
}

func TestService_MutationChainPersistsEachStep(t *testing.T) {
	svc, store := newTestService(t)

	e, _ := svc.Add(entry.Draft{Date: "2024-05-02", Start: "09:00", End: "17:00"})
	if _, err := svc.Update(e.ID, entry.Draft{Date: "2024-05-02", Start: "08:00", End: "16:00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Duplicate(e.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleLock("2024-04"); err != nil {
		t.Fatal(err)
	}

	if store.saves != 4 {
		t.Errorf("expected 4 saves, got %d", store.saves)
	}
}

func TestService_UpdateSettingsCoerces(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.UpdateSettings(Settings{StandardDayMins: -1, RoundingStep: 7})
	if err != nil {
		t.Fatal(err)
	}
	if got.StandardDayMins != DefaultStandardDayMins || got.RoundingStep != 0 {
		t.Errorf("UpdateSettings() = %+v, expected coerced defaults", got)
	}
}

func TestService_Replace(t *testing.T) {
	svc, store := newTestService(t)
	_, _ = svc.Add(entry.Draft{Date: "2024-05-02", Start: "09:00", End: "17:00"})

	incoming := Default("2024-07")
	incoming.Entries = []entry.Entry{
		{ID: "imported", Date: "2024-07-01", Start: "09:00", End: "17:00", WorkMins: 480},
	}
	newProfile := profile.Profile{Org: "Acme", User: "ng", Language: "DE"}

	if err := svc.Replace(incoming, &newProfile); err != nil {
		t.Fatalf("Replace() returned unexpected error: %v", err)
	}

	if len(svc.Ledger().Entries) != 1 || svc.Ledger().Entries[0].ID != "imported" {
		t.Error("Replace() did not swap the entry collection")
	}
	if store.profile.Org != "Acme" {
		t.Error("Replace() did not persist the incoming profile")
	}
}

func TestService_SaveFailureSurfaces(t *testing.T) {
	svc, store := newTestService(t)
	store.saveErr = errors.New("disk full")

	if _, err := svc.Add(entry.Draft{Date: "2024-05-02", Start: "09:00", End: "17:00"}); err == nil {
		t.Error("Add() must surface a save failure")
	}
}

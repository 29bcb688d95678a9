package ledger

import (
	"fmt"
	"log/slog"

	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/profile"
)

// Store is the persistence contract the service depends on. Loads recover
// from missing or malformed records by returning defaults and
// defaulted=true; they only fail on real I/O errors.
type Store interface {
	LoadLedger() (l Ledger, defaulted bool, err error)
	SaveLedger(l *Ledger) error
	LoadProfile() (p profile.Profile, defaulted bool, err error)
	SaveProfile(p profile.Profile) error
}

// Service owns the in-memory ledger and profile for the running session.
// Every command mutates in memory and persists synchronously before
// returning, so the store always reflects the last completed command.
type Service struct {
	store   Store
	logger  *slog.Logger
	ledger  Ledger
	profile profile.Profile

	// Defaulted reports whether the ledger record was rebuilt from schema
	// defaults at load time instead of being read back intact.
	Defaulted bool
}

// NewService loads the ledger and profile from the store.
func NewService(store Store, logger *slog.Logger) (*Service, error) {
	l, defaulted, err := store.LoadLedger()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	p, _, err := store.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if defaulted {
		logger.Debug("ledger record defaulted on load")
	}

	return &Service{
		store:     store,
		logger:    logger,
		ledger:    l,
		profile:   p,
		Defaulted: defaulted,
	}, nil
}

// Ledger returns the in-memory ledger. Mutations must go through the
// service so they are persisted.
func (s *Service) Ledger() *Ledger {
	return &s.ledger
}

// Profile returns the shared profile record.
func (s *Service) Profile() profile.Profile {
	return s.profile
}

func (s *Service) persist() error {
	if err := s.store.SaveLedger(&s.ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// Add commits a draft as a new entry and persists.
func (s *Service) Add(d entry.Draft) (entry.Entry, error) {
	e, err := s.ledger.AddEntry(d)
	if err != nil {
		return entry.Entry{}, err
	}
	s.logger.Debug("entry added", slog.String("id", e.ID), slog.String("date", e.Date), slog.Int("workMins", e.WorkMins))
	return e, s.persist()
}

// Update applies a draft to an existing entry and persists.
func (s *Service) Update(id string, d entry.Draft) (entry.Entry, error) {
	e, err := s.ledger.UpdateEntry(id, d)
	if err != nil {
		return entry.Entry{}, err
	}
	s.logger.Debug("entry updated", slog.String("id", e.ID), slog.Int("workMins", e.WorkMins))
	return e, s.persist()
}

// Delete removes an entry and persists. The caller has already confirmed
// the destructive action.
func (s *Service) Delete(id string) (entry.Entry, error) {
	e, err := s.ledger.DeleteEntry(id)
	if err != nil {
		return entry.Entry{}, err
	}
	s.logger.Debug("entry deleted", slog.String("id", e.ID), slog.String("date", e.Date))
	return e, s.persist()
}

// Duplicate clones an entry and persists.
func (s *Service) Duplicate(id string) (entry.Entry, error) {
	e, err := s.ledger.DuplicateEntry(id)
	if err != nil {
		return entry.Entry{}, err
	}
	s.logger.Debug("entry duplicated", slog.String("source", id), slog.String("id", e.ID))
	return e, s.persist()
}

// ToggleLock flips a month's lock flag and persists.
func (s *Service) ToggleLock(month string) (locked bool, err error) {
	locked, err = s.ledger.ToggleLockMonth(month)
	if err != nil {
		return false, err
	}
	s.logger.Debug("month lock toggled", slog.String("month", month), slog.Bool("locked", locked))
	return locked, s.persist()
}

// SetActiveMonth persists a month-mode filter.
func (s *Service) SetActiveMonth(month string) error {
	if err := s.ledger.SetActiveMonth(month); err != nil {
		return err
	}
	return s.persist()
}

// SetRange persists a range-mode filter.
func (s *Service) SetRange(from, to string) error {
	if err := s.ledger.SetRange(from, to); err != nil {
		return err
	}
	return s.persist()
}

// ClearRange persists a switch back to month mode.
func (s *Service) ClearRange() error {
	s.ledger.ClearRange()
	return s.persist()
}

// UpdateSettings persists new totals settings. An out-of-range rounding
// step or non-positive standard day is coerced the same way a loaded
// record would be.
func (s *Service) UpdateSettings(settings Settings) (Settings, error) {
	if settings.StandardDayMins <= 0 {
		settings.StandardDayMins = DefaultStandardDayMins
	}
	if !validRoundingStep(settings.RoundingStep) {
		settings.RoundingStep = 0
	}
	s.ledger.Settings = settings
	return settings, s.persist()
}

// UpdateProfile persists the shared profile record.
func (s *Service) UpdateProfile(p profile.Profile) error {
	s.profile = p.Normalized()
	return s.store.SaveProfile(s.profile)
}

// Replace swaps the whole ledger state, used by import after the incoming
// payload has been validated as a unit. The incoming state is normalized
// the same way a loaded record is.
func (s *Service) Replace(l Ledger, p *profile.Profile) error {
	l.Normalize(entry.CurrentMonth())
	s.ledger = l
	if p != nil {
		s.profile = p.Normalized()
		if err := s.store.SaveProfile(s.profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}
	s.logger.Debug("ledger replaced by import", slog.Int("entries", len(l.Entries)))
	return s.persist()
}

// Package storage persists the ledger and profile records to a local
// key-value store in the user's config directory. Loads never fail on
// corrupted records; they fall back to schema defaults and report that they
// did, so callers can tell a fresh start from a recovery.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/profile"
)

const (
	// AppName is the application name used for the data directory
	AppName = "overtimeit"
	// DBFile is the name of the key-value store file
	DBFile = "overtimeit.db"

	// LedgerKey is the per-module storage namespace of the ledger record.
	LedgerKey = "toolstack." + ledger.AppID + "." + ledger.SchemaVersion
	// ProfileKey is the shared profile record key, common to all modules.
	ProfileKey = "toolstack.profile.v1"
)

// GetDataDir returns the application data directory, creating it if needed.
// Uses os.UserConfigDir() for cross-platform XDG-compliant placement.
func GetDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// Store is a buntdb-backed record store for the ledger and profile.
type Store struct {
	db     *buntdb.DB
	logger *slog.Logger
}

// Open opens (or creates) the key-value store in the given directory.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	db, err := buntdb.Open(filepath.Join(dir, DBFile))
	if err != nil {
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// get reads a raw record value. A missing key is reported as ok=false, not
// as an error.
func (s *Store) get(key string) (value string, ok bool, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
}

// LoadLedger reads the ledger record. A missing or malformed record is
// replaced with the documented defaults and defaulted=true; malformed
// individual entries inside an otherwise readable record are coerced or
// dropped field by field without marking the load as defaulted.
func (s *Store) LoadLedger() (l ledger.Ledger, defaulted bool, err error) {
	currentMonth := entry.CurrentMonth()

	raw, ok, err := s.get(LedgerKey)
	if err != nil {
		return ledger.Ledger{}, false, err
	}
	if !ok {
		return ledger.Default(currentMonth), true, nil
	}

	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		s.logger.Debug("ledger record malformed, falling back to defaults", slog.String("error", err.Error()))
		return ledger.Default(currentMonth), true, nil
	}

	l.Normalize(currentMonth)
	return l, false, nil
}

// SaveLedger stamps meta.updatedAt and writes the ledger record.
func (s *Store) SaveLedger(l *ledger.Ledger) error {
	l.Meta.AppID = ledger.AppID
	l.Meta.Version = ledger.SchemaVersion
	l.Meta.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	raw, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return s.set(LedgerKey, string(raw))
}

// LoadProfile reads the shared profile record, falling back to the default
// profile when missing or malformed.
func (s *Store) LoadProfile() (p profile.Profile, defaulted bool, err error) {
	raw, ok, err := s.get(ProfileKey)
	if err != nil {
		return profile.Profile{}, false, err
	}
	if !ok {
		return profile.Default(), true, nil
	}

	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Debug("profile record malformed, falling back to defaults", slog.String("error", err.Error()))
		return profile.Default(), true, nil
	}

	return p.Normalized(), false, nil
}

// SaveProfile writes the shared profile record.
func (s *Store) SaveProfile(p profile.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.set(ProfileKey, string(raw))
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"

	"github.com/toolstack/overtimeit/internal/config"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/storage"
)

// LogFile is the name of the JSON debug log in the data directory.
const LogFile = "overtimeit.log"

// session bundles everything a command needs: the loaded ledger service,
// the app config and the resources to release when the command finishes.
// The file mutex makes the running command the sole owner of the ledger.
type session struct {
	svc *ledger.Service
	cfg config.Config

	store   *storage.Store
	lock    *filemutex.FileMutex
	logFile *os.File
}

// openSession resolves the data directory, acquires the session lock, opens
// the store and loads the ledger. On failure it reports to stderr and exits;
// the returned ok is false so callers can bail out in tests where Exit does
// not terminate.
func openSession() (*session, bool) {
	dir, err := deps.DataDir()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to determine data directory")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	configPath, err := deps.ConfigPath()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to determine config location")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to read config file")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	lock, err := storage.AcquireSessionLock(dir)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to acquire the session lock")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	logger, logFile := newLogger(dir)

	store, err := storage.Open(dir, logger)
	if err != nil {
		_ = lock.Unlock()
		fmt.Fprintln(deps.Stderr, "Error: Failed to open the ledger store")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	svc, err := ledger.NewService(store, logger)
	if err != nil {
		_ = store.Close()
		_ = lock.Unlock()
		fmt.Fprintln(deps.Stderr, "Error: Failed to load the ledger")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}

	// A freshly defaulted ledger picks up the configured defaults.
	if svc.Defaulted {
		if _, err := svc.UpdateSettings(ledger.Settings{
			StandardDayMins: cfg.DefaultStandardDayMins,
			RoundingStep:    cfg.DefaultRoundingStep,
		}); err != nil {
			_ = store.Close()
			_ = lock.Unlock()
			fmt.Fprintln(deps.Stderr, "Error: Failed to initialize the ledger")
			fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return nil, false
		}
	}

	return &session{svc: svc, cfg: cfg, store: store, lock: lock, logFile: logFile}, true
}

func (s *session) close() {
	_ = s.store.Close()
	_ = s.lock.Unlock()
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// newLogger opens the JSON debug log in the data directory. Logging is
// diagnostic only; when the file cannot be opened the logger discards
// records instead of failing the command.
func newLogger(dir string) (*slog.Logger, *os.File) {
	f, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f
}

package storage

import (
	"path/filepath"

	"github.com/alexflint/go-filemutex"
)

// LockFile is the name of the session lock file.
const LockFile = "overtimeit.lock"

// AcquireSessionLock takes an exclusive file lock on the data directory.
// The ledger is owned by a single running session; a second invocation
// blocks here until the first one releases the lock.
func AcquireSessionLock(dir string) (*filemutex.FileMutex, error) {
	m, err := filemutex.New(filepath.Join(dir, LockFile))
	if err != nil {
		return nil, err
	}
	if err := m.Lock(); err != nil {
		return nil, err
	}
	return m, nil
}

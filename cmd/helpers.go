package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/toolstack/overtimeit/internal/entry"
)

// fail reports a command failure to stderr and exits with code 1.
func fail(msg string, err error) {
	fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	deps.Exit(1)
}

// entryAt resolves a user-facing 1-based index into the sorted filtered
// view, the same order the list output shows.
func entryAt(s *session, indexStr string) (entry.Entry, bool) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		fail(fmt.Sprintf("Invalid index '%s'. Index must be a number", indexStr), nil)
		return entry.Entry{}, false
	}

	entries := s.svc.Ledger().Filtered()
	if len(entries) == 0 {
		fail("No entries in the current view", nil)
		return entry.Entry{}, false
	}
	if index < 1 || index > len(entries) {
		fail(fmt.Sprintf("Index %d out of range. Valid range: 1-%d", index, len(entries)), nil)
		return entry.Entry{}, false
	}

	return entries[index-1], true
}

// promptConfirmation asks the user to confirm a destructive action.
// Returns true only on an explicit 'y' or 'Y'.
func promptConfirmation(prompt string) bool {
	fmt.Fprint(deps.Stdout, prompt+" [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}

// Package export implements the JSON export/import contract and the CSV
// export of the filtered view.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/profile"
)

// ErrInvalidImport marks a payload whose data.entries is not a list. The
// import is rejected as a unit; the prior state stays untouched.
var ErrInvalidImport = errors.New("invalid import file: data.entries must be a list")

// Payload is the JSON export envelope. Profile is optional on import; an
// absent profile keeps the current one.
type Payload struct {
	ExportedAt string           `json:"exportedAt"`
	Profile    *profile.Profile `json:"profile,omitempty"`
	Data       ledger.Ledger    `json:"data"`
}

// ExportJSON renders the full ledger plus profile as a pretty-printed
// payload.
func ExportJSON(l *ledger.Ledger, p profile.Profile) ([]byte, error) {
	payload := Payload{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:    &p,
		Data:       *l,
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ParseImport validates and decodes an import payload. The whole payload is
// rejected when it is not JSON or when data.entries is missing or not a
// list; nothing is partially applied.
func ParseImport(raw []byte) (*Payload, error) {
	var probe struct {
		Data struct {
			Entries json.RawMessage `json:"entries"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	entries := bytes.TrimSpace(probe.Data.Entries)
	if len(entries) == 0 || entries[0] != '[' {
		return nil, ErrInvalidImport
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return &payload, nil
}

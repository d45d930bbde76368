package etl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Ledger is a JSON-lines progress log, one file per entity. Every
// successfully migrated source id is appended, so an interrupted run can
// be restarted and skip rows that already landed. Deleting the file
// forces a full re-run.
type Ledger struct {
	path string
	done map[string]bool
	file *os.File
}

type ledgerEntry struct {
	ID     string    `json:"id"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// OpenLedger loads any prior entries for the entity and opens the file
// for appending.
func OpenLedger(dir, entity string) (*Ledger, error) {
	path := filepath.Join(dir, entity+".ledger")
	done := make(map[string]bool)

	if existing, err := os.Open(path); err == nil {
		scanner := bufio.NewScanner(existing)
		for scanner.Scan() {
			var entry ledgerEntry
			if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
				// a torn last line from a crashed run is expected; the
				// row it described simply gets retried
				continue
			}
			if entry.Status == "migrated" {
				done[entry.ID] = true
			}
		}
		existing.Close()
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read ledger %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open ledger %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %s for append: %w", path, err)
	}

	return &Ledger{path: path, done: done, file: file}, nil
}

// Done reports whether the source id already succeeded in a prior run.
func (l *Ledger) Done(id string) bool {
	return l.done[id]
}

// Mark appends a migrated entry for the source id.
func (l *Ledger) Mark(id string) error {
	entry := ledgerEntry{ID: id, Status: "migrated", At: time.Now().UTC()}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append to ledger %s: %w", l.path, err)
	}
	l.done[id] = true
	return nil
}

func (l *Ledger) Close() error {
	return l.file.Close()
}

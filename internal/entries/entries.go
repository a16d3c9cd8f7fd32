package entries

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sutanpu/internal/logs"
)

// MaxNoteLen is the longest note a day may carry, in runes. Enforcement
// happens at the input layer; the store persists what it is given.
const MaxNoteLen = 100

// DayEntry is the recorded state of one calendar day: the applied stamp
// glyphs in toggle order, and a short free-text note. A day with no stored
// entry is equivalent to an entry with no stamps and an empty note.
type DayEntry struct {
	Stamps []string `json:"stamps"`
	Note   string   `json:"note"`
}

// IsEmpty reports whether the entry carries no information.
func (e DayEntry) IsEmpty() bool {
	return len(e.Stamps) == 0 && e.Note == ""
}

// Store maps day keys (YYYY-MM-DD) to day entries and keeps the whole
// mapping persisted as one JSON blob. All access happens on the UI event
// loop, so the store does no locking.
type Store struct {
	path string
	days map[string]DayEntry
}

// Load reads the entries blob at path. A missing or malformed blob yields
// an empty store; startup never fails on bad data.
func Load(path string) *Store {
	s := &Store{path: path, days: make(map[string]DayEntry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Printf("could not read entries blob %s: %v", path, err)
		}
		return s
	}

	var days map[string]DayEntry
	if err := json.Unmarshal(data, &days); err != nil {
		logs.Logger.Printf("corrupt entries blob %s, starting empty: %v", path, err)
		return s
	}
	if days != nil {
		s.days = days
	}
	return s
}

// Get returns the entry for key, or the canonical empty entry when absent.
func (s *Store) Get(key string) DayEntry {
	return s.days[key]
}

// Set replaces the entry for key wholesale and persists the full mapping.
// Setting an empty entry removes the key so empty days are never stored.
func (s *Store) Set(key string, stamps []string, note string) error {
	e := DayEntry{Stamps: stamps, Note: note}
	if e.IsEmpty() {
		delete(s.days, key)
	} else {
		s.days[key] = e
	}
	return s.persist()
}

// Len returns the number of days with recorded entries.
func (s *Store) Len() int {
	return len(s.days)
}

// Keys returns the stored day keys in unspecified order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.days, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding entries: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", s.path, err)
	}
	return nil
}

// ToggleStamps returns stamps with icon removed if present, appended
// otherwise. Membership is by glyph; order of earlier stamps is preserved.
func ToggleStamps(stamps []string, icon string) []string {
	for i, s := range stamps {
		if s == icon {
			out := make([]string, 0, len(stamps)-1)
			out = append(out, stamps[:i]...)
			return append(out, stamps[i+1:]...)
		}
	}
	out := make([]string, 0, len(stamps)+1)
	out = append(out, stamps...)
	return append(out, icon)
}

package themes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sutanpu/internal/logs"
)

// Store persists the selected theme id as its own small blob.
type Store struct {
	path string
	id   string
}

// Load reads the theme preference at path. Missing, malformed, or unknown
// values fall back to the default theme.
func Load(path string) *Store {
	s := &Store{path: path, id: DefaultID}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Printf("could not read theme preference %s: %v", path, err)
		}
		return s
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		logs.Logger.Printf("corrupt theme preference %s, using default: %v", path, err)
		return s
	}
	s.id = ByID(id).ID
	return s
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	return ByID(s.id)
}

// Select makes id the active theme and persists the choice. Unknown ids
// select the default theme.
func (s *Store) Select(id string) error {
	s.id = ByID(id).ID
	data, err := json.Marshal(s.id)
	if err != nil {
		return fmt.Errorf("error encoding theme preference: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", s.path, err)
	}
	return nil
}

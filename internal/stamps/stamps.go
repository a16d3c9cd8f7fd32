package stamps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sutanpu/internal/logs"
)

// MaxLabelLen is the longest user-facing label, in runes.
const MaxLabelLen = 10

// Stamp is one catalog definition: a glyph and a short label. The ID is
// stable; calendar entries reference the glyph, not the ID, so editing or
// deleting a definition never rewrites history.
type Stamp struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Defaults returns a fresh copy of the factory stamp set.
func Defaults() []Stamp {
	return []Stamp{
		{ID: "default-star", Icon: "⭐", Label: "できた"},
		{ID: "default-heart", Icon: "💖", Label: "いいきぶん"},
		{ID: "default-run", Icon: "🏃", Label: "うんどう"},
		{ID: "default-book", Icon: "📖", Label: "べんきょう"},
		{ID: "default-meal", Icon: "🍱", Label: "じすい"},
		{ID: "default-clean", Icon: "🧹", Label: "そうじ"},
		{ID: "default-med", Icon: "💊", Label: "くすり"},
		{ID: "default-sleep", Icon: "😴", Label: "はやね"},
	}
}

var defaultIDs = func() map[string]bool {
	ids := make(map[string]bool)
	for _, s := range Defaults() {
		ids[s.ID] = true
	}
	return ids
}()

// Catalog is the ordered, user-editable stamp list, persisted in full as one
// JSON blob on every mutation.
type Catalog struct {
	path   string
	stamps []Stamp
}

// Load reads the catalog blob at path. A missing or malformed blob yields
// the factory defaults.
func Load(path string) *Catalog {
	c := &Catalog{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Printf("could not read stamp catalog %s: %v", path, err)
		}
		c.stamps = Defaults()
		return c
	}

	var stamps []Stamp
	if err := json.Unmarshal(data, &stamps); err != nil {
		logs.Logger.Printf("corrupt stamp catalog %s, using defaults: %v", path, err)
		c.stamps = Defaults()
		return c
	}
	c.stamps = stamps
	return c
}

// List returns the catalog in display order.
func (c *Catalog) List() []Stamp {
	out := make([]Stamp, len(c.stamps))
	copy(out, c.stamps)
	return out
}

// Get returns the stamp with the given id.
func (c *Catalog) Get(id string) (Stamp, bool) {
	for _, s := range c.stamps {
		if s.ID == id {
			return s, true
		}
	}
	return Stamp{}, false
}

// Add appends a new stamp and persists. Icon and label are trimmed; if
// either trims to empty the call is a no-op.
func (c *Catalog) Add(icon, label string) (*Stamp, error) {
	icon = strings.TrimSpace(icon)
	label = strings.TrimSpace(label)
	if icon == "" || label == "" {
		return nil, nil
	}

	s := Stamp{ID: c.newID(), Icon: icon, Label: label}
	c.stamps = append(c.stamps, s)
	if err := c.persist(); err != nil {
		return nil, err
	}
	return &s, nil
}

// EditLabel replaces the label of the stamp with the given id, in place.
// A label that trims to empty rejects the edit.
func (c *Catalog) EditLabel(id, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}
	for i := range c.stamps {
		if c.stamps[i].ID == id {
			c.stamps[i].Label = label
			return c.persist()
		}
	}
	return nil
}

// Remove deletes the stamp with the given id, keeping the order of the rest.
// Historical day entries keep the glyph regardless.
func (c *Catalog) Remove(id string) error {
	for i, s := range c.stamps {
		if s.ID == id {
			c.stamps = append(c.stamps[:i], c.stamps[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// ResetToDefaults discards the whole catalog, custom stamps included, and
// restores the factory set. Confirmation is the caller's responsibility.
func (c *Catalog) ResetToDefaults() error {
	c.stamps = Defaults()
	return c.persist()
}

// IsFactoryDefault reports whether id belongs to the original factory set.
func IsFactoryDefault(id string) bool {
	return defaultIDs[id]
}

// newID derives a time-based id distinct from every existing one. Two adds
// within the same millisecond bump the suffix.
func (c *Catalog) newID() string {
	base := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("custom-%d", base)
		if _, exists := c.Get(id); !exists {
			return id
		}
		base++
	}
}

func (c *Catalog) persist() error {
	data, err := json.MarshalIndent(c.stamps, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding stamp catalog: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %v", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", c.path, err)
	}
	return nil
}

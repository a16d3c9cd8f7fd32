package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sutanpu/internal/stamps"
	"sutanpu/internal/themes"
)

func testManager(t *testing.T) StampManagerModel {
	t.Helper()
	catalog := stamps.Load(filepath.Join(t.TempDir(), "stamps.json"))
	m := NewStampManagerModel(catalog, NewStyles(themes.ByID(themes.DefaultID)))
	m.SetSize(80, 24)
	return m
}

func TestStampManager_ListShowsCatalog(t *testing.T) {
	m := testManager(t)
	if len(m.visible) != len(stamps.Defaults()) {
		t.Errorf("expected %d visible stamps, got %d", len(stamps.Defaults()), len(m.visible))
	}
}

func TestStampManager_FuzzyFilter(t *testing.T) {
	m := testManager(t)
	m.filter = "うんどう"
	m.refresh()

	if len(m.visible) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.visible))
	}
	if m.visible[0].Icon != "🏃" {
		t.Errorf("expected the exercise stamp, got %+v", m.visible[0])
	}

	m.filter = ""
	m.refresh()
	if len(m.visible) != len(stamps.Defaults()) {
		t.Errorf("clearing the filter should restore the full list")
	}
}

func TestStampManager_DeleteUnderCursor(t *testing.T) {
	m := testManager(t)
	first := m.visible[0].ID

	m, _ = m.Update(key("d"))
	if len(m.visible) != len(stamps.Defaults())-1 {
		t.Fatalf("expected one fewer stamp, got %d", len(m.visible))
	}
	if m.visible[0].ID == first {
		t.Error("expected the first stamp to be gone")
	}
}

func TestStampManager_ResetRequiresConfirmation(t *testing.T) {
	m := testManager(t)
	m.catalog.Add("🎸", "ギター")
	m.refresh()

	m, _ = m.Update(key("r"))
	if m.mode != stampModeConfirmReset {
		t.Fatalf("expected confirmation mode, got %v", m.mode)
	}

	// Declining keeps the custom stamp.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = m.Update(cmd())
	if len(m.catalog.List()) != len(stamps.Defaults())+1 {
		t.Error("declined reset must not touch the catalog")
	}

	// Confirming restores the factory set.
	m, _ = m.Update(key("r"))
	m, cmd = m.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = m.Update(cmd())
	if len(m.catalog.List()) != len(stamps.Defaults()) {
		t.Errorf("expected factory set after reset, got %d stamps", len(m.catalog.List()))
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sutanpu/internal/entries"
	"sutanpu/internal/holidays"
	"sutanpu/internal/themes"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testCalendar(t *testing.T) CalendarModel {
	t.Helper()
	store := entries.Load(filepath.Join(t.TempDir(), "entries.json"))
	m := NewCalendarModel(store, holidays.NewLookup(), NewStyles(themes.ByID(themes.DefaultID)))
	m.SetSize(80, 24)
	return m
}

func TestCalendar_MonthKeys(t *testing.T) {
	m := testCalendar(t)
	start := m.viewMonth

	m, _ = m.Update(key("L"))
	if !m.viewMonth.Equal(start.AddDate(0, 1, 0)) {
		t.Errorf("expected next month, got %v", m.viewMonth)
	}

	m, _ = m.Update(key("H"))
	m, _ = m.Update(key("H"))
	if !m.viewMonth.Equal(start.AddDate(0, -1, 0)) {
		t.Errorf("expected previous month, got %v", m.viewMonth)
	}
}

func TestCalendar_CursorFollowsIntoAdjacentMonth(t *testing.T) {
	m := testCalendar(t)
	m.viewMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	m.cursorDate = time.Date(2026, time.January, 31, 0, 0, 0, 0, time.Local)

	m, _ = m.Update(key("l"))
	if m.viewMonth.Month() != time.February {
		t.Errorf("expected view to follow cursor into February, got %v", m.viewMonth.Month())
	}
	if m.cursorDate.Day() != 1 {
		t.Errorf("expected cursor on Feb 1, got %v", m.cursorDate)
	}
}

func TestCalendar_EnterOpensCursorDay(t *testing.T) {
	m := testCalendar(t)
	m.cursorDate = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.Local)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OpenDayMsg)
	if !ok {
		t.Fatalf("expected OpenDayMsg, got %T", cmd())
	}
	if msg.Key != "2026-01-15" {
		t.Errorf("expected 2026-01-15, got %q", msg.Key)
	}
}

func TestCalendar_MouseSwipe(t *testing.T) {
	m := testCalendar(t)
	start := m.viewMonth

	// Leftward drag over the threshold: next month.
	m, _ = m.Update(tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 10, Action: tea.MouseActionRelease})
	if !m.viewMonth.Equal(start.AddDate(0, 1, 0)) {
		t.Errorf("expected swipe to next month, got %v", m.viewMonth)
	}

	// A short drag is a tap and must not navigate.
	m, _ = m.Update(tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 38, Action: tea.MouseActionRelease})
	if !m.viewMonth.Equal(start.AddDate(0, 1, 0)) {
		t.Errorf("tap must not navigate, got %v", m.viewMonth)
	}
}

func TestCalendar_ViewRenders(t *testing.T) {
	m := testCalendar(t)
	m.viewMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	m.cursorDate = m.viewMonth

	out := m.View()
	if out == "" {
		t.Fatal("expected non-empty view")
	}
	for _, want := range []string{"2026年 1月", "日", "土", "元日"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

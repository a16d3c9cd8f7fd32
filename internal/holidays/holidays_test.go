package holidays

import (
	"testing"
	"time"
)

func TestForMonth_January2026(t *testing.T) {
	l := NewLookup()
	m := l.ForMonth(2026, time.January)

	if name := m["2026-01-01"]; name != "元日" {
		t.Errorf("expected 元日 on 2026-01-01, got %q", name)
	}
	if name := m["2026-01-12"]; name != "成人の日" {
		t.Errorf("expected 成人の日 on 2026-01-12, got %q", name)
	}
	if len(m) != 2 {
		t.Errorf("expected 2 holidays in January 2026, got %d: %v", len(m), m)
	}
}

func TestForMonth_UncoveredYearIsEmpty(t *testing.T) {
	l := NewLookup()
	m := l.ForMonth(1999, time.May)
	if len(m) != 0 {
		t.Errorf("expected empty map for uncovered year, got %v", m)
	}
}

func TestForMonth_NoBleedAcrossMonths(t *testing.T) {
	l := NewLookup()
	m := l.ForMonth(2026, time.April)
	if _, ok := m["2026-05-03"]; ok {
		t.Error("May holiday leaked into April")
	}
	if name := m["2026-04-29"]; name != "昭和の日" {
		t.Errorf("expected 昭和の日, got %q", name)
	}
}

func TestForMonth_Cached(t *testing.T) {
	l := NewLookup()
	a := l.ForMonth(2026, time.September)
	b := l.ForMonth(2026, time.September)
	if len(a) == 0 {
		t.Fatal("expected holidays in September 2026")
	}
	if len(a) != len(b) {
		t.Fatalf("cache returned different sizes: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("cache returned different data for %s", k)
		}
	}
}

func TestForMonth_BadRulesetDegradesToEmpty(t *testing.T) {
	if _, err := NewRuleset([]byte("{not yaml")); err == nil {
		t.Fatal("expected parse error")
	}
	l := NewLookupWith(nil)
	if m := l.ForMonth(2026, time.January); len(m) != 0 {
		t.Errorf("expected empty map without ruleset, got %v", m)
	}
}

func TestBetween_JSTBoundary(t *testing.T) {
	rs, err := NewRuleset([]byte("2026-01-01: 元日\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hs := rs.Between(
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, time.January, 31, 0, 0, 0, 0, time.Local),
	)
	if len(hs) != 1 {
		t.Fatalf("expected 1 holiday, got %d", len(hs))
	}
	// JST midnight is 15:00 UTC the previous day; a naive UTC read of the
	// instant would name 2025-12-31.
	if got := hs[0].Date.UTC().Format("2006-01-02"); got != "2025-12-31" {
		t.Fatalf("dataset anchor changed, expected UTC 2025-12-31, got %s", got)
	}

	l := NewLookupWith(rs)
	m := l.ForMonth(2026, time.January)
	if name := m["2026-01-01"]; name != "元日" {
		t.Errorf("expected key on the JST day, got map %v", m)
	}
	if _, ok := m["2025-12-31"]; ok {
		t.Error("holiday keyed by raw UTC fields")
	}
}

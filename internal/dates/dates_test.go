package dates

import (
	"testing"
	"time"
)

func TestKey_Padding(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local)
	if got := Key(d); got != "2026-03-05" {
		t.Errorf("expected 2026-03-05, got %q", got)
	}
}

func TestKey_SameDayDifferentClock(t *testing.T) {
	morning := time.Date(2026, time.January, 15, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, time.January, 15, 23, 59, 59, 0, time.Local)
	if Key(morning) != Key(night) {
		t.Errorf("expected equal keys, got %q and %q", Key(morning), Key(night))
	}
}

func TestKey_LexicographicOrder(t *testing.T) {
	earlier := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local)
	later := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	if !(Key(earlier) < Key(later)) {
		t.Errorf("expected %q < %q", Key(earlier), Key(later))
	}
}

func TestJSTKey(t *testing.T) {
	// JST midnight is 15:00 UTC the previous day. The key must name the
	// JST day regardless of the instant's own zone.
	utc := time.Date(2025, time.December, 31, 15, 0, 0, 0, time.UTC)
	if got := JSTKey(utc); got != "2026-01-01" {
		t.Errorf("expected 2026-01-01, got %q", got)
	}
	if got := JSTKey(utc.Add(-time.Second)); got != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %q", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	d, err := Parse("2026-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Key(d) != "2026-02-28" {
		t.Errorf("round trip mismatch: got %q", Key(d))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.May, 3, 1, 0, 0, 0, time.Local)
	b := time.Date(2026, time.May, 3, 22, 0, 0, 0, time.Local)
	c := time.Date(2026, time.May, 4, 0, 0, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(a, c) {
		t.Error("expected different days")
	}
}

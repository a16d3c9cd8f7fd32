package grid

import (
	"path/filepath"
	"testing"
	"time"

	"sutanpu/internal/entries"
)

func emptyStore(t *testing.T) *entries.Store {
	t.Helper()
	return entries.Load(filepath.Join(t.TempDir(), "entries.json"))
}

func TestBuild_January2026Layout(t *testing.T) {
	// January 2026 starts on a Thursday and has 31 days.
	cells := Build(2026, time.January, emptyStore(t), nil, "")

	if len(cells)%7 != 0 {
		t.Fatalf("expected full weeks, got %d cells", len(cells))
	}
	for i := 0; i < 4; i++ {
		if !cells[i].Blank {
			t.Errorf("cell %d should be blank", i)
		}
	}
	if cells[4].Blank || cells[4].Day != 1 {
		t.Fatalf("expected day 1 at index 4, got %+v", cells[4])
	}

	days := 0
	for _, c := range cells {
		if !c.Blank {
			days++
		}
	}
	if days != 31 {
		t.Errorf("expected 31 day cells, got %d", days)
	}
	// 4 leading blanks + 31 days = 35, already a complete week.
	if len(cells) != 35 {
		t.Errorf("expected 35 cells, got %d", len(cells))
	}
}

func TestBuild_TrailingBlanks(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days: exactly 4 weeks.
	cells := Build(2026, time.February, emptyStore(t), nil, "")
	if len(cells) != 28 {
		t.Errorf("expected 28 cells with no padding, got %d", len(cells))
	}

	// April 2026 starts Wednesday, 30 days: 3 + 30 = 33, padded to 35.
	cells = Build(2026, time.April, emptyStore(t), nil, "")
	if len(cells) != 35 {
		t.Fatalf("expected 35 cells, got %d", len(cells))
	}
	for _, c := range cells[33:] {
		if !c.Blank {
			t.Errorf("expected trailing blank, got %+v", c)
		}
	}
}

func TestBuild_KeysAndWeekdays(t *testing.T) {
	cells := Build(2026, time.January, emptyStore(t), nil, "")
	if cells[4].Key != "2026-01-01" {
		t.Errorf("expected 2026-01-01, got %q", cells[4].Key)
	}
	if cells[4].Weekday != time.Thursday {
		t.Errorf("expected Thursday, got %v", cells[4].Weekday)
	}
}

func TestBuild_Today(t *testing.T) {
	cells := Build(2026, time.January, emptyStore(t), nil, "2026-01-15")
	var marked int
	for _, c := range cells {
		if c.IsToday {
			marked++
			if c.Day != 15 {
				t.Errorf("wrong day marked today: %d", c.Day)
			}
		}
	}
	if marked != 1 {
		t.Errorf("expected exactly one today cell, got %d", marked)
	}
}

func TestBuild_StampOverflow(t *testing.T) {
	s := emptyStore(t)
	s.Set("2026-01-10", []string{"a", "b", "c", "d"}, "")
	s.Set("2026-01-11", []string{"a", "b", "c", "d", "e"}, "")

	cells := Build(2026, time.January, s, nil, "")
	byDay := make(map[int]Cell)
	for _, c := range cells {
		if !c.Blank {
			byDay[c.Day] = c
		}
	}

	four := byDay[10]
	if len(four.Stamps) != 4 || four.Overflow {
		t.Errorf("4 stamps must all show without marker, got %v overflow=%v", four.Stamps, four.Overflow)
	}

	five := byDay[11]
	if len(five.Stamps) != 3 || !five.Overflow {
		t.Errorf("5 stamps must show 3 plus marker, got %v overflow=%v", five.Stamps, five.Overflow)
	}
	for i, want := range []string{"a", "b", "c"} {
		if five.Stamps[i] != want {
			t.Errorf("expected first stamps in order, got %v", five.Stamps)
		}
	}
}

func TestBuild_HasNote(t *testing.T) {
	s := emptyStore(t)
	s.Set("2026-01-20", nil, "memo")

	cells := Build(2026, time.January, s, nil, "")
	for _, c := range cells {
		if c.Day == 20 && !c.HasNote {
			t.Error("expected note indicator on day 20")
		}
		if c.Day == 21 && c.HasNote {
			t.Error("unexpected note indicator on day 21")
		}
	}
}

func TestBuild_Classification(t *testing.T) {
	holidays := map[string]string{
		"2026-01-01": "元日",     // Thursday
		"2026-01-31": "テスト休日", // Saturday
	}
	cells := Build(2026, time.January, emptyStore(t), holidays, "")

	byDay := make(map[int]Cell)
	for _, c := range cells {
		if !c.Blank {
			byDay[c.Day] = c
		}
	}

	if byDay[4].Class != ClassSunday {
		t.Errorf("Jan 4 is a Sunday, got class %v", byDay[4].Class)
	}
	if byDay[3].Class != ClassSaturday {
		t.Errorf("Jan 3 is a Saturday, got class %v", byDay[3].Class)
	}
	if byDay[1].Class != ClassSunday {
		t.Errorf("holiday Thursday should use Sunday styling, got %v", byDay[1].Class)
	}
	if byDay[1].HolidayName != "元日" {
		t.Errorf("expected holiday name, got %q", byDay[1].HolidayName)
	}
	// A holiday on Saturday keeps Saturday styling.
	if byDay[31].Class != ClassSaturday {
		t.Errorf("holiday Saturday keeps Saturday styling, got %v", byDay[31].Class)
	}
	if byDay[5].Class != ClassNeutral {
		t.Errorf("plain Monday should be neutral, got %v", byDay[5].Class)
	}
}

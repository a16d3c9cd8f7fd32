// Package grid turns a (year, month) pair plus the day stores into the
// ordered cell sequence a calendar view renders. Building is pure; it is
// cheap enough to run on every navigation.
package grid

import (
	"time"

	"sutanpu/internal/dates"
	"sutanpu/internal/entries"
)

// Stamp display contract: a day with five or more stamps shows the first
// three plus an overflow marker; otherwise up to four with no marker.
const (
	maxStamps      = 4
	overflowAt     = 5
	overflowShown  = 3
	OverflowMarker = "…"
)

// DayClass tells consumers how to color a day number.
type DayClass int

const (
	ClassNeutral DayClass = iota
	ClassSunday           // Sundays and holidays
	ClassSaturday
)

// Cell is one slot of the month grid: either a padding blank or a real day
// with everything a renderer needs.
type Cell struct {
	Blank bool

	Day         int
	Key         string
	Weekday     time.Weekday
	Class       DayClass
	IsToday     bool
	HolidayName string
	Stamps      []string
	Overflow    bool
	HasNote     bool
}

// EntrySource is the read side of the calendar entry store.
type EntrySource interface {
	Get(key string) entries.DayEntry
}

// Build lays out the given month as complete weeks: leading blanks up to the
// weekday of day 1, one cell per day, trailing blanks to a multiple of 7.
func Build(year int, month time.Month, store EntrySource, holidayMap map[string]string, todayKey string) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startDow := int(first.Weekday())
	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]Cell, 0, startDow+daysInMonth+6)
	for i := 0; i < startDow; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		key := dates.Key(date)
		cells = append(cells, buildDay(date, key, store.Get(key), holidayMap[key], key == todayKey))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{Blank: true})
	}
	return cells
}

func buildDay(date time.Time, key string, entry entries.DayEntry, holidayName string, isToday bool) Cell {
	c := Cell{
		Day:         date.Day(),
		Key:         key,
		Weekday:     date.Weekday(),
		IsToday:     isToday,
		HolidayName: holidayName,
		HasNote:     entry.Note != "",
	}

	if len(entry.Stamps) >= overflowAt {
		c.Stamps = append([]string(nil), entry.Stamps[:overflowShown]...)
		c.Overflow = true
	} else if len(entry.Stamps) > 0 {
		n := len(entry.Stamps)
		if n > maxStamps {
			n = maxStamps
		}
		c.Stamps = append([]string(nil), entry.Stamps[:n]...)
	}

	switch {
	case c.Weekday == time.Saturday:
		c.Class = ClassSaturday
	case c.Weekday == time.Sunday || holidayName != "":
		c.Class = ClassSunday
	}
	return c
}

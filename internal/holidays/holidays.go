// Package holidays annotates calendar months with Japanese national
// holidays. The ruleset is a holiday-jp style dataset anchored to JST;
// lookups convert each holiday into the day-key convention shared with the
// rest of the app.
package holidays

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"sutanpu/internal/dates"
	"sutanpu/internal/logs"
)

//go:embed holidays.yml
var datasetYAML []byte

var jst = time.FixedZone("JST", 9*60*60)

// Holiday is one dated holiday from the ruleset. Date is the instant of
// JST midnight on the holiday.
type Holiday struct {
	Date time.Time
	Name string
}

// Ruleset answers range queries over a fixed holiday dataset.
type Ruleset struct {
	holidays []Holiday // sorted by date
}

// NewRuleset parses a holiday-jp style YAML mapping of date to name.
func NewRuleset(data []byte) (*Ruleset, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing holiday dataset: %v", err)
	}

	rs := &Ruleset{}
	for key, name := range raw {
		d, err := time.ParseInLocation(dates.Layout, key, jst)
		if err != nil {
			return nil, fmt.Errorf("bad holiday date %q: %v", key, err)
		}
		rs.holidays = append(rs.holidays, Holiday{Date: d, Name: name})
	}
	sort.Slice(rs.holidays, func(i, j int) bool {
		return rs.holidays[i].Date.Before(rs.holidays[j].Date)
	})
	return rs, nil
}

// Between returns the holidays whose JST calendar day falls within
// [start, end], compared by calendar day.
func (r *Ruleset) Between(start, end time.Time) []Holiday {
	lo := dates.Key(start)
	hi := dates.Key(end)

	var out []Holiday
	for _, h := range r.holidays {
		key := dates.JSTKey(h.Date)
		if key >= lo && key <= hi {
			out = append(out, h)
		}
	}
	return out
}

// Lookup computes per-month holiday maps and caches the result. A nil or
// failed ruleset degrades to empty maps.
type Lookup struct {
	rules *Ruleset
	cache map[string]map[string]string
}

// NewLookup builds a Lookup over the embedded dataset. A dataset parse
// failure is logged and yields a lookup that answers every month with an
// empty map.
func NewLookup() *Lookup {
	rs, err := NewRuleset(datasetYAML)
	if err != nil {
		logs.Logger.Printf("holiday dataset unavailable: %v", err)
		rs = nil
	}
	return &Lookup{rules: rs, cache: make(map[string]map[string]string)}
}

// NewLookupWith builds a Lookup over an explicit ruleset. Used by tests.
func NewLookupWith(rs *Ruleset) *Lookup {
	return &Lookup{rules: rs, cache: make(map[string]map[string]string)}
}

// ForMonth returns a map from day key to holiday name for every holiday in
// the given month. Uncovered years produce an empty map.
func (l *Lookup) ForMonth(year int, month time.Month) map[string]string {
	cacheKey := fmt.Sprintf("%04d-%02d", year, int(month))
	if m, ok := l.cache[cacheKey]; ok {
		return m
	}

	m := make(map[string]string)
	if l.rules != nil {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
		for _, h := range l.rules.Between(first, last) {
			m[dates.JSTKey(h.Date)] = h.Name
		}
	}
	l.cache[cacheKey] = m
	return m
}

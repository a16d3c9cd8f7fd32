package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical day-key format. Keys sort lexicographically in
// chronological order.
const Layout = "2006-01-02"

var jst = time.FixedZone("JST", 9*60*60)

// Key returns the day key for t using its local calendar fields. UTC fields
// must not be used here: they shift the day for any viewer east or west of
// Greenwich.
func Key(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TodayKey returns the day key for the current local day.
func TodayKey() string {
	return Key(time.Now())
}

// JSTKey returns the day key of the JST calendar day containing the instant t.
// Holiday rules are anchored to JST midnight, so reading the instant's raw
// UTC fields would name the previous day for most viewers.
func JSTKey(t time.Time) string {
	return Key(t.In(jst))
}

// Parse converts a day key back into a local-midnight time.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(Layout, key, time.Local)
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

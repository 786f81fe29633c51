package week

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies an ISO 8601 calendar week. Weeks start on Monday, and the
// year is the ISO year, so 2014-12-31 belongs to 2015-W01.
type Key struct {
	Year int
	Week int
}

// Of returns the calendar week containing t.
func Of(t time.Time) Key {
	y, w := t.ISOWeek()
	return Key{Year: y, Week: w}
}

// String formats the key like "2016-W01".
func (k Key) String() string {
	return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
}

// Parse parses "2016-W01" into a Key.
func Parse(s string) (Key, error) {
	parts := strings.SplitN(s, "-W", 2)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid week format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("invalid year in week %q: %w", s, err)
	}

	w, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("invalid week number in week %q: %w", s, err)
	}
	if w < 1 || w > 53 {
		return Key{}, fmt.Errorf("week number out of range in %q", s)
	}

	return Key{Year: year, Week: w}, nil
}

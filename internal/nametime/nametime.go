// Package nametime parses a capture timestamp out of a filename stem
// (spec component C2).
package nametime

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var reWithClock = regexp.MustCompile(`(\d{8})_(\d{6})`)
var reDateOnly = regexp.MustCompile(`(\d{8})`)

// Parse extracts a YYYYMMDD[_HHMMSS] timestamp from a filename stem. It
// tries the date+clock pattern first, then falls back to date-only with a
// midnight clock. A miss, or a syntactically matching but calendrically
// invalid date (e.g. month 13, Feb 30), returns false.
func Parse(stem string) (time.Time, bool) {
	if m := reWithClock.FindStringSubmatch(stem); m != nil {
		if t, ok := parse(m[1], m[2]); ok {
			return t, true
		}
	}
	if m := reDateOnly.FindStringSubmatch(stem); m != nil {
		if t, ok := parse(m[1], "000000"); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParsePath is a convenience wrapper that strips the directory and extension
// from path before calling Parse.
func ParsePath(path string) (time.Time, bool) {
	base := filepath.Base(path)
	return Parse(strings.TrimSuffix(base, filepath.Ext(base)))
}

func parse(date, clock string) (time.Time, bool) {
	year, err := strconv.Atoi(date[0:4])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(date[4:6])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(date[6:8])
	if err != nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(clock[0:2])
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(clock[2:4])
	if err != nil {
		return time.Time{}, false
	}
	second, err := strconv.Atoi(clock[4:6])
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

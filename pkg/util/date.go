package util

import "time"

// ISODateLayout is the day-precision date format used on the wire.
const ISODateLayout = "2006-01-02"

// ISODate formats t as a YYYY-MM-DD string.
func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD string. Returns (t, true) if it parsed.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package util

import (
	"strings"
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
	// ISO8601Format is the timestamp-with-offset layout the search engine expects for date filters.
	ISO8601Format = "2006-01-02T15:04:05-07:00"
)

// dateLayouts are tried in order when a string bound may hold a date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateTimeFormat,
	"2006-01-02T15:04:05",
	DateFormat,
}

// ParseDate parses s with the first matching layout. Layouts without a zone
// are read in the default timezone.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, GetDefaultTimezone())
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate returns v formatted with ISO8601Format when v is a time.Time or a
// string holding a recognisable date. Any other value is returned unchanged.
func NormalizeDate(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(ISO8601Format)
	case *time.Time:
		if t == nil {
			return v
		}
		return t.Format(ISO8601Format)
	case string:
		if parsed, ok := ParseDate(t); ok {
			return parsed.Format(ISO8601Format)
		}
	}
	return v
}

func GetDefaultTimezone() *time.Location {
	localTimeZone, _ := time.LoadLocation("Local")
	return localTimeZone
}

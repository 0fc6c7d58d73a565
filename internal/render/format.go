package render

import (
	"time"
)

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate renders an invoice date as "Jan 2, 2006". Empty dates render
// as "-" and unparseable ones are returned unchanged.
func DisplayDate(s string) string {
	if s == "" {
		return "-"
	}
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// EntryDate renders a time entry timestamp as a short local date, e.g.
// "3/14/2025". loc may be nil for the process's local zone.
func EntryDate(s string, loc *time.Location) string {
	t, ok := parseDate(s)
	if !ok {
		return orDash(s)
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("1/2/2006")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

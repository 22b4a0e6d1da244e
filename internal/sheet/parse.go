package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing date cells. Workbook
// cells arrive as display strings, JSON round-trips of mapped rows
// arrive as RFC 3339.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// isBlank reports whether a cell value counts as absent: nil or the
// empty string.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// parseNumber interprets a cell value as a float. Strings are parsed
// strictly: trailing garbage is a failure, not a prefix parse.
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ParseDate interprets a cell value as a calendar date. Exported because
// the import service re-coerces JSON-roundtripped rows, where dates arrive
// back as strings.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// sameMonth reports whether two instants share a calendar (month, year),
// each read in its own location.
func sameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// stringify renders a cell value for allowed-values comparison.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// formatNumber renders a rule bound the way it reads in a message:
// no exponent, no trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

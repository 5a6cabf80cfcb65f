// Package dates computes display durations for "YYYY-MM" ranged entries
// (experience, timeline). The month count is exclusive: January to February
// is one month, not two.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseYearMonth parses a "YYYY-MM" string.
func ParseYearMonth(s string) (year, month int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid year-month %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in %q", s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", s)
	}
	return year, month, nil
}

// MonthsBetween returns the elapsed months from start to end. When current is
// true the end boundary is now; when end is empty it falls back to start.
func MonthsBetween(start, end string, current bool, now time.Time) (int, error) {
	sy, sm, err := ParseYearMonth(start)
	if err != nil {
		return 0, err
	}

	var ey, em int
	if current {
		ey, em = now.Year(), int(now.Month())
	} else {
		if strings.TrimSpace(end) == "" {
			end = start
		}
		ey, em, err = ParseYearMonth(end)
		if err != nil {
			return 0, err
		}
	}

	return (ey-sy)*12 + (em - sm), nil
}

// FormatDuration renders a month count the way the about page displays it.
func FormatDuration(months int) string {
	if months < 1 {
		return "Less than a month"
	}
	if months == 1 {
		return "1 month"
	}
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}

	years := months / 12
	remaining := months % 12

	yearsPart := fmt.Sprintf("%d years", years)
	if years == 1 {
		yearsPart = "1 year"
	}
	if remaining == 0 {
		return yearsPart
	}
	monthsPart := fmt.Sprintf("%d months", remaining)
	if remaining == 1 {
		monthsPart = "1 month"
	}
	return yearsPart + " " + monthsPart
}

// Duration is the convenience wrapper used by list endpoints: parse, diff,
// format. Returns "" when the start date is malformed.
func Duration(start string, end *string, current bool, now time.Time) string {
	e := ""
	if end != nil {
		e = *end
	}
	months, err := MonthsBetween(start, e, current, now)
	if err != nil {
		return ""
	}
	return FormatDuration(months)
}

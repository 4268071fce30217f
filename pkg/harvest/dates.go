package harvest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format")

// ParseDate parses a YYYY-MM-DD calendar date in UTC. Out-of-range months
// or days are rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDateFormat, s)
	}
	return d, nil
}

func FormatDate(d time.Time) string { return d.Format(DateLayout) }

func AddDays(d time.Time, days int) time.Time { return d.AddDate(0, 0, days) }

// AddYears keeps month and day. Feb 29 becomes Feb 28 when the target year
// is not a leap year.
func AddYears(d time.Time, years int) time.Time {
	y, m, day := d.Date()
	y += years
	if m == time.February && day == 29 && !isLeap(y) {
		day = 28
	}
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

func isLeap(y int) bool { return y%4 == 0 && (y%100 != 0 || y%400 == 0) }

// ParseOptionalFloat returns nil for empty or non-numeric input. Format errors
// are swallowed on purpose: a malformed temperature is stored as absent.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

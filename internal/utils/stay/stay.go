// Package stay computes nights and reporting windows for hotel stays.
// All dates are calendar days; times are normalised to UTC midnight.
package stay

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidArgument is returned for a month outside 1..12 or a month without a year.
var ErrInvalidArgument = errors.New("invalid argument")

// Window is the half-open date range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// Nights returns the number of nights between check-in and check-out.
// A check-out on or before check-in yields 0.
func Nights(checkIn, checkOut time.Time) int {
	days := int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MonthWindow covers the calendar month.
func MonthWindow(year, month int) (Window, error) {
	if month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: month %d is outside 1..12", ErrInvalidArgument, month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// YearWindow covers the calendar year.
func YearWindow(year int) Window {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}

// WindowFor picks the month window when both are given, the year window for a
// year alone, and nil when neither is set.
func WindowFor(year, month *int) (*Window, error) {
	switch {
	case year != nil && month != nil:
		w, err := MonthWindow(*year, *month)
		if err != nil {
			return nil, err
		}
		return &w, nil
	case year != nil:
		w := YearWindow(*year)
		return &w, nil
	case month != nil:
		return nil, fmt.Errorf("%w: month filter requires a year", ErrInvalidArgument)
	default:
		return nil, nil
	}
}

// Overlaps reports whether the stay [checkIn, checkOut) intersects w.
// A stay spanning several months overlaps each of them.
func Overlaps(checkIn, checkOut time.Time, w Window) bool {
	return Day(checkIn).Before(w.End) && Day(checkOut).After(w.Start)
}

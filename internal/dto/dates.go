package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
)

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(stay.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// ParseOptionalDate returns nil for a nil or empty value.
func ParseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(stay.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

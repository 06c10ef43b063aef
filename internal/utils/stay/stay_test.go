package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2024, 1, 10), date(2024, 1, 13)))
	assert.Equal(t, 0, Nights(date(2024, 1, 10), date(2024, 1, 10)))
	assert.Equal(t, 0, Nights(date(2024, 1, 13), date(2024, 1, 10)))
	assert.Equal(t, 6, Nights(date(2024, 1, 28), date(2024, 2, 3)))
	// Leap day is counted.
	assert.Equal(t, 2, Nights(date(2024, 2, 28), date(2024, 3, 1)))
	// Time of day does not matter.
	assert.Equal(t, 1, Nights(date(2024, 1, 10).Add(23*time.Hour), date(2024, 1, 11).Add(time.Hour)))
}

func TestMonthWindow(t *testing.T) {
	w, err := MonthWindow(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), w.Start)
	assert.Equal(t, date(2024, 3, 1), w.End)

	w, err = MonthWindow(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 1, 1), w.End)

	_, err = MonthWindow(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = MonthWindow(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestYearWindow(t *testing.T) {
	w := YearWindow(2024)
	assert.Equal(t, date(2024, 1, 1), w.Start)
	assert.Equal(t, date(2025, 1, 1), w.End)
}

func TestWindowFor(t *testing.T) {
	w, err := WindowFor(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, w)

	w, err = WindowFor(intPtr(2024), nil)
	require.NoError(t, err)
	assert.Equal(t, YearWindow(2024), *w)

	w, err = WindowFor(intPtr(2024), intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), w.End)

	_, err = WindowFor(nil, intPtr(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = WindowFor(intPtr(2024), intPtr(14))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOverlaps(t *testing.T) {
	jan, _ := MonthWindow(2024, 1)
	feb, _ := MonthWindow(2024, 2)
	mar, _ := MonthWindow(2024, 3)

	checkIn, checkOut := date(2024, 1, 28), date(2024, 2, 3)
	assert.True(t, Overlaps(checkIn, checkOut, jan))
	assert.True(t, Overlaps(checkIn, checkOut, feb))
	assert.False(t, Overlaps(checkIn, checkOut, mar))

	// Checking out on the first of the month is not a night in that month.
	assert.False(t, Overlaps(date(2024, 1, 30), date(2024, 2, 1), feb))
	// Checking in on the last day is.
	assert.True(t, Overlaps(date(2024, 1, 31), date(2024, 2, 2), jan))
	assert.True(t, Overlaps(checkIn, checkOut, YearWindow(2024)))
	assert.False(t, Overlaps(checkIn, checkOut, YearWindow(2023)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 10), d)

	_, err = ParseDate("01/10/2024")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

package dateutils

import (
	"errors"
	"testing"
	"time"

	"fjacquet/datetools/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAge(t *testing.T) {
	born := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		asOf     time.Time
		expected int
	}{
		{"day before birthday", time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC), 19},
		{"on birthday", time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC), 20},
		{"month before birthday", time.Date(2020, time.May, 30, 0, 0, 0, 0, time.UTC), 19},
		{"after birthday", time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC), 20},
		{"same day of birth", born, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateAge(born, tc.asOf))
		})
	}
}

func TestCalculateAge_LeapDayBirthday(t *testing.T) {
	born := time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 18, CalculateAge(born, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 19, CalculateAge(born, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCalculateAgeToday(t *testing.T) {
	born := time.Now().AddDate(-30, -1, 0)
	assert.Equal(t, 30, CalculateAgeToday(born))
}

func TestCalculateDaysDt(t *testing.T) {
	first := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, CalculateDaysDt(first, time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, CalculateDaysDt(time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC), first))
	assert.Equal(t, 1, CalculateDaysDt(first, time.Date(2020, time.January, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, CalculateDaysDt(first, first))
	assert.Equal(t, 3652058, CalculateDaysDt(
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
	))
}

func TestCalculateDays(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		inSep    string
		outSep   string
		expected int
	}{
		{"january", "01/01/2020", "31/01/2020", "/", "/", 30},
		{"leap year", "2020/01/01", "2020/12/31", "/", "/", 365},
		{"across leap day", "28/02/2024", "01/03/2024", "/", "/", 2},
		{"single digits", "1/1/2021", "1/1/2022", "/", "/", 365},
		{"custom separators", "01-03-2024", "01-03-2025", "-", ".", 365},
		{"one day", "31/12/1999", "01/01/2000", "/", "/", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			days, err := CalculateDays(tc.first, tc.second, tc.inSep, tc.outSep)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, days)
		})
	}
}

func TestCalculateDays_Failures(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		kind   error
	}{
		{"reversed", "31/01/2020", "01/01/2020", parsererror.ErrOrdering},
		{"equal", "01/01/2020", "01/01/2020", parsererror.ErrOrdering},
		{"invalid first", "31/04/2020", "01/05/2020", parsererror.ErrRange},
		{"invalid second", "01/01/2020", "29/02/2021", parsererror.ErrRange},
		{"malformed", "yesterday", "01/01/2020", parsererror.ErrFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			days, err := CalculateDays(tc.first, tc.second, "/", "/")
			require.Error(t, err)
			assert.Zero(t, days)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)
		})
	}
}

func TestCalculateDays_OrderingErrorCarriesCanonicalDates(t *testing.T) {
	_, err := CalculateDays("2020/1/31", "1/1/2020", "/", "-")

	var orderingErr *parsererror.OrderingError
	require.True(t, errors.As(err, &orderingErr))
	assert.Equal(t, "31-01-2020", orderingErr.First)
	assert.Equal(t, "01-01-2020", orderingErr.Second)
}

func TestDaysPastAt(t *testing.T) {
	now := time.Date(2020, time.January, 31, 15, 4, 5, 0, time.UTC)

	days, err := DaysPastAt("01/01/2020", now, "/", "/")
	require.NoError(t, err)
	assert.Equal(t, 30, days)

	days, err = DaysPastAt("2019/12/31", now, "/", "-")
	require.NoError(t, err)
	assert.Equal(t, 31, days)
}

func TestDaysPastAt_NotBeforeToday(t *testing.T) {
	now := time.Date(2020, time.January, 31, 15, 4, 5, 0, time.UTC)

	for _, input := range []string{"31/01/2020", "01/02/2020", "2021/01/01"} {
		t.Run(input, func(t *testing.T) {
			days, err := DaysPastAt(input, now, "/", "/")
			require.Error(t, err)
			assert.Zero(t, days)
			assert.True(t, errors.Is(err, parsererror.ErrOrdering))

			var orderingErr *parsererror.OrderingError
			require.True(t, errors.As(err, &orderingErr))
			assert.Equal(t, "31/01/2020", orderingErr.Second)
		})
	}
}

func TestDaysPastAt_InvalidInput(t *testing.T) {
	now := time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)

	_, err := DaysPastAt("30/02/2019", now, "/", "/")
	assert.True(t, errors.Is(err, parsererror.ErrRange))

	_, err = DaysPastAt("not a date", now, "/", "/")
	assert.True(t, errors.Is(err, parsererror.ErrFormat))

	_, err = DaysPastAt("01/01/2019", now, "/", "")
	assert.True(t, errors.Is(err, parsererror.ErrFormat), "empty output separator cannot produce a canonical date")
}

func TestGetDaysPast(t *testing.T) {
	days, err := GetDaysPast("01/01/2000", "/", "/")
	require.NoError(t, err)
	assert.Greater(t, days, 9000)

	future := time.Now().AddDate(1, 0, 0).Format(DateLayoutDMY)
	_, err = GetDaysPast(future, "/", "/")
	assert.True(t, errors.Is(err, parsererror.ErrOrdering))
}

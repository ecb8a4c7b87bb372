package dateutils

import (
	"errors"
	"testing"

	"fjacquet/datetools/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     string
		expected bool
	}{
		{"2000", true},
		{"1900", false},
		{"2024", true},
		{"2023", false},
		{"1600", true},
		{"2100", false},
		{"0004", true},
		{"24", false},
		{"20240", false},
		{"20a4", false},
		{"", false},
		{"-200", false},
	}

	for _, tc := range tests {
		t.Run(tc.year, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsLeapYear(tc.year))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, "2023"))
	assert.Equal(t, 28, DaysInMonth(2, "2023"))
	assert.Equal(t, 29, DaysInMonth(2, "2024"))
	assert.Equal(t, 28, DaysInMonth(2, "1900"))
	assert.Equal(t, 30, DaysInMonth(4, "2023"))
	assert.Equal(t, 31, DaysInMonth(12, "2023"))
	assert.Equal(t, 0, DaysInMonth(0, "2023"))
	assert.Equal(t, 0, DaysInMonth(13, "2023"))
}

func TestValidateDate_Valid(t *testing.T) {
	valid := []string{
		"29/02/2024",
		"29/02/2000",
		"28/02/2023",
		"1/1/2020",
		"31/12/1999",
		"30/04/2020",
		"31/07/2021",
		"2024/02/29",
		"2024/2/9",
	}

	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			assert.NoError(t, ValidateDate(input, "/"))
		})
	}
}

func TestValidateDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		field string
		max   int
	}{
		{"feb 29 non leap", "29/02/2023", parsererror.ErrRange, "day", 28},
		{"feb 29 century", "29/02/1900", parsererror.ErrRange, "day", 28},
		{"feb 30 leap", "30/02/2024", parsererror.ErrRange, "day", 29},
		{"april 31", "31/04/2020", parsererror.ErrRange, "day", 30},
		{"september 31", "31/9/2020", parsererror.ErrRange, "day", 30},
		{"day zero", "00/01/2020", parsererror.ErrRange, "day", 31},
		{"day 32", "32/01/2020", parsererror.ErrRange, "day", 31},
		{"month zero", "01/00/2020", parsererror.ErrRange, "month", 12},
		{"month 13", "1/13/2020", parsererror.ErrRange, "month", 12},
		{"year first out of range", "2024/2/30", parsererror.ErrRange, "day", 29},
		{"garbage", "abc", parsererror.ErrFormat, "", 0},
		{"trailing time", "01/01/2020 10:00", parsererror.ErrFormat, "", 0},
		{"empty", "", parsererror.ErrFormat, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDate(tc.input, "/")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)

			if tc.field != "" {
				var rangeErr *parsererror.RangeError
				require.True(t, errors.As(err, &rangeErr))
				assert.Equal(t, tc.field, rangeErr.Field)
				assert.Equal(t, tc.max, rangeErr.Max)
				assert.Equal(t, tc.input, rangeErr.Input)
			}
		})
	}
}

func TestValidateDate_CustomSeparator(t *testing.T) {
	assert.NoError(t, ValidateDate("29.02.2024", "."))
	assert.Error(t, ValidateDate("29/02/2024", "."))
	assert.NoError(t, ValidateDate("2024-02-29", "-"))
}

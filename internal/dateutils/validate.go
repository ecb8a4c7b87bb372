package dateutils

import (
	"strconv"

	"fjacquet/datetools/internal/parsererror"
)

// IsLeapYear reports whether a four digit year string is a Gregorian leap
// year. Anything that is not exactly four digits is not a leap year.
func IsLeapYear(year string) bool {
	if len(year) != 4 || !isDigits(year) {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	switch {
	case y%400 == 0:
		return true
	case y%100 == 0:
		return false
	default:
		return y%4 == 0
	}
}

// DaysInMonth returns the number of days of month in year, or 0 when month
// is outside 1-12.
func DaysInMonth(month int, year string) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		return 0
	}
}

// ValidateDate checks that input is a date that exists in the calendar.
// Day-first and year-first inputs are both accepted.
func ValidateDate(input, sep string) error {
	if !CheckDMY(input, sep) && !CheckYMD(input, sep) {
		return &parsererror.FormatError{
			Input:     input,
			Separator: sep,
			Reason:    "expected DD" + sep + "MM" + sep + "YYYY or YYYY" + sep + "MM" + sep + "DD",
		}
	}

	canonical, err := CleanDate(input, sep, sep, OrderDMY)
	if err != nil {
		return err
	}
	day, month, year, _ := splitFields(canonical, sep)
	return validateComponents(input, day, month, year)
}

func validateComponents(input, day, month, year string) error {
	// Fields were digit-checked by the caller, so Atoi cannot fail here.
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 {
		return &parsererror.RangeError{Input: input, Field: "month", Value: m, Min: 1, Max: 12}
	}

	d, _ := strconv.Atoi(day)
	limit := DaysInMonth(m, year)
	if d < 1 || d > limit {
		return &parsererror.RangeError{Input: input, Field: "day", Value: d, Min: 1, Max: limit}
	}
	return nil
}

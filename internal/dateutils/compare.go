package dateutils

import (
	"fmt"
	"strconv"
	"time"

	"fjacquet/datetools/internal/parsererror"
)

// ToTime converts a canonical day-first date to midnight UTC of that day.
// Dates that do not exist in the calendar are rejected instead of being
// rolled over into the next month.
func ToTime(canonical, sep string) (time.Time, error) {
	if !CheckDMY(canonical, sep) {
		return time.Time{}, &parsererror.FormatError{
			Input:     canonical,
			Separator: sep,
			Reason:    "expected canonical DD" + sep + "MM" + sep + "YYYY",
		}
	}
	day, month, year, _ := splitFields(canonical, sep)
	if err := validateComponents(canonical, day, month, year); err != nil {
		return time.Time{}, err
	}

	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

// ToTimestamp returns the Unix time in seconds of a canonical day-first date.
func ToTimestamp(canonical, sep string) (int64, error) {
	t, err := ToTime(canonical, sep)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// CheckFirstSecondDates reports whether first is strictly before second.
// Both must be canonical day-first dates using sep.
func CheckFirstSecondDates(first, second, sep string) (bool, error) {
	f, err := ToTime(first, sep)
	if err != nil {
		return false, fmt.Errorf("first date: %w", err)
	}
	s, err := ToTime(second, sep)
	if err != nil {
		return false, fmt.Errorf("second date: %w", err)
	}
	return CompareDates(f, s) < 0, nil
}

// CompareDates compares two dates ignoring the time of day and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case date1.Before(date2):
		return -1
	case date1.After(date2):
		return 1
	default:
		return 0
	}
}

package dateutils

import (
	"fmt"
	"time"

	"fjacquet/datetools/internal/parsererror"
)

const secondsPerDay = 24 * 60 * 60

// CalculateAge returns the number of full years between born and asOf. The
// result is one less than the difference of years while the birthday has
// not yet been reached in asOf's year.
func CalculateAge(born, asOf time.Time) int {
	age := asOf.Year() - born.Year()
	if asOf.Month() < born.Month() || (asOf.Month() == born.Month() && asOf.Day() < born.Day()) {
		age--
	}
	return age
}

// CalculateAgeToday is CalculateAge as of the current date.
func CalculateAgeToday(born time.Time) int {
	return CalculateAge(born, GetTodaysDate())
}

// CalculateDaysDt returns the absolute number of whole days between two
// instants.
func CalculateDaysDt(first, second time.Time) int {
	diff := (second.Unix() - first.Unix()) / secondsPerDay
	if diff < 0 {
		diff = -diff
	}
	return int(diff)
}

// CalculateDays returns the number of days from first to second. Both must
// be valid dates and first must be strictly before second.
func CalculateDays(first, second, inSep, outSep string) (int, error) {
	firstTime, cleanedFirst, err := resolve(first, inSep, outSep)
	if err != nil {
		return 0, fmt.Errorf("first date: %w", err)
	}
	secondTime, cleanedSecond, err := resolve(second, inSep, outSep)
	if err != nil {
		return 0, fmt.Errorf("second date: %w", err)
	}

	if CompareDates(firstTime, secondTime) >= 0 {
		return 0, &parsererror.OrderingError{First: cleanedFirst, Second: cleanedSecond}
	}
	return CalculateDaysDt(firstTime, secondTime), nil
}

// GetDaysPast returns the number of days between input and today. The input
// must be strictly before today.
func GetDaysPast(input, inSep, outSep string) (int, error) {
	return DaysPastAt(input, GetTodaysDate(), inSep, outSep)
}

// DaysPastAt is GetDaysPast with an explicit current time.
func DaysPastAt(input string, now time.Time, inSep, outSep string) (int, error) {
	today, err := CleanDate(now.Format(DateLayoutFull), "-", outSep, OrderDMY)
	if err != nil {
		return 0, fmt.Errorf("current date: %w", err)
	}
	todayTime, err := ToTime(today, outSep)
	if err != nil {
		return 0, fmt.Errorf("current date: %w", err)
	}

	inputTime, cleaned, err := resolve(input, inSep, outSep)
	if err != nil {
		return 0, err
	}

	if CompareDates(inputTime, todayTime) >= 0 {
		return 0, &parsererror.OrderingError{First: cleaned, Second: today}
	}
	return CalculateDaysDt(inputTime, todayTime), nil
}

// GetTodaysDate returns the current local time.
func GetTodaysDate() time.Time {
	return time.Now()
}

// resolve validates raw, normalizes it day-first and converts it to a time.
func resolve(raw, inSep, outSep string) (time.Time, string, error) {
	if err := ValidateDate(raw, inSep); err != nil {
		return time.Time{}, "", err
	}
	cleaned, err := CleanDate(raw, inSep, outSep, OrderDMY)
	if err != nil {
		return time.Time{}, "", err
	}
	t, err := ToTime(cleaned, outSep)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, cleaned, nil
}

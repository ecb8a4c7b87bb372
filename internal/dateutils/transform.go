package dateutils

import (
	"errors"
	"strings"
	"time"

	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/parsererror"

	"github.com/itchyny/timefmt-go"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ConvertToMmmYy turns "October 2018" into "Oct-18". The input must end
// with a four digit year preceded by a space and a full English month name.
func ConvertToMmmYy(date string) (string, error) {
	var month, year string
	if len(date) >= 5 {
		month = date[:len(date)-5]
	}
	if len(date) >= 4 {
		year = date[len(date)-4:]
	}

	if !isMonthName(month) {
		log.Warn("Invalid month", logging.F(logging.FieldMonth, month), logging.F(logging.FieldInput, date))
		return "", &parsererror.ParseError{
			Parser: "dateutils",
			Field:  "month",
			Value:  month,
			Err:    errors.New("not a full English month name"),
		}
	}
	if !isDigits(year) {
		log.Warn("Invalid year", logging.F(logging.FieldYear, year), logging.F(logging.FieldInput, date))
		return "", &parsererror.ParseError{
			Parser: "dateutils",
			Field:  "year",
			Value:  year,
			Err:    errors.New("not numeric"),
		}
	}
	return month[:3] + "-" + year[2:], nil
}

func isMonthName(s string) bool {
	for _, name := range monthNames {
		if s == name {
			return true
		}
	}
	return false
}

// DefaultNilDates returns the epoch-zero strings that stand for "no date".
// A new slice is returned on every call.
func DefaultNilDates() []string {
	return []string{"01-01-1970", "01/01/1970", "1970-01-01", "1970/01/01"}
}

// ReplaceNilDate returns "" when date is one of DefaultNilDates, otherwise
// date unchanged.
func ReplaceNilDate(date string) string {
	return ReplaceUnwantedDate(date, DefaultNilDates())
}

// ReplaceUnwantedDate returns "" when date exactly matches one of unwanted,
// otherwise date unchanged.
func ReplaceUnwantedDate(date string, unwanted []string) string {
	for _, u := range unwanted {
		if date == u {
			return ""
		}
	}
	return date
}

// DateCorrect reports whether s parses strictly as DD/MM/YYYY.
func DateCorrect(s string) bool {
	_, err := time.Parse(DateLayoutDMY, s)
	return err == nil
}

// ConvertDatetime formats t using a strftime-style format such as "%d/%m/%Y".
func ConvertDatetime(t time.Time, format string) (string, error) {
	if err := checkDirectives(format); err != nil {
		return "", err
	}
	return timefmt.Format(t, format), nil
}

// ConvertToDatetime parses s using a strftime-style format. Without a %z
// directive the result is in UTC.
func ConvertToDatetime(s, format string) (time.Time, error) {
	if err := checkDirectives(format); err != nil {
		return time.Time{}, err
	}
	t, err := timefmt.Parse(s, format)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Parser: "strftime", Field: "date", Value: s, Err: err}
	}
	return t, nil
}

// strftimeDirectives are the directives accepted in both directions.
const strftimeDirectives = "aAbBdefHIjmMpSyYzZ%"

// checkDirectives rejects formats with an unknown or dangling directive.
func checkDirectives(format string) error {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 >= len(format) {
			return formatError(format, "dangling %")
		}
		i++
		if !strings.ContainsRune(strftimeDirectives, rune(format[i])) {
			return formatError(format, "unsupported directive %"+string(format[i]))
		}
	}
	return nil
}

func formatError(format, reason string) error {
	return &parsererror.ParseError{Parser: "strftime", Field: "format", Value: format, Err: errors.New(reason)}
}

package dateutils

import (
	"strings"

	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/parsererror"
)

// CleanDate normalizes a loosely formatted date into a zero-padded canonical
// string. The input may be day-first or year-first and may carry a trailing
// time or other text after a space, which is dropped. The result uses outSep
// and the requested order.
//
// An empty input is returned unchanged with a nil error.
func CleanDate(input, inSep, outSep string, order Order) (string, error) {
	if input == "" {
		return input, nil
	}
	if inSep == "" {
		return "", formatFailure(input, inSep, "empty input separator", "")
	}

	firstSep := strings.Index(input, inSep)
	if firstSep < 0 {
		return "", formatFailure(input, inSep, "cannot find separator", "first")
	}
	remaining := input[firstSep+len(inSep):]
	secondSep := strings.Index(remaining, inSep)
	if secondSep < 0 {
		return "", formatFailure(input, inSep, "cannot find separator", "second")
	}

	lead := input[:firstSep]
	middle := remaining[:secondSep]
	trailing := untilSpace(remaining[secondSep+len(inSep):])

	var day, month, year string
	switch len(lead) {
	case 4:
		year, month, day = lead, middle, trailing
	case 1, 2:
		day, month, year = lead, middle, trailing
	default:
		return "", formatFailure(input, inSep, "leading field must have 1, 2 or 4 characters", "")
	}

	day = padField(day)
	month = padField(month)

	if order == OrderYMD {
		cleaned := year + outSep + month + outSep + day
		if !CheckYMD(cleaned, outSep) {
			return "", formatFailure(input, inSep, "failed year-month-day check", "")
		}
		return cleaned, nil
	}

	cleaned := day + outSep + month + outSep + year
	if !CheckDMY(cleaned, outSep) {
		return "", formatFailure(input, inSep, "failed day-month-year check", "")
	}
	return cleaned, nil
}

// untilSpace cuts s at its first space, if any.
func untilSpace(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func padField(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func formatFailure(input, sep, reason, position string) error {
	fields := []logging.Field{
		logging.F(logging.FieldInput, input),
		logging.F(logging.FieldSeparator, sep),
	}
	if position != "" {
		fields = append(fields, logging.F(logging.FieldPosition, position))
		reason = reason + " for " + position + "_sep"
	}
	log.Warn(reason, fields...)
	return &parsererror.FormatError{Input: input, Separator: sep, Reason: reason}
}

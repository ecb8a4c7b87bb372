package dateutils

import (
	"strings"
)

// Components are the zero-padded fields of a canonical date.
type Components struct {
	Day   string
	Month string
	Year  string
}

// ExtractDates trims input, normalizes it to day-first form and returns its
// day, month and year.
func ExtractDates(input, inSep, outSep string) (Components, error) {
	cleaned, err := CleanDate(strings.TrimSpace(input), inSep, outSep, OrderDMY)
	if err != nil {
		return Components{}, err
	}
	day, month, year, ok := splitFields(cleaned, outSep)
	if !ok {
		return Components{}, formatFailure(input, inSep, "empty date", "")
	}
	return Components{Day: day, Month: month, Year: year}, nil
}

// Join joins the components day-first with sep.
func (c Components) Join(sep string) string {
	return c.Day + sep + c.Month + sep + c.Year
}

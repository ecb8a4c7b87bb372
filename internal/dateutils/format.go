package dateutils

import (
	"strings"
)

// splitFields locates the first two occurrences of sep and returns the three
// fields around them. Anything after the second separator, including further
// separators, belongs to the third field.
func splitFields(input, sep string) (first, second, third string, ok bool) {
	if sep == "" {
		return "", "", "", false
	}
	i := strings.Index(input, sep)
	if i < 0 {
		return "", "", "", false
	}
	rest := input[i+len(sep):]
	j := strings.Index(rest, sep)
	if j < 0 {
		return "", "", "", false
	}
	return input[:i], rest[:j], rest[j+len(sep):], true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func shortField(s string) bool {
	return len(s) == 1 || len(s) == 2
}

// CheckDigits reports whether day, month and year consist only of ASCII
// digits.
func CheckDigits(day, month, year string) bool {
	return isDigits(day) && isDigits(month) && isDigits(year)
}

// CheckDMY reports whether input has the shape D|DD<sep>M|MM<sep>YYYY.
func CheckDMY(input, sep string) bool {
	if sep == "" || strings.Count(input, sep) != 2 {
		return false
	}
	day, month, year, ok := splitFields(input, sep)
	if !ok {
		return false
	}
	if !shortField(day) || !shortField(month) || len(year) != 4 {
		return false
	}
	return CheckDigits(day, month, year)
}

// CheckYMD reports whether input has the shape YYYY<sep>M|MM<sep>D|DD.
func CheckYMD(input, sep string) bool {
	if sep == "" || strings.Count(input, sep) != 2 {
		return false
	}
	year, month, day, ok := splitFields(input, sep)
	if !ok {
		return false
	}
	if len(year) != 4 || !shortField(month) || !shortField(day) {
		return false
	}
	return CheckDigits(day, month, year)
}

// CheckDigitsWhole reports whether input is a day-first date whose three
// fields are all digits.
func CheckDigitsWhole(input, sep string) bool {
	if !CheckDMY(input, sep) {
		return false
	}
	day, month, year, _ := splitFields(input, sep)
	return CheckDigits(day, month, year)
}

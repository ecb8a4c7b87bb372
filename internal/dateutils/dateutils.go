// Package dateutils parses, validates and compares calendar dates written as
// strings in day/month/year or year/month/day order with a configurable
// separator.
//
// Functions hold no state and are safe for concurrent use. Malformed input
// is reported through the returned error and, where useful, an advisory
// diagnostic on the package logger.
package dateutils

import (
	"fjacquet/datetools/internal/logging"
)

// DefaultSeparator is the separator used when none is configured.
const DefaultSeparator = "/"

// Common layouts for the time package.
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutDMY  = "02/01/2006"
	DateLayoutFull = "2006-01-02 15:04:05"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package. A nil logger is ignored.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Order is the field order of a date string.
type Order int

const (
	// OrderDMY is day, month, year.
	OrderDMY Order = iota
	// OrderYMD is year, month, day.
	OrderYMD
)

// ParseOrder maps an output flag to an Order: "y" selects year-first,
// anything else day-first.
func ParseOrder(flag string) Order {
	if flag == "y" {
		return OrderYMD
	}
	return OrderDMY
}

func (o Order) String() string {
	if o == OrderYMD {
		return "ymd"
	}
	return "dmy"
}

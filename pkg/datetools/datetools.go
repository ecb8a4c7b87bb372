// Package datetools is the public entry point of the date string toolkit.
//
// A Toolkit binds the input separator, output separator, output order and
// set of sentinel ("nil") dates once, so callers do not repeat them on every
// call:
//
//	tk := datetools.New(datetools.DefaultOptions())
//	days, err := tk.Days("01/01/2020", "31/01/2020") // 30
//	if errors.Is(err, datetools.ErrOrdering) { ... }
//
// The package-level functions delegate to the same implementation and take
// their separators explicitly.
package datetools

import (
	"time"

	"fjacquet/datetools/internal/dateutils"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/parsererror"
)

// Failure kinds, usable with errors.Is on any error returned by this package.
var (
	ErrFormat   = parsererror.ErrFormat
	ErrRange    = parsererror.ErrRange
	ErrOrdering = parsererror.ErrOrdering
)

// Order is the field order of a date string.
type Order = dateutils.Order

// Field orders.
const (
	OrderDMY = dateutils.OrderDMY
	OrderYMD = dateutils.OrderYMD
)

// Components are the zero-padded day, month and year of a date.
type Components = dateutils.Components

// Options configure a Toolkit.
type Options struct {
	// InputSeparator separates the fields of dates given to the toolkit.
	InputSeparator string
	// OutputSeparator separates the fields of dates produced by the toolkit.
	OutputSeparator string
	// Order is the field order of produced dates.
	Order Order
	// NilDates are exact strings treated as "no date".
	NilDates []string
}

// DefaultOptions uses "/" on both sides, day-first output and the epoch
// zero dates as sentinels.
func DefaultOptions() Options {
	return Options{
		InputSeparator:  dateutils.DefaultSeparator,
		OutputSeparator: dateutils.DefaultSeparator,
		Order:           OrderDMY,
		NilDates:        dateutils.DefaultNilDates(),
	}
}

// Toolkit applies the date operations with a fixed set of Options.
// A Toolkit is immutable and safe for concurrent use.
type Toolkit struct {
	opts Options
}

// New returns a Toolkit. Empty separators fall back to "/" and a nil
// sentinel set falls back to the defaults; an empty non-nil set disables
// sentinel replacement.
func New(opts Options) *Toolkit {
	if opts.InputSeparator == "" {
		opts.InputSeparator = dateutils.DefaultSeparator
	}
	if opts.OutputSeparator == "" {
		opts.OutputSeparator = dateutils.DefaultSeparator
	}
	if opts.NilDates == nil {
		opts.NilDates = dateutils.DefaultNilDates()
	} else {
		opts.NilDates = append([]string(nil), opts.NilDates...)
	}
	return &Toolkit{opts: opts}
}

// Options returns a copy of the toolkit's options.
func (tk *Toolkit) Options() Options {
	o := tk.opts
	o.NilDates = append([]string(nil), tk.opts.NilDates...)
	return o
}

// CheckDMY reports whether s is shaped D|DD<sep>M|MM<sep>YYYY.
func (tk *Toolkit) CheckDMY(s string) bool {
	return dateutils.CheckDMY(s, tk.opts.InputSeparator)
}

// CheckYMD reports whether s is shaped YYYY<sep>M|MM<sep>D|DD.
func (tk *Toolkit) CheckYMD(s string) bool {
	return dateutils.CheckYMD(s, tk.opts.InputSeparator)
}

// Clean normalizes s to the configured output separator and order.
func (tk *Toolkit) Clean(s string) (string, error) {
	return dateutils.CleanDate(s, tk.opts.InputSeparator, tk.opts.OutputSeparator, tk.opts.Order)
}

// Validate checks that s is a real calendar date.
func (tk *Toolkit) Validate(s string) error {
	return dateutils.ValidateDate(s, tk.opts.InputSeparator)
}

// Extract returns the day, month and year of s.
func (tk *Toolkit) Extract(s string) (Components, error) {
	return dateutils.ExtractDates(s, tk.opts.InputSeparator, tk.opts.OutputSeparator)
}

// Before reports whether date a is strictly before date b. Both are
// validated first.
func (tk *Toolkit) Before(a, b string) (bool, error) {
	ca, err := tk.canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := tk.canonical(b)
	if err != nil {
		return false, err
	}
	return dateutils.CheckFirstSecondDates(ca, cb, tk.opts.OutputSeparator)
}

// Time converts s to midnight UTC of that day.
func (tk *Toolkit) Time(s string) (time.Time, error) {
	c, err := tk.canonical(s)
	if err != nil {
		return time.Time{}, err
	}
	return dateutils.ToTime(c, tk.opts.OutputSeparator)
}

// Days returns the number of days from first to second; first must be
// strictly before second.
func (tk *Toolkit) Days(first, second string) (int, error) {
	return dateutils.CalculateDays(first, second, tk.opts.InputSeparator, tk.opts.OutputSeparator)
}

// DaysPast returns the number of days since s, which must be before today.
func (tk *Toolkit) DaysPast(s string) (int, error) {
	return dateutils.GetDaysPast(s, tk.opts.InputSeparator, tk.opts.OutputSeparator)
}

// DaysPastAt is DaysPast with an explicit current time.
func (tk *Toolkit) DaysPastAt(s string, now time.Time) (int, error) {
	return dateutils.DaysPastAt(s, now, tk.opts.InputSeparator, tk.opts.OutputSeparator)
}

// Age returns the age in whole years of someone born on born as of asOf.
func (tk *Toolkit) Age(born, asOf string) (int, error) {
	b, err := tk.Time(born)
	if err != nil {
		return 0, err
	}
	a, err := tk.Time(asOf)
	if err != nil {
		return 0, err
	}
	return dateutils.CalculateAge(b, a), nil
}

// ReplaceNil returns "" when s is one of the configured sentinel dates.
func (tk *Toolkit) ReplaceNil(s string) string {
	return dateutils.ReplaceUnwantedDate(s, tk.opts.NilDates)
}

// canonical validates s and normalizes it to day-first form, which is what
// the comparison helpers expect.
func (tk *Toolkit) canonical(s string) (string, error) {
	if err := tk.Validate(s); err != nil {
		return "", err
	}
	return dateutils.CleanDate(s, tk.opts.InputSeparator, tk.opts.OutputSeparator, OrderDMY)
}

// SetLogger routes the toolkit's diagnostics to logger.
func SetLogger(logger logging.Logger) {
	dateutils.SetLogger(logger)
}

// ParseOrder maps "y" to OrderYMD and anything else to OrderDMY.
func ParseOrder(flag string) Order { return dateutils.ParseOrder(flag) }

// IsLeapYear reports whether a four digit year string is a leap year.
func IsLeapYear(year string) bool { return dateutils.IsLeapYear(year) }

// MonthYear turns "October 2018" into "Oct-18".
func MonthYear(s string) (string, error) { return dateutils.ConvertToMmmYy(s) }

// CalculateAge returns full years between born and asOf.
func CalculateAge(born, asOf time.Time) int { return dateutils.CalculateAge(born, asOf) }

// CalculateDaysDt returns the absolute number of whole days between two instants.
func CalculateDaysDt(first, second time.Time) int { return dateutils.CalculateDaysDt(first, second) }

// DefaultNilDates returns the epoch-zero sentinel strings.
func DefaultNilDates() []string { return dateutils.DefaultNilDates() }

// ConvertDatetime formats t with a strftime-style format.
func ConvertDatetime(t time.Time, format string) (string, error) {
	return dateutils.ConvertDatetime(t, format)
}

// ConvertToDatetime parses s with a strftime-style format.
func ConvertToDatetime(s, format string) (time.Time, error) {
	return dateutils.ConvertToDatetime(s, format)
}

// Package batch validates, normalizes and measures tabular date data.
package batch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/report"
	"fjacquet/datetools/pkg/datetools"

	"github.com/shopspring/decimal"
)

// DateRow is one input record: a date and an optional second date.
type DateRow struct {
	FirstDate  string `csv:"first_date"`
	SecondDate string `csv:"second_date"`
}

// ResultRow is the processed form of a DateRow.
type ResultRow struct {
	FirstDate     string `csv:"first_date"`
	SecondDate    string `csv:"second_date"`
	CleanedFirst  string `csv:"cleaned_first"`
	CleanedSecond string `csv:"cleaned_second"`
	Valid         bool   `csv:"valid"`
	Days          string `csv:"days"`
	Error         string `csv:"error"`
}

// Failure kinds counted in report.Summary.Failures.
const (
	FailureFormat   = "format"
	FailureRange    = "range"
	FailureOrdering = "ordering"
	FailureOther    = "other"
)

// Processor applies a Toolkit to many rows.
type Processor struct {
	toolkit *datetools.Toolkit
	logger  logging.Logger
	now     func() time.Time
}

// NewProcessor creates a Processor. A nil logger uses the default one.
func NewProcessor(toolkit *datetools.Toolkit, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{
		toolkit: toolkit,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock returns a copy of p whose "today" comes from now.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	cp := *p
	cp.now = now
	return &cp
}

// ProcessValues processes single-column input, such as dates pulled from XML.
func (p *Processor) ProcessValues(values []string) ([]ResultRow, report.Summary) {
	rows := make([]DateRow, len(values))
	for i, v := range values {
		rows[i] = DateRow{FirstDate: v}
	}
	return p.Process(rows)
}

// Process handles every row and aggregates the outcome. Rows where both
// dates are blank (or sentinel dates) are counted as blank. A row is valid
// when each present date is a real calendar date; a span is then computed
// between the two dates, or from the first date to today when the second is
// absent. A span that cannot be computed because the dates are out of order
// leaves the row valid and records the error.
func (p *Processor) Process(rows []DateRow) ([]ResultRow, report.Summary) {
	today := p.now()
	results := make([]ResultRow, 0, len(rows))
	acc := newAccumulator()

	for i, row := range rows {
		res := p.processRow(row, today, acc)
		if res.Error != "" {
			p.logger.Debug("Row failed",
				logging.F(logging.FieldRow, i+1),
				logging.F(logging.FieldReason, res.Error))
		}
		results = append(results, res)
	}

	summary := acc.summary(p.formatDate)
	p.logger.Info("Processed date rows",
		logging.F(logging.FieldCount, summary.Total),
		logging.F("valid", summary.Valid),
		logging.F("invalid", summary.Invalid),
		logging.F("spans", summary.Spans))
	return results, summary
}

func (p *Processor) processRow(row DateRow, today time.Time, acc *accumulator) ResultRow {
	res := ResultRow{FirstDate: row.FirstDate, SecondDate: row.SecondDate}
	acc.total++

	first := p.toolkit.ReplaceNil(strings.TrimSpace(row.FirstDate))
	second := p.toolkit.ReplaceNil(strings.TrimSpace(row.SecondDate))
	if first == "" && second == "" {
		acc.blank++
		return res
	}

	cleanedFirst, firstTime, err := p.normalize(first)
	if err != nil {
		return p.invalid(res, fmt.Errorf("first date: %w", err), acc)
	}
	cleanedSecond, secondTime, err := p.normalize(second)
	if err != nil {
		return p.invalid(res, fmt.Errorf("second date: %w", err), acc)
	}

	res.CleanedFirst, res.CleanedSecond = cleanedFirst, cleanedSecond
	res.Valid = true
	acc.valid++
	acc.include(firstTime)
	acc.include(secondTime)

	var days int
	switch {
	case first != "" && second != "":
		days, err = p.toolkit.Days(first, second)
	case first != "":
		days, err = p.toolkit.DaysPastAt(first, today)
	default:
		return res
	}
	if err != nil {
		res.Error = err.Error()
		acc.failures[failureKind(err)]++
		return res
	}

	res.Days = strconv.Itoa(days)
	acc.addSpan(days)
	return res
}

// normalize validates and cleans a present date. Blank dates pass through
// with a zero time.
func (p *Processor) normalize(date string) (string, time.Time, error) {
	if date == "" {
		return "", time.Time{}, nil
	}
	t, err := p.toolkit.Time(date)
	if err != nil {
		return "", time.Time{}, err
	}
	cleaned, err := p.toolkit.Clean(date)
	if err != nil {
		return "", time.Time{}, err
	}
	return cleaned, t, nil
}

func (p *Processor) invalid(res ResultRow, err error, acc *accumulator) ResultRow {
	res.Error = err.Error()
	acc.invalid++
	acc.failures[failureKind(err)]++
	return res
}

// formatDate renders t in the toolkit's output order and separator.
func (p *Processor) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	opts := p.toolkit.Options()
	sep := opts.OutputSeparator
	if opts.Order == datetools.OrderYMD {
		return fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), sep, int(t.Month()), sep, t.Day())
	}
	return fmt.Sprintf("%02d%s%02d%s%04d", t.Day(), sep, int(t.Month()), sep, t.Year())
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, datetools.ErrFormat):
		return FailureFormat
	case errors.Is(err, datetools.ErrRange):
		return FailureRange
	case errors.Is(err, datetools.ErrOrdering):
		return FailureOrdering
	default:
		return FailureOther
	}
}

type accumulator struct {
	total, valid, invalid, blank int
	spans, totalDays             int
	minDays, maxDays             int
	seen                         DateRange
	failures                     map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{failures: make(map[string]int)}
}

func (a *accumulator) include(t time.Time) {
	if !t.IsZero() {
		a.seen = a.seen.Include(t)
	}
}

func (a *accumulator) addSpan(days int) {
	if a.spans == 0 || days < a.minDays {
		a.minDays = days
	}
	if a.spans == 0 || days > a.maxDays {
		a.maxDays = days
	}
	a.spans++
	a.totalDays += days
}

func (a *accumulator) summary(format func(time.Time) string) report.Summary {
	s := report.Summary{
		Total:     a.total,
		Valid:     a.valid,
		Invalid:   a.invalid,
		Blank:     a.blank,
		Spans:     a.spans,
		TotalDays: a.totalDays,
		MinDays:   a.minDays,
		MaxDays:   a.maxDays,
		MeanDays:  decimal.Zero,
		Earliest:  format(a.seen.Start),
		Latest:    format(a.seen.End),
	}
	if a.spans > 0 {
		s.MeanDays = decimal.NewFromInt(int64(a.totalDays)).
			Div(decimal.NewFromInt(int64(a.spans))).
			Round(2)
	}
	if len(a.failures) > 0 {
		s.Failures = a.failures
	}
	return s
}

package batch

import (
	"testing"
	"time"

	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/pkg/datetools"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }
}

func newTestProcessor(t *testing.T, opts datetools.Options, now func() time.Time) (*Processor, *logging.MockLogger) {
	t.Helper()
	mock := logging.NewMockLogger()
	return NewProcessor(datetools.New(opts), mock).WithClock(now), mock
}

func TestProcessor_Process(t *testing.T) {
	p, mock := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))

	rows := []DateRow{
		{FirstDate: "01/01/2020", SecondDate: "31/01/2020"},
		{FirstDate: "2020/2/1"},
		{FirstDate: "31/04/2020", SecondDate: "01/05/2020"},
		{FirstDate: "01/01/1970"},
		{},
		{FirstDate: "15/03/2020", SecondDate: "01/03/2020"},
		{FirstDate: "garbage", SecondDate: "01/01/2020"},
		{SecondDate: " 5/1/2020 "},
		{FirstDate: "10/03/2020"},
	}

	results, summary := p.Process(rows)
	require.Len(t, results, len(rows))

	expected := []ResultRow{
		{FirstDate: "01/01/2020", SecondDate: "31/01/2020", CleanedFirst: "01/01/2020", CleanedSecond: "31/01/2020", Valid: true, Days: "30"},
		{FirstDate: "2020/2/1", CleanedFirst: "01/02/2020", Valid: true, Days: "29"},
		{FirstDate: "31/04/2020", SecondDate: "01/05/2020", Error: "first date: date '31/04/2020' out of range: day=31 not in 1-30"},
		{FirstDate: "01/01/1970"},
		{},
		{FirstDate: "15/03/2020", SecondDate: "01/03/2020", CleanedFirst: "15/03/2020", CleanedSecond: "01/03/2020", Valid: true, Error: "date '15/03/2020' is not before '01/03/2020'"},
		{FirstDate: "garbage", SecondDate: "01/01/2020", Error: "first date: invalid date format 'garbage' (separator '/'): expected DD/MM/YYYY or YYYY/MM/DD"},
		{SecondDate: " 5/1/2020 ", CleanedSecond: "05/01/2020", Valid: true},
		{FirstDate: "10/03/2020", CleanedFirst: "10/03/2020", Valid: true, Error: "date '10/03/2020' is not before '01/03/2020'"},
	}
	for i := range expected {
		assert.Equal(t, expected[i], results[i], "row %d", i+1)
	}

	assert.Equal(t, 9, summary.Total)
	assert.Equal(t, 5, summary.Valid)
	assert.Equal(t, 2, summary.Invalid)
	assert.Equal(t, 2, summary.Blank)
	assert.Equal(t, 2, summary.Spans)
	assert.Equal(t, 59, summary.TotalDays)
	assert.Equal(t, 29, summary.MinDays)
	assert.Equal(t, 30, summary.MaxDays)
	assert.True(t, decimal.RequireFromString("29.5").Equal(summary.MeanDays), summary.MeanDays.String())
	assert.Equal(t, "01/01/2020", summary.Earliest)
	assert.Equal(t, "15/03/2020", summary.Latest)
	assert.Equal(t, map[string]int{
		FailureRange:    1,
		FailureFormat:   1,
		FailureOrdering: 2,
	}, summary.Failures)

	assert.True(t, mock.HasEntry("INFO", "Processed date rows"))
	assert.Len(t, mock.GetEntriesByLevel("DEBUG"), 4)
}

func TestProcessor_Process_Empty(t *testing.T) {
	p, _ := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))

	results, summary := p.Process(nil)
	assert.Empty(t, results)
	assert.Equal(t, 0, summary.Total)
	assert.True(t, summary.MeanDays.IsZero())
	assert.Empty(t, summary.Earliest)
	assert.Nil(t, summary.Failures)
}

func TestProcessor_MeanIsRounded(t *testing.T) {
	p, _ := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))

	_, summary := p.Process([]DateRow{
		{FirstDate: "01/01/2020", SecondDate: "02/01/2020"},
		{FirstDate: "01/01/2020", SecondDate: "02/01/2020"},
		{FirstDate: "01/01/2020", SecondDate: "03/01/2020"},
	})

	assert.Equal(t, 3, summary.Spans)
	assert.Equal(t, "1.33", summary.MeanDays.StringFixed(2))
	assert.True(t, decimal.RequireFromString("1.33").Equal(summary.MeanDays))
}

func TestProcessor_ProcessValues_YearFirstOutput(t *testing.T) {
	opts := datetools.Options{InputSeparator: "-", OutputSeparator: "/", Order: datetools.OrderYMD}
	p, _ := newTestProcessor(t, opts, fixedClock(2023, time.February, 1))

	results, summary := p.ProcessValues([]string{"2023-01-05", "2023-01-31", "2023-13-01"})
	require.Len(t, results, 3)

	assert.Equal(t, "2023/01/05", results[0].CleanedFirst)
	assert.Equal(t, "27", results[0].Days)
	assert.Equal(t, "1", results[1].Days)
	assert.False(t, results[2].Valid)
	assert.Contains(t, results[2].Error, "month=13")

	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, "2023/01/05", summary.Earliest)
	assert.Equal(t, "2023/01/31", summary.Latest)
}

func TestProcessor_CustomNilDates(t *testing.T) {
	opts := datetools.DefaultOptions()
	opts.NilDates = []string{"31/12/9999"}
	p, _ := newTestProcessor(t, opts, fixedClock(2020, time.March, 1))

	_, summary := p.Process([]DateRow{
		{FirstDate: "31/12/9999"},
		{FirstDate: "01/01/1970", SecondDate: "02/01/1970"},
	})

	assert.Equal(t, 1, summary.Blank)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.TotalDays)
}

func TestDateRange(t *testing.T) {
	jan := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)

	var dr DateRange
	assert.Equal(t, "", dr.String())

	dr = dr.Include(feb)
	assert.Equal(t, "2020-02-01_2020-02-01", dr.String())

	dr = dr.Include(jan).Include(mar)
	assert.Equal(t, "2020-01-01_2020-03-01", dr.String())

	merged := DateRange{Start: feb}.Merge(DateRange{End: mar})
	assert.Equal(t, DateRange{Start: feb, End: mar}, merged)
}

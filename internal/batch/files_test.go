package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/datetools/internal/common"
	"fjacquet/datetools/internal/parsererror"
	"fjacquet/datetools/internal/xmlutils"
	"fjacquet/datetools/pkg/datetools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestProcessor_ProcessCSVFile(t *testing.T) {
	p, _ := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out", "result.csv")
	writeFile(t, in, "first_date,second_date\n01/01/2020,31/01/2020\n30/02/2020,\n")

	summary, err := p.ProcessCSVFile(in, out)
	require.NoError(t, err)
	assert.Equal(t, in, summary.Source)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Invalid)

	results, err := common.ReadCSVFile[ResultRow](out)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "30", results[0].Days)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.Contains(t, results[1].Error, "day=30 not in 1-29")
}

func TestProcessor_ProcessCSVFile_Errors(t *testing.T) {
	p, _ := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))
	dir := t.TempDir()

	_, err := p.ProcessCSVFile(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.csv"))
	require.Error(t, err)

	headerOnly := filepath.Join(dir, "empty.csv")
	writeFile(t, headerOnly, "first_date,second_date\n")
	_, err = p.ProcessCSVFile(headerOnly, filepath.Join(dir, "out.csv"))
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "no rows", formatErr.Msg)
}

func TestProcessor_ProcessXMLFile(t *testing.T) {
	opts := datetools.Options{InputSeparator: "-"}
	p, _ := newTestProcessor(t, opts, fixedClock(2023, time.February, 1))
	dir := t.TempDir()
	in := filepath.Join(dir, "statement.xml")
	out := filepath.Join(dir, "dates.csv")
	writeFile(t, in, `<Document><Ntry><BookgDt><Dt>2023-01-05</Dt></BookgDt></Ntry>
<Ntry><BookgDt><Dt>2023-01-30</Dt></BookgDt></Ntry></Document>`)

	summary, err := p.ProcessXMLFile(in, "//Ntry/BookgDt/Dt", out)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 27+2, summary.TotalDays)

	results, err := common.ReadCSVFile[ResultRow](out)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "05/01/2023", results[0].CleanedFirst)

	_, err = p.ProcessXMLFile(in, "//ValDt/Dt", out)
	var extractErr *parsererror.DataExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestProcessor_ProcessXMLFile_StatementPeriod(t *testing.T) {
	preset, err := xmlutils.Preset("from")
	require.NoError(t, err)

	opts := datetools.Options{InputSeparator: preset.Separator}
	p, _ := newTestProcessor(t, opts, fixedClock(2023, time.July, 1))
	dir := t.TempDir()
	in := filepath.Join(dir, "statement.xml")
	out := filepath.Join(dir, "dates.csv")
	writeFile(t, in, `<Document><BkToCstmrStmt>
<Stmt><FrToDt><FrDtTm>2023-01-01T00:00:00</FrDtTm></FrToDt></Stmt>
<Stmt><FrToDt><FrDtTm>2023-06-30T23:59:59.000+02:00</FrDtTm></FrToDt></Stmt>
</BkToCstmrStmt></Document>`)

	summary, err := p.ProcessXMLFile(in, preset.XPath, out)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 0, summary.Invalid)
	assert.Equal(t, "01/01/2023", summary.Earliest)
	assert.Equal(t, "30/06/2023", summary.Latest)
}

func TestProcessor_ProcessDirectory(t *testing.T) {
	p, mock := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(inDir, "a.csv"), "first_date,second_date\n01/01/2020,02/01/2020\n")
	writeFile(t, filepath.Join(inDir, "b.csv"), "first_date,second_date\n01/02/2020,\n")
	writeFile(t, filepath.Join(inDir, "notes.txt"), "ignored")

	summaries, err := p.ProcessDirectory(inDir, outDir)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].TotalDays)
	assert.Equal(t, 29, summaries[1].TotalDays)

	assert.FileExists(t, filepath.Join(outDir, "a-dates.csv"))
	assert.FileExists(t, filepath.Join(outDir, "b-dates.csv"))
	assert.True(t, mock.HasEntry("INFO", "Processed directory"))

	_, err = p.ProcessDirectory(filepath.Join(dir, "missing"), outDir)
	assert.Error(t, err)
}

func TestProcessor_ProcessDirectory_NestedSameName(t *testing.T) {
	p, _ := newTestProcessor(t, datetools.DefaultOptions(), fixedClock(2020, time.March, 1))
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(inDir, "a", "x.csv"), "first_date,second_date\n01/01/2020,02/01/2020\n")
	writeFile(t, filepath.Join(inDir, "b", "x.csv"), "first_date,second_date\n01/01/2020,11/01/2020\n")

	summaries, err := p.ProcessDirectory(inDir, outDir)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	first, err := common.ReadCSVFile[ResultRow](filepath.Join(outDir, "a", "x-dates.csv"))
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "1", first[0].Days)

	second, err := common.ReadCSVFile[ResultRow](filepath.Join(outDir, "b", "x-dates.csv"))
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "10", second[0].Days)

	assert.NoFileExists(t, filepath.Join(outDir, "x-dates.csv"))
}

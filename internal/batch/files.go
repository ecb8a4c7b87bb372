package batch

import (
	"fmt"

	"fjacquet/datetools/internal/common"
	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/parsererror"
	"fjacquet/datetools/internal/report"
	"fjacquet/datetools/internal/xmlutils"
)

// ResultSuffix is appended to input base names when a directory is processed.
const ResultSuffix = "-dates"

// ProcessCSVFile reads DateRows from inputFile and writes ResultRows to
// outputFile.
func (p *Processor) ProcessCSVFile(inputFile, outputFile string) (report.Summary, error) {
	rows, err := common.ReadCSVFile[DateRow](inputFile)
	if err != nil {
		return report.Summary{}, err
	}
	if len(rows) == 0 {
		return report.Summary{}, &parsererror.InvalidFormatError{
			FilePath:       inputFile,
			ExpectedFormat: "CSV with first_date and second_date columns",
			Msg:            "no rows",
		}
	}

	results, summary := p.Process(rows)
	summary.Source = inputFile
	if err := common.WriteCSVFile(results, outputFile); err != nil {
		return summary, err
	}
	return summary, nil
}

// ProcessXMLFile extracts the dates matching xpath from xmlFile and writes
// ResultRows to outputFile. The time of ISO date-times is dropped.
func (p *Processor) ProcessXMLFile(xmlFile, xpath, outputFile string) (report.Summary, error) {
	values, err := xmlutils.ExtractWithXPath(xmlFile, xpath)
	if err != nil {
		return report.Summary{}, err
	}

	p.logger.Debug("Extracted dates from XML",
		logging.F(logging.FieldFile, xmlFile),
		logging.F(logging.FieldXPath, xpath),
		logging.F(logging.FieldCount, len(values)))

	for i, v := range values {
		values[i] = xmlutils.DatePart(v)
	}

	results, summary := p.ProcessValues(values)
	summary.Source = xmlFile
	if err := common.WriteCSVFile(results, outputFile); err != nil {
		return summary, err
	}
	return summary, nil
}

// ProcessDirectory processes every .csv file under inputDir and writes one
// result file per input into outputDir, keeping the input's subdirectory. It stops at the first failing file
// and returns the summaries of the files processed so far.
func (p *Processor) ProcessDirectory(inputDir, outputDir string) ([]report.Summary, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".csv")
	if err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	summaries := make([]report.Summary, 0, len(files))
	for _, file := range files {
		out := fileutils.MirrorPath(file, inputDir, outputDir, ResultSuffix, ".csv")
		summary, err := p.ProcessCSVFile(file, out)
		if err != nil {
			return summaries, fmt.Errorf("processing %s: %w", file, err)
		}
		summaries = append(summaries, summary)
	}

	p.logger.Info("Processed directory",
		logging.F(logging.FieldInputFile, inputDir),
		logging.F(logging.FieldOutputFile, outputDir),
		logging.F(logging.FieldCount, len(summaries)))
	return summaries, nil
}

// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/datetools/internal/batch"
	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/report"
	"fjacquet/datetools/internal/validation"
)

// Errors returned for missing command input.
var (
	ErrMissingInput  = errors.New("input must be specified with -i")
	ErrMissingOutput = errors.New("output must be specified with -o")
)

// ReportOptions select where and how a summary report is written. An empty
// Path disables the report.
type ReportOptions struct {
	Path   string
	Format string
}

// CheckPaths validates the input and output flags of the batch commands.
func CheckPaths(input, output string) error {
	if input == "" {
		return ErrMissingInput
	}
	if output == "" {
		return ErrMissingOutput
	}
	if err := validation.IsValidInputPath(input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// Validate checks the report options when a report is requested.
func (ro ReportOptions) Validate() error {
	if ro.Path == "" {
		return nil
	}
	return validation.IsValidReportFormat(ro.Format)
}

// ProcessCSV runs the processor over a CSV file, or over every CSV file of a
// directory, and writes the requested reports. In directory mode the report
// path is a directory receiving one report per input file.
func ProcessCSV(p *batch.Processor, gen *report.Generator, input, output string, ro ReportOptions, out io.Writer, log logging.Logger) error {
	if err := CheckPaths(input, output); err != nil {
		return err
	}
	if err := ro.Validate(); err != nil {
		return err
	}

	if fileutils.DirectoryExists(input) {
		log.Info("Processing directory",
			logging.F(logging.FieldInputFile, input),
			logging.F(logging.FieldOutputFile, output))

		summaries, err := p.ProcessDirectory(input, output)
		for _, s := range summaries {
			PrintSummary(out, s)
			if ro.Path == "" {
				continue
			}
			path := fileutils.MirrorPath(s.Source, input, ro.Path, "-summary", "."+ro.Format)
			if werr := gen.WriteReport(s, ro.Format, path); werr != nil {
				return werr
			}
		}
		return err
	}

	log.Info("Processing CSV file",
		logging.F(logging.FieldInputFile, input),
		logging.F(logging.FieldOutputFile, output))

	summary, err := p.ProcessCSVFile(input, output)
	if err != nil {
		return err
	}
	return finish(gen, summary, ro, out)
}

// ProcessXML extracts dates from an XML document and processes them.
func ProcessXML(p *batch.Processor, gen *report.Generator, input, xpath, output string, ro ReportOptions, out io.Writer, log logging.Logger) error {
	if err := CheckPaths(input, output); err != nil {
		return err
	}
	if xpath == "" {
		return errors.New("an XPath expression is required (--xpath or --preset)")
	}
	if err := ro.Validate(); err != nil {
		return err
	}

	log.Info("Processing XML file",
		logging.F(logging.FieldInputFile, input),
		logging.F(logging.FieldXPath, xpath),
		logging.F(logging.FieldOutputFile, output))

	summary, err := p.ProcessXMLFile(input, xpath, output)
	if err != nil {
		return err
	}
	return finish(gen, summary, ro, out)
}

func finish(gen *report.Generator, summary report.Summary, ro ReportOptions, out io.Writer) error {
	PrintSummary(out, summary)
	if ro.Path == "" {
		return nil
	}
	return gen.WriteReport(summary, ro.Format, ro.Path)
}

// PrintSummary writes a one-line summary of a batch run.
func PrintSummary(out io.Writer, s report.Summary) {
	fmt.Fprintf(out, "%s: %d rows, %d valid, %d invalid, %d blank, %d spans (mean %s days)\n",
		s.Source, s.Total, s.Valid, s.Invalid, s.Blank, s.Spans, s.MeanDays.StringFixed(2))
}

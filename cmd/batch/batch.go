// Package batch handles batch processing of CSV date files
package batch

import (
	"fjacquet/datetools/cmd/common"
	"fjacquet/datetools/cmd/root"

	"github.com/spf13/cobra"
)

var (
	reportPath   string
	reportFormat string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate and measure the dates of a CSV file or directory",
	Long: `Read rows with first_date and second_date columns, validate and normalize
each date, and compute the span between them (or the days past since
first_date when second_date is empty). Results are written as CSV.

When -i is a directory, every .csv file below it is processed and one
result file per input is written into the -o directory.

Example:
  datetools batch -i dates.csv -o result.csv --report summary.json
  datetools batch -i input_dir/ -o output_dir/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := reportFormat
		if format == "" {
			format = root.ReportFormat()
		}
		return common.ProcessCSV(
			root.Processor(),
			root.ReportGenerator(),
			root.SharedFlags.Input,
			root.SharedFlags.Output,
			common.ReportOptions{Path: reportPath, Format: format},
			cmd.OutOrStdout(),
			root.Log,
		)
	},
}

func init() {
	Cmd.Flags().StringVar(&reportPath, "report", "", "Write a summary report to this file (a directory when -i is a directory)")
	Cmd.Flags().StringVar(&reportFormat, "report-format", "", "Report format: json or yaml (default from config)")
}

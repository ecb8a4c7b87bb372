// Package xml handles extraction and processing of dates from XML documents
package xml

import (
	"fmt"

	"fjacquet/datetools/cmd/common"
	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/internal/batch"
	"fjacquet/datetools/internal/xmlutils"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

var (
	xpath        string
	preset       string
	reportPath   string
	reportFormat string
)

// Cmd represents the xml command
var Cmd = &cobra.Command{
	Use:   "xml",
	Short: "Validate and measure the dates found in an XML document",
	Long: `Extract every date matching an XPath expression and process it like a
single-column batch: validation, normalization and days past.

Presets cover ISO 20022 bank statements and imply "-" as input separator
unless --in-sep is given.

Example:
  datetools xml -i statement.xml --preset booking -o dates.csv
  datetools xml -i doc.xml --xpath //Dt --in-sep - -o dates.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, processor, err := resolveQuery(xpath, preset, root.SharedFlags.InSep != "")
		if err != nil {
			return err
		}

		format := reportFormat
		if format == "" {
			format = root.ReportFormat()
		}
		return common.ProcessXML(
			processor,
			root.ReportGenerator(),
			root.SharedFlags.Input,
			query,
			root.SharedFlags.Output,
			common.ReportOptions{Path: reportPath, Format: format},
			cmd.OutOrStdout(),
			root.Log,
		)
	},
}

func init() {
	Cmd.Flags().StringVar(&xpath, "xpath", "", "XPath expression selecting the date nodes")
	Cmd.Flags().StringVar(&preset, "preset", "", fmt.Sprintf("Named XPath preset %v", xmlutils.PresetNames()))
	Cmd.Flags().StringVar(&reportPath, "report", "", "Write a summary report to this file")
	Cmd.Flags().StringVar(&reportFormat, "report-format", "", "Report format: json or yaml (default from config)")
}

// resolveQuery picks the XPath expression and a processor whose input
// separator matches the selected preset, unless one was set explicitly.
func resolveQuery(xpath, preset string, explicitSep bool) (string, *batch.Processor, error) {
	if preset == "" {
		return xpath, root.Processor(), nil
	}
	if xpath != "" {
		return "", nil, fmt.Errorf("--xpath and --preset are mutually exclusive")
	}

	p, err := xmlutils.Preset(preset)
	if err != nil {
		return "", nil, err
	}
	opts := root.Toolkit().Options()
	if !explicitSep {
		opts.InputSeparator = p.Separator
	}
	return p.XPath, batch.NewProcessor(datetools.New(opts), root.Log), nil
}

// Package report renders batch summaries as JSON or YAML documents.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Source    string          `json:"source,omitempty" yaml:"source,omitempty"`
	Total     int             `json:"total" yaml:"total"`
	Valid     int             `json:"valid" yaml:"valid"`
	Invalid   int             `json:"invalid" yaml:"invalid"`
	Blank     int             `json:"blank" yaml:"blank"`
	Spans     int             `json:"spans" yaml:"spans"`
	TotalDays int             `json:"total_days" yaml:"total_days"`
	MinDays   int             `json:"min_days" yaml:"min_days"`
	MaxDays   int             `json:"max_days" yaml:"max_days"`
	MeanDays  decimal.Decimal `json:"mean_days" yaml:"mean_days"`
	Earliest  string          `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest    string          `json:"latest,omitempty" yaml:"latest,omitempty"`
	Failures  map[string]int  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Generator renders summaries in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator. A nil logger uses the default one.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// Generate renders summary in the given format (json or yaml, case-insensitive).
func (g *Generator) Generate(summary Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSON(summary)
	case FormatYAML, "yml":
		return g.generateYAML(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteReport renders summary and writes it to path.
func (g *Generator) WriteReport(summary Summary, format, path string) error {
	data, err := g.Generate(summary, format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		g.logger.WithError(err).Error("Failed to write report")
		return fmt.Errorf("failed to write report: %w", err)
	}
	g.logger.Info("Report written",
		logging.F(logging.FieldReportFile, path),
		logging.F(logging.FieldReportFormat, format))
	return nil
}

func (g *Generator) generateJSON(summary Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(summary Summary) ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

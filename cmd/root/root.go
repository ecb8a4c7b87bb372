// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/datetools/internal/batch"
	"fjacquet/datetools/internal/config"
	"fjacquet/datetools/internal/container"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/report"
	"fjacquet/datetools/pkg/datetools"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	InSep    string
	OutSep   string
	Order    string
	Config   string
	LogLevel string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the components built from AppConfig
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "datetools",
		Short: "A CLI tool to validate, normalize and measure date strings.",
		Long: `datetools is a CLI tool that validates and normalizes loosely formatted
date strings (day-first or year-first, any separator) and computes day spans,
ages and days past. It also processes CSV files and XML documents in batch.`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	flags.StringVar(&SharedFlags.InSep, "in-sep", "", "Separator of input dates (default from config, \"/\")")
	flags.StringVar(&SharedFlags.OutSep, "out-sep", "", "Separator of output dates (default from config, \"/\")")
	flags.StringVar(&SharedFlags.Order, "order", "", "Output order: d (day first) or y (year first)")
	flags.StringVar(&SharedFlags.Config, "config", "", "Config file (default datetools.yaml in $HOME/.datetools, .datetools or .)")
	flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Setup loads the environment and configuration, applies flag overrides and
// builds the application container.
func Setup() error {
	config.LoadEnv(Log)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	logging.SetDefaultLogger(Log)
	return nil
}

func loadConfig() (*config.Config, error) {
	if SharedFlags.Config != "" {
		return config.LoadFile(SharedFlags.Config)
	}
	return config.InitializeConfig()
}

// applyFlags overrides configuration values with the flags that were set.
func applyFlags(cfg *config.Config) error {
	if SharedFlags.InSep != "" {
		cfg.Dates.InputSeparator = SharedFlags.InSep
	}
	if SharedFlags.OutSep != "" {
		cfg.Dates.OutputSeparator = SharedFlags.OutSep
	}
	if SharedFlags.Order != "" {
		if SharedFlags.Order != "d" && SharedFlags.Order != "y" {
			return fmt.Errorf("invalid --order %q (must be 'd' or 'y')", SharedFlags.Order)
		}
		cfg.Dates.OutputOrder = SharedFlags.Order
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	return nil
}

// GetContainer returns the application container, or nil before Setup.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before Setup.
func GetConfig() *config.Config {
	return AppConfig
}

// Toolkit returns the configured toolkit. Before Setup it returns a toolkit
// with default options.
func Toolkit() *datetools.Toolkit {
	if AppContainer == nil {
		return datetools.New(datetools.DefaultOptions())
	}
	return AppContainer.GetToolkit()
}

// Processor returns the configured batch processor, or one built on the
// default toolkit before Setup.
func Processor() *batch.Processor {
	if AppContainer == nil {
		return batch.NewProcessor(Toolkit(), Log)
	}
	return AppContainer.GetProcessor()
}

// ReportGenerator returns the report generator.
func ReportGenerator() *report.Generator {
	if AppContainer == nil {
		return report.NewGenerator(Log)
	}
	return AppContainer.GetReportGenerator()
}

// ReportFormat returns the configured report format.
func ReportFormat() string {
	if AppConfig == nil || AppConfig.Report.Format == "" {
		return report.FormatJSON
	}
	return AppConfig.Report.Format
}

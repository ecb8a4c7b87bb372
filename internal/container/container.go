// Package container provides dependency injection for the datetools CLI.
// It centralizes the creation and wiring of the application's components
// from a loaded configuration.
package container

import (
	"fmt"

	"fjacquet/datetools/internal/batch"
	"fjacquet/datetools/internal/common"
	"fjacquet/datetools/internal/config"
	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/report"
	"fjacquet/datetools/internal/xmlutils"
	"fjacquet/datetools/pkg/datetools"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be read through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	toolkit   *datetools.Toolkit
	processor *batch.Processor
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies, building the
// logger from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger. The logger
// also becomes the logger of the library packages.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if len(cfg.CSV.Delimiter) != 1 {
		return nil, fmt.Errorf("CSV delimiter must be a single character, got: %q", cfg.CSV.Delimiter)
	}

	datetools.SetLogger(logger)
	common.SetLogger(logger)
	fileutils.SetLogger(logger)
	xmlutils.SetLogger(logger)
	common.SetDelimiter(rune(cfg.CSV.Delimiter[0]))

	toolkit := datetools.New(ToolkitOptions(cfg))
	processor := batch.NewProcessor(toolkit, logger)
	generator := report.NewGenerator(logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldSeparator, cfg.Dates.InputSeparator),
		logging.F(logging.FieldOrder, cfg.Dates.OutputOrder),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		logger:    logger,
		config:    cfg,
		toolkit:   toolkit,
		processor: processor,
		generator: generator,
	}, nil
}

// ToolkitOptions maps the dates section of the configuration to toolkit options.
func ToolkitOptions(cfg *config.Config) datetools.Options {
	return datetools.Options{
		InputSeparator:  cfg.Dates.InputSeparator,
		OutputSeparator: cfg.Dates.OutputSeparator,
		Order:           datetools.ParseOrder(cfg.Dates.OutputOrder),
		NilDates:        cfg.Dates.NilDates,
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetToolkit returns the toolkit configured from the dates section.
func (c *Container) GetToolkit() *datetools.Toolkit {
	return c.toolkit
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}

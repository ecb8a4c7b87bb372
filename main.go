package main

import (
	"strings"

	"fjacquet/datetools/cmd/age"
	"fjacquet/datetools/cmd/batch"
	"fjacquet/datetools/cmd/clean"
	"fjacquet/datetools/cmd/days"
	"fjacquet/datetools/cmd/leap"
	"fjacquet/datetools/cmd/month"
	"fjacquet/datetools/cmd/root"
	"fjacquet/datetools/cmd/since"
	"fjacquet/datetools/cmd/validate"
	"fjacquet/datetools/cmd/xml"
	"fjacquet/datetools/internal/config"
	"fjacquet/datetools/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// Pick up DATETOOLS_LOG_LEVEL before any package logs, including from .env.
	config.LoadEnv(logging.GetLogger())
	logging.SetAllLogLevels(initialLogLevel())

	root.Init()

	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(clean.Cmd)
	root.Cmd.AddCommand(days.Cmd)
	root.Cmd.AddCommand(since.Cmd)
	root.Cmd.AddCommand(age.Cmd)
	root.Cmd.AddCommand(leap.Cmd)
	root.Cmd.AddCommand(month.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(xml.Cmd)
}

func initialLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		reportFailure(root.Log, err)
	}
}

// reportFailure logs err once at fatal level, which exits with status 1.
func reportFailure(log logging.Logger, err error) {
	log.WithError(err).Fatal("Command failed")
}

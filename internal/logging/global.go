package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewLogrusAdapterFromLogger(logrus.StandardLogger())
)

// GetLogger returns the process-wide default logger. Packages use it as the
// initial value of their own logger until SetLogger is called on them.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger. A nil logger is ignored.
func SetDefaultLogger(logger Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetAllLogLevels sets the level of the logrus standard logger and of the
// default logger when it is logrus-backed.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if adapter, ok := defaultLogger.(*LogrusAdapter); ok {
		adapter.SetLevel(level)
	}
}

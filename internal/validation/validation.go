// Package validation checks user supplied paths and formats before any work
// is done with them.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// IsValidInputPath checks that path exists and is a regular file or a directory.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidReportFormat checks if the given report format is supported.
// Matching is case-insensitive and "yml" is accepted for YAML.
func IsValidReportFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %q. Supported formats are 'json', 'yaml'", format)
	}
}

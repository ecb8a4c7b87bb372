// Package xmlutils extracts date strings from XML documents with XPath.
package xmlutils

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"
	"fjacquet/datetools/internal/parsererror"

	"gopkg.in/xmlpath.v2"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := fileutils.OpenFile(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}

	return root, nil
}

// ExtractFromXML returns the cleaned text of every node matching xpath.
// A query that matches nothing, or only blank nodes, is a
// *parsererror.DataExtractionError.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		if v := CleanText(iter.Node().String()); v != "" {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return nil, &parsererror.DataExtractionError{
			FieldName: xpath,
			Reason:    "no matching nodes",
			Msg:       "could not extract dates",
		}
	}

	log.Debug("Extracted values from XML",
		logging.F(logging.FieldXPath, xpath),
		logging.F(logging.FieldCount, len(values)))
	return values, nil
}

// ExtractWithXPath extracts values from an XML file using an XPath expression
func ExtractWithXPath(xmlFilePath, xpath string) ([]string, error) {
	root, err := LoadXMLFile(xmlFilePath)
	if err != nil {
		return nil, err
	}

	values, err := ExtractFromXML(root, xpath)
	var extractErr *parsererror.DataExtractionError
	if errors.As(err, &extractErr) {
		extractErr.FilePath = xmlFilePath
	}
	return values, err
}

// CleanText trims the node text and collapses internal runs of whitespace
// to a single space.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// DatePart returns the date of an ISO 8601 date-time such as
// "2023-01-01T00:00:00+01:00". Other values are returned unchanged.
func DatePart(value string) string {
	i := strings.IndexByte(value, 'T')
	if i <= 0 || i+1 >= len(value) || !isDigit(value[i-1]) || !isDigit(value[i+1]) {
		return value
	}
	return value[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Package common provides the CSV plumbing shared by the batch commands.
package common

import (
	"encoding/csv"
	"fmt"

	"fjacquet/datetools/internal/fileutils"
	"fjacquet/datetools/internal/logging"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the field delimiter used to read and write CSV files.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type whose csv tags map to the header columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.Info("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteCSVFile writes rows to csvFile with a header line, creating the parent
// directory when needed.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	log.Info("Writing CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDelimiter, string(Delimiter)))

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote CSV file", logging.F(logging.FieldFile, csvFile))
	return nil
}

package logging

// Standardized field names for structured logging.
// Keeping them in one place lets diagnostics from the date toolkit, the batch
// processor and the CLI be filtered on the same keys.
const (
	FieldInput        = "input"
	FieldSeparator    = "separator"
	FieldOrder        = "order"
	FieldPosition     = "position"
	FieldMonth        = "month"
	FieldYear         = "year"
	FieldReason       = "reason"
	FieldOperation    = "operation"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldCount        = "count"
	FieldRow          = "row"
	FieldXPath        = "xpath"
	FieldFile         = "file_path"
	FieldDelimiter    = "delimiter"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
	FieldReportFile   = "report_file"
	FieldReportFormat = "report_format"
)

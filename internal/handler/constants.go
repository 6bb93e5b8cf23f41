package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// DefaultExportFormat is used when the export request names no format.
const DefaultExportFormat = "xml"

// exportContentTypes maps each export format to its response media type.
var exportContentTypes = map[string]string{
	"xml":    "application/xml",
	"csv":    "text/csv",
	"ndjson": "application/x-ndjson",
}

package domain

import (
	"fmt"
	"time"
)

// ImportStatus is the classification of a finished import.
type ImportStatus string

const (
	ImportStatusCompleted           ImportStatus = "completed"
	ImportStatusCompletedWithErrors ImportStatus = "completed_with_errors"
	ImportStatusFailed              ImportStatus = "failed"
)

// ItemFailure is one product element that failed validation.
type ItemFailure struct {
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

func (f *ItemFailure) Error() string {
	return fmt.Sprintf("Failed to parse product at position %d: %s", f.Position, f.Reason)
}

// ItemOutcome holds the result of validating a single product element:
// exactly one of Product or Failure is set.
type ItemOutcome struct {
	Position int
	Product  *Product
	Failure  *ItemFailure
}

// ParseResult is the aggregate of parsing one XML document.
type ParseResult struct {
	Products       []Product `json:"products"`
	Errors         []string  `json:"errors"`
	TotalProcessed int       `json:"totalProcessed"`
}

// ImportOutcome is the externally visible result of one import call.
type ImportOutcome struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	ImportedCount  int      `json:"importedCount"`
	TotalProcessed int      `json:"totalProcessed"`
	Errors         []string `json:"errors"`
	ImportID       string   `json:"importId,omitempty"`
}

// Status maps the outcome onto the three-way import classification.
func (o ImportOutcome) Status() ImportStatus {
	switch {
	case len(o.Errors) == 0 && o.Success:
		return ImportStatusCompleted
	case len(o.Errors) > 0 && o.ImportedCount > 0:
		return ImportStatusCompletedWithErrors
	default:
		return ImportStatusFailed
	}
}

// ImportJob is the audit record kept for every import call.
type ImportJob struct {
	ID             string       `json:"id"`
	Filename       string       `json:"filename"`
	Status         ImportStatus `json:"status"`
	Message        string       `json:"message"`
	TotalProcessed int          `json:"totalProcessed"`
	ImportedCount  int          `json:"importedCount"`
	Errors         []string     `json:"errors,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	CompletedAt    time.Time    `json:"completedAt"`
}

// ValidExportFormats contains all supported catalog export formats.
var ValidExportFormats = []string{"xml", "csv", "ndjson"}

// IsValidExportFormat checks if an export format is supported.
func IsValidExportFormat(format string) bool {
	for _, f := range ValidExportFormats {
		if f == format {
			return true
		}
	}
	return false
}

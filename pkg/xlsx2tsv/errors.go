package xlsx2tsv

import (
	"fmt"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/parser"
)

// Error types produced while reading a workbook. See the parser package for details.
type (
	ArchiveOpenError        = parser.ArchiveOpenError
	ArchiveStructureError   = parser.ArchiveStructureError
	SheetNotFoundError      = parser.SheetNotFoundError
	MalformedReferenceError = parser.MalformedReferenceError
	SharedStringIndexError  = parser.SharedStringIndexError
)

var (
	// ErrPartNotFound indicates a mandatory part is missing from the archive.
	ErrPartNotFound = parser.ErrPartNotFound
	// ErrEncryptedWorkbook indicates a password-protected input.
	ErrEncryptedWorkbook = parser.ErrEncryptedWorkbook
	// ErrLegacyWorkbook indicates a binary .xls input.
	ErrLegacyWorkbook = parser.ErrLegacyWorkbook
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "archive", "workbook", "sheet", "output"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPartNotFound indicates a named part is missing from the archive.
var ErrPartNotFound = errors.New("part not found")

// ErrEncryptedWorkbook indicates the input is a password-protected workbook.
var ErrEncryptedWorkbook = errors.New("workbook is encrypted")

// ErrLegacyWorkbook indicates the input is a binary (BIFF) .xls workbook.
var ErrLegacyWorkbook = errors.New("legacy binary .xls workbook is not supported")

// ArchiveOpenError reports an input that is not a readable zip container.
type ArchiveOpenError struct {
	Path string
	Err  error
}

func (e *ArchiveOpenError) Error() string {
	return fmt.Sprintf("cannot open container %q: %v", e.Path, e.Err)
}

func (e *ArchiveOpenError) Unwrap() error {
	return e.Err
}

// ArchiveStructureError reports a mandatory part that is missing or unparsable.
type ArchiveStructureError struct {
	Part string
	Err  error
}

func (e *ArchiveStructureError) Error() string {
	return fmt.Sprintf("invalid workbook structure in %s: %v", e.Part, e.Err)
}

func (e *ArchiveStructureError) Unwrap() error {
	return e.Err
}

// SheetNotFoundError reports a sheet name absent from the workbook manifest.
type SheetNotFoundError struct {
	Requested string
	// Available is sorted.
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet not found: %s; available: %s", e.Requested, strings.Join(e.Available, ", "))
}

// MalformedReferenceError reports a cell reference not of the form [A-Z]+[0-9]+.
type MalformedReferenceError struct {
	Ref string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed cell reference %q", e.Ref)
}

// SharedStringIndexError reports a shared-string cell whose value is not a valid index.
type SharedStringIndexError struct {
	Ref string
	Raw string
	Len int
}

func (e *SharedStringIndexError) Error() string {
	return fmt.Sprintf("cell %s: shared string index %q out of range [0, %d)", e.Ref, e.Raw, e.Len)
}

package parser

import (
	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

// MaxColumns is the widest sheet the format allows (column XFD).
const MaxColumns = 16384

const maxRowNumber = 1 << 31

// DecodeCellRef decodes a reference such as "AB5" into a zero-based column
// index and a one-based row number. Only the leading letters-then-digits
// prefix is inspected; anything after it is ignored.
func DecodeCellRef(ref string) (models.CellRef, error) {
	i := 0
	col := uint(0)
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + uint(ref[i]-'A') + 1
		if col > MaxColumns {
			return models.CellRef{}, &MalformedReferenceError{Ref: ref}
		}
		i++
	}
	if i == 0 {
		return models.CellRef{}, &MalformedReferenceError{Ref: ref}
	}

	digits := i
	row := uint(0)
	for i < len(ref) && ref[i] >= '0' && ref[i] <= '9' {
		row = row*10 + uint(ref[i]-'0')
		if row > maxRowNumber {
			return models.CellRef{}, &MalformedReferenceError{Ref: ref}
		}
		i++
	}
	if i == digits {
		return models.CellRef{}, &MalformedReferenceError{Ref: ref}
	}

	return models.CellRef{Col: col - 1, Row: row}, nil
}


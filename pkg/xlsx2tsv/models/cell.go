// Package models defines data structures for sheet flattening.
package models

// CellRef is a decoded cell address such as "C7".
type CellRef struct {
	// Col is the column index (0-based).
	Col uint `json:"col"`
	// Row is the row number (1-based).
	Row uint `json:"row"`
}

// CellKind classifies a cell by its type attribute.
type CellKind int

const (
	// CellKindLiteral is a cell without a type attribute; its value is taken verbatim.
	CellKindLiteral CellKind = iota
	// CellKindSharedString is a cell whose value is an index into the shared string table.
	CellKindSharedString
	// CellKindNumber is an explicitly numeric cell (t="n").
	CellKindNumber
	// CellKindBoolean is a boolean cell (t="b").
	CellKindBoolean
	// CellKindError is an error cell such as #DIV/0! (t="e").
	CellKindError
	// CellKindFormulaString is a formula result cached as text (t="str").
	CellKindFormulaString
	// CellKindInlineString is a cell carrying its text inline (t="inlineStr").
	CellKindInlineString
)

var cellKindNames = map[CellKind]string{
	CellKindLiteral:       "literal",
	CellKindSharedString:  "shared-string",
	CellKindNumber:        "number",
	CellKindBoolean:       "boolean",
	CellKindError:         "error",
	CellKindFormulaString: "formula-string",
	CellKindInlineString:  "inline-string",
}

// CellKindFromType maps the t attribute of a cell element to a CellKind.
// Unknown type codes are treated as literals.
func CellKindFromType(t string) CellKind {
	switch t {
	case "s":
		return CellKindSharedString
	case "n":
		return CellKindNumber
	case "b":
		return CellKindBoolean
	case "e":
		return CellKindError
	case "str":
		return CellKindFormulaString
	case "inlineStr":
		return CellKindInlineString
	default:
		return CellKindLiteral
	}
}

// String returns a readable name for the kind.
func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsPassthrough reports whether the raw value of the cell is used verbatim.
// Only shared strings need resolution today.
func (k CellKind) IsPassthrough() bool {
	return k != CellKindSharedString
}

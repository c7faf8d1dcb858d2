package models

// Row is a dense sequence of cell texts. Column slots without a cell hold "".
type Row []string

// IsEmpty reports whether every slot of the row is empty.
func (r Row) IsEmpty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// SheetTable is a flattened worksheet.
type SheetTable struct {
	// Name is the sheet name as authored in the workbook.
	Name string `json:"name"`
	// Part is the archive path of the worksheet part.
	Part string `json:"part"`
	// Rows holds one entry per row element, in document order.
	Rows []Row `json:"rows"`
	// Anomalies counts malformed references and bad shared-string indices
	// that were coerced to defaults.
	Anomalies int `json:"anomalies,omitempty"`
}

// Width returns the widest row length in the table.
func (t *SheetTable) Width() int {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

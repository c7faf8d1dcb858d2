package models

// SharedStrings is the workbook's shared string table, indexed as authored.
type SharedStrings []string

// Lookup returns the string at idx and whether idx is in range.
func (s SharedStrings) Lookup(idx int) (string, bool) {
	if idx < 0 || idx >= len(s) {
		return "", false
	}
	return s[idx], true
}

// SheetEntry is one sheet element of the workbook manifest.
type SheetEntry struct {
	// Name is the sheet name as authored.
	Name string `json:"name"`
	// RelID is the relationship id pointing at the sheet part.
	RelID string `json:"rel_id"`
}

// SheetPart is a sheet whose relationship resolved to a worksheet part.
type SheetPart struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// WorkbookIndex maps sheet names to worksheet part paths.
type WorkbookIndex struct {
	// Sheets lists resolved worksheets in manifest order, without duplicate names.
	Sheets []SheetPart `json:"sheets"`

	byName map[string]string
}

// NewWorkbookIndex builds an index from resolved sheets. When a name repeats,
// the first occurrence wins.
func NewWorkbookIndex(parts []SheetPart) WorkbookIndex {
	idx := WorkbookIndex{
		Sheets: make([]SheetPart, 0, len(parts)),
		byName: make(map[string]string, len(parts)),
	}
	for _, p := range parts {
		if _, dup := idx.byName[p.Name]; dup {
			continue
		}
		idx.byName[p.Name] = p.Path
		idx.Sheets = append(idx.Sheets, p)
	}
	return idx
}

// Lookup returns the part path for name.
func (w WorkbookIndex) Lookup(name string) (string, bool) {
	path, ok := w.byName[name]
	return path, ok
}

// Names returns the sheet names in manifest order.
func (w WorkbookIndex) Names() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

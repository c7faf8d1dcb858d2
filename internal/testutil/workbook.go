// Package testutil assembles minimal xlsx containers for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const (
	nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg  = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Sheet describes one worksheet. SheetData is the raw inner XML of <sheetData>.
type Sheet struct {
	Name      string
	SheetData string
}

// Workbook describes a container. SharedStrings nil means no shared string part.
type Workbook struct {
	Sheets        []Sheet
	SharedStrings []string
}

// Parts returns the archive parts of w keyed by path.
func (w Workbook) Parts() map[string]string {
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="` + nsPkg + `"><Relationship Id="rId1" ` +
			`Type="` + nsRel + `/officeDocument" Target="xl/workbook.xml"/></Relationships>`,
		"xl/styles.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<styleSheet xmlns="` + nsMain + `"/>`,
	}

	var sheets, rels strings.Builder
	for i, s := range w.Sheets {
		id := fmt.Sprintf("rId%d", i+1)
		fmt.Fprintf(&sheets, `<sheet name="%s" sheetId="%d" r:id="%s"/>`, escape(s.Name), i+1, id)
		fmt.Fprintf(&rels, `<Relationship Id="%s" Type="%s/worksheet" Target="worksheets/sheet%d.xml"/>`, id, nsRel, i+1)
		parts[fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)] = Worksheet(s.SheetData)
	}
	fmt.Fprintf(&rels, `<Relationship Id="rIdStyles" Type="%s/styles" Target="styles.xml"/>`, nsRel)

	if w.SharedStrings != nil {
		fmt.Fprintf(&rels, `<Relationship Id="rIdStrings" Type="%s/sharedStrings" Target="sharedStrings.xml"/>`, nsRel)
		parts["xl/sharedStrings.xml"] = SharedStrings(w.SharedStrings)
	}

	parts["xl/workbook.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<workbook xmlns="` + nsMain + `" xmlns:r="` + nsRel + `"><sheets>` + sheets.String() + `</sheets></workbook>`
	parts["xl/_rels/workbook.xml.rels"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="` + nsPkg + `">` + rels.String() + `</Relationships>`
	return parts
}

// Worksheet wraps sheetData content in a worksheet document.
func Worksheet(sheetData string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<worksheet xmlns="` + nsMain + `" xmlns:r="` + nsRel + `">` +
		`<dimension ref="A1"/><sheetData>` + sheetData + `</sheetData></worksheet>`
}

// SharedStrings renders a shared string part with one plain <t> per item.
func SharedStrings(items []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><sst xmlns="%s" count="%d" uniqueCount="%d">`,
		nsMain, len(items), len(items))
	for _, item := range items {
		b.WriteString(`<si><t xml:space="preserve">`)
		b.WriteString(escape(item))
		b.WriteString(`</t></si>`)
	}
	b.WriteString(`</sst>`)
	return b.String()
}

// Zip packs parts into a zip container. Parts are written in sorted order.
func Zip(t testing.TB, parts map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// WriteFile zips parts into dir/name and returns the file path.
func WriteFile(t testing.TB, dir, name string, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Zip(t, parts), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

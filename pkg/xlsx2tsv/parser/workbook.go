package parser

import (
	"encoding/xml"
	"path"
	"sort"
	"strings"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

// WorkbookPart is the archive path of the workbook definition.
const WorkbookPart = "xl/workbook.xml"

const worksheetsDir = "xl/worksheets/"

type workbookXML struct {
	XMLName xml.Name      `xml:"workbook"`
	Sheets  []sheetRefXML `xml:"sheets>sheet"`
}

type sheetRefXML struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	RID     string `xml:"id,attr"` // r:id
}

// Workbook holds the lookup tables needed to flatten any sheet of an archive.
type Workbook struct {
	Archive       *Archive
	SharedStrings models.SharedStrings
	Index         models.WorkbookIndex
}

// LoadWorkbook reads the relationship table, the manifest and the shared
// strings of a. The relationship table and manifest are mandatory.
func LoadWorkbook(a *Archive) (*Workbook, error) {
	rels, err := LoadRelationships(a)
	if err != nil {
		return nil, err
	}

	manifest, err := LoadManifest(a)
	if err != nil {
		return nil, err
	}

	sst, err := LoadSharedStrings(a)
	if err != nil {
		return nil, err
	}

	return &Workbook{
		Archive:       a,
		SharedStrings: sst,
		Index:         BuildIndex(manifest, rels),
	}, nil
}

// LoadManifest returns the sheets declared by the workbook, in manifest order.
func LoadManifest(a *Archive) ([]models.SheetEntry, error) {
	data, err := a.ReadPart(WorkbookPart)
	if err != nil {
		return nil, &ArchiveStructureError{Part: WorkbookPart, Err: err}
	}
	return parseManifest(data)
}

func parseManifest(data []byte) ([]models.SheetEntry, error) {
	var wb workbookXML
	if err := unmarshalPart(data, &wb); err != nil {
		return nil, &ArchiveStructureError{Part: WorkbookPart, Err: err}
	}

	entries := make([]models.SheetEntry, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		entries = append(entries, models.SheetEntry{Name: s.Name, RelID: s.RID})
	}
	return entries, nil
}

// BuildIndex joins the manifest with the relationship table. Only sheets whose
// target is a worksheet part are kept. A repeated sheet name keeps its first
// manifest entry.
func BuildIndex(manifest []models.SheetEntry, rels map[string]string) models.WorkbookIndex {
	seen := make(map[string]bool, len(manifest))
	parts := make([]models.SheetPart, 0, len(manifest))
	for _, entry := range manifest {
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true

		target, ok := rels[entry.RelID]
		if !ok || target == "" {
			continue
		}
		partPath := resolveTarget(target)
		if !strings.HasPrefix(partPath, worksheetsDir) {
			continue
		}
		parts = append(parts, models.SheetPart{Name: entry.Name, Path: partPath})
	}
	return models.NewWorkbookIndex(parts)
}

// ResolveSheet returns the worksheet part for name.
func ResolveSheet(idx models.WorkbookIndex, name string) (string, error) {
	if partPath, ok := idx.Lookup(name); ok {
		return partPath, nil
	}
	available := idx.Names()
	sort.Strings(available)
	return "", &SheetNotFoundError{Requested: name, Available: available}
}

// resolveTarget turns a relationship target of the workbook part into an
// archive path. Relative targets are relative to xl/.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Join("xl", target)
}

package parser

import (
	"encoding/xml"
)

// WorkbookRelsPart is the archive path of the workbook relationship table.
const WorkbookRelsPart = "xl/_rels/workbook.xml.rels"

type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// LoadRelationships maps relationship ids to their raw targets.
func LoadRelationships(a *Archive) (map[string]string, error) {
	data, err := a.ReadPart(WorkbookRelsPart)
	if err != nil {
		return nil, &ArchiveStructureError{Part: WorkbookRelsPart, Err: err}
	}
	return parseRelationships(data)
}

func parseRelationships(data []byte) (map[string]string, error) {
	var rels relationshipsXML
	if err := unmarshalPart(data, &rels); err != nil {
		return nil, &ArchiveStructureError{Part: WorkbookRelsPart, Err: err}
	}

	result := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		if rel.ID == "" {
			continue
		}
		result[rel.ID] = rel.Target
	}
	return result, nil
}

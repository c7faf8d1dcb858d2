package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

// SharedStringsPart is the archive path of the shared string table.
const SharedStringsPart = "xl/sharedStrings.xml"

// LoadSharedStrings reads the shared string table. A workbook without one
// yields an empty table.
func LoadSharedStrings(a *Archive) (models.SharedStrings, error) {
	if !a.HasPart(SharedStringsPart) {
		return models.SharedStrings{}, nil
	}
	rc, err := a.OpenPart(SharedStringsPart)
	if err != nil {
		return nil, &ArchiveStructureError{Part: SharedStringsPart, Err: err}
	}
	defer rc.Close()

	table, err := readSharedStrings(rc)
	if err != nil {
		return nil, &ArchiveStructureError{Part: SharedStringsPart, Err: err}
	}
	return table, nil
}

// readSharedStrings concatenates the text fragments of every si element.
// Phonetic runs (rPh) are annotations and do not contribute to the text.
func readSharedStrings(r io.Reader) (models.SharedStrings, error) {
	decoder := newDecoder(r)

	result := models.SharedStrings{}
	var text strings.Builder
	inItem := false
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sst":
				if n := uniqueCount(t); n > 0 {
					result = make(models.SharedStrings, 0, n)
				}
			case "si":
				inItem = true
				text.Reset()
			case "t":
				inText = inItem
			case "rPh":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "si":
				result = append(result, text.String())
				inItem = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		}
	}
	return result, nil
}

func uniqueCount(start xml.StartElement) int {
	for _, attr := range start.Attr {
		if attr.Name.Local != "uniqueCount" {
			continue
		}
		n, err := strconv.Atoi(attr.Value)
		if err != nil || n < 0 {
			return 0
		}
		// The count is advisory; only use it as a bounded capacity hint.
		return min(n, 1<<20)
	}
	return 0
}

package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

// FlattenOptions controls how cell anomalies are handled.
type FlattenOptions struct {
	// Strict turns malformed references and bad shared-string indices into errors.
	// Otherwise they decode to column 0 and "" respectively.
	Strict bool
	// TrimSpace trims leading and trailing white space from every value.
	TrimSpace bool
	// Logger receives anomaly reports. Nil disables logging.
	Logger *zap.Logger
}

type rowXML struct {
	R     string    `xml:"r,attr"`
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R string  `xml:"r,attr"`
	T string  `xml:"t,attr"`
	V *string `xml:"v"`
}

type flattener struct {
	part  string
	sst   models.SharedStrings
	opts  FlattenOptions
	log   *zap.Logger
	table *models.SheetTable
}

// FlattenSheet walks the rows of a worksheet part and returns them as dense rows.
func FlattenSheet(a *Archive, part string, sst models.SharedStrings, opts FlattenOptions) (*models.SheetTable, error) {
	rc, err := a.OpenPart(part)
	if err != nil {
		return nil, &ArchiveStructureError{Part: part, Err: err}
	}
	defer rc.Close()

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	f := &flattener{
		part:  part,
		sst:   sst,
		opts:  opts,
		log:   log.With(zap.String("part", part)),
		table: &models.SheetTable{Part: part},
	}
	if err := f.walk(rc); err != nil {
		return nil, err
	}
	return f.table, nil
}

func (f *flattener) walk(r io.Reader) error {
	decoder := newDecoder(r)
	inSheetData := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &ArchiveStructureError{Part: f.part, Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sheetData":
				inSheetData = true
			case "row":
				if !inSheetData {
					if err := decoder.Skip(); err != nil {
						return &ArchiveStructureError{Part: f.part, Err: err}
					}
					continue
				}
				var row rowXML
				if err := decoder.DecodeElement(&row, &t); err != nil {
					return &ArchiveStructureError{Part: f.part, Err: err}
				}
				dense, err := f.flattenRow(row)
				if err != nil {
					return err
				}
				f.table.Rows = append(f.table.Rows, dense)
			}
		case xml.EndElement:
			if t.Name.Local == "sheetData" {
				inSheetData = false
			}
		}
	}
}

func (f *flattener) flattenRow(row rowXML) (models.Row, error) {
	if len(row.Cells) == 0 {
		return models.Row{}, nil
	}

	cols := make([]uint, len(row.Cells))
	width := uint(0)
	for i, c := range row.Cells {
		ref, err := DecodeCellRef(c.R)
		if err != nil {
			if err := f.anomaly(err, c, row.R); err != nil {
				return nil, err
			}
		}
		cols[i] = ref.Col
		width = max(width, ref.Col+1)
	}

	out := make(models.Row, width)
	for i, c := range row.Cells {
		value, err := f.resolve(c)
		if err != nil {
			if err := f.anomaly(err, c, row.R); err != nil {
				return nil, err
			}
		}
		if f.opts.TrimSpace {
			value = strings.TrimSpace(value)
		}
		out[cols[i]] = value
	}
	return out, nil
}

// resolve returns the text of a cell. A cell without a value element is empty.
func (f *flattener) resolve(c cellXML) (string, error) {
	if c.V == nil {
		return "", nil
	}
	raw := *c.V

	kind := models.CellKindFromType(c.T)
	if kind.IsPassthrough() {
		return raw, nil
	}

	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil {
		if s, ok := f.sst.Lookup(idx); ok {
			return s, nil
		}
	}
	return "", &SharedStringIndexError{Ref: c.R, Raw: raw, Len: len(f.sst)}
}

// anomaly records a per-cell problem. In strict mode the problem is returned
// as a fatal error, otherwise it is logged and absorbed.
func (f *flattener) anomaly(err error, c cellXML, row string) error {
	if f.opts.Strict {
		return fmt.Errorf("%s: %w", f.part, err)
	}
	f.table.Anomalies++
	f.log.Debug("cell anomaly coerced to default",
		zap.String("ref", c.R),
		zap.String("row", row),
		zap.Stringer("kind", models.CellKindFromType(c.T)),
		zap.Error(err),
	)
	return nil
}

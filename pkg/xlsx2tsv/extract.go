package xlsx2tsv

import (
	"go.uber.org/zap"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/output"
	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/parser"
)

// Result describes a completed conversion.
type Result struct {
	// OutPath is the written file.
	OutPath string
	// Rows is the number of rows written.
	Rows int
	// Anomalies is the number of cells coerced to defaults.
	Anomalies int
}

// Extract flattens the named sheet of the workbook at path.
func Extract(path, sheetName string, opts Options) (*models.SheetTable, error) {
	log := opts.logger()

	archive, err := parser.OpenArchive(path)
	if err != nil {
		return nil, NewExtractionError(sheetName, "archive", err)
	}
	defer archive.Close()

	wb, err := parser.LoadWorkbook(archive)
	if err != nil {
		return nil, NewExtractionError(sheetName, "workbook", err)
	}
	log.Debug("workbook loaded",
		zap.String("path", path),
		zap.Int("sheets", len(wb.Index.Sheets)),
		zap.Int("shared_strings", len(wb.SharedStrings)),
	)

	part, err := parser.ResolveSheet(wb.Index, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "workbook", err)
	}

	table, err := parser.FlattenSheet(archive, part, wb.SharedStrings, opts.flattenOptions())
	if err != nil {
		return nil, NewExtractionError(sheetName, "sheet", err)
	}
	table.Name = sheetName
	log.Debug("sheet flattened",
		zap.String("sheet", sheetName),
		zap.String("part", part),
		zap.Int("rows", len(table.Rows)),
		zap.Int("width", table.Width()),
	)

	if table.Anomalies > 0 {
		log.Warn("cell anomalies coerced to defaults",
			zap.String("sheet", sheetName),
			zap.Int("count", table.Anomalies),
		)
	}
	return table, nil
}

// Convert flattens the named sheet and writes it as TSV to outPath. Nothing is
// written when extraction fails.
func Convert(inPath, sheetName, outPath string, opts Options) (*Result, error) {
	table, err := Extract(inPath, sheetName, opts)
	if err != nil {
		return nil, err
	}

	rows := output.Emit(table)
	if err := output.WriteFile(outPath, rows); err != nil {
		return nil, NewExtractionError(sheetName, "output", err)
	}

	opts.logger().Info("sheet converted",
		zap.String("sheet", sheetName),
		zap.String("out", outPath),
		zap.Int("rows", len(rows)),
	)
	return &Result{OutPath: outPath, Rows: len(rows), Anomalies: table.Anomalies}, nil
}

// SheetNames returns the worksheet names of the workbook at path in manifest order.
func SheetNames(path string) ([]string, error) {
	archive, err := parser.OpenArchive(path)
	if err != nil {
		return nil, NewExtractionError("", "archive", err)
	}
	defer archive.Close()

	rels, err := parser.LoadRelationships(archive)
	if err != nil {
		return nil, NewExtractionError("", "workbook", err)
	}
	manifest, err := parser.LoadManifest(archive)
	if err != nil {
		return nil, NewExtractionError("", "workbook", err)
	}
	return parser.BuildIndex(manifest, rels).Names(), nil
}

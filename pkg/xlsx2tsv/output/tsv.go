// Package output serializes flattened sheets.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

// Emit trims trailing empty cells from every row and drops rows left empty.
// Empty cells between two non-empty cells are kept.
func Emit(table *models.SheetTable) [][]string {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		trimmed := TrimRow(row)
		if len(trimmed) == 0 {
			continue
		}
		rows = append(rows, trimmed)
	}
	return rows
}

// TrimRow removes the trailing run of empty cells.
func TrimRow(row models.Row) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

// Serialize joins cells with a tab and terminates every row with a newline.
// Cell text is written as is; embedded tabs and newlines are not escaped.
func Serialize(rows [][]string) []byte {
	var buf bytes.Buffer
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(cell)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteFile writes rows as TSV to path, creating parent directories. The data
// goes to a temporary file in the same directory that is renamed into place,
// so a failed write never leaves a partial file at path.
func WriteFile(path string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(Serialize(rows)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

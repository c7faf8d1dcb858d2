package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsx2tsv-go/pkg/xlsx2tsv/models"
)

func TestTrimRow(t *testing.T) {
	tests := []struct {
		row      models.Row
		expected []string
	}{
		{models.Row{"a", "", "b", "", ""}, []string{"a", "", "b"}},
		{models.Row{"", "", ""}, []string{}},
		{models.Row{"", "x"}, []string{"", "x"}},
		{models.Row{}, []string{}},
		{nil, []string{}},
	}

	for _, tt := range tests {
		got := TrimRow(tt.row)
		assert.Len(t, got, len(tt.expected), "row %q", tt.row)
		for i := range tt.expected {
			assert.Equal(t, tt.expected[i], got[i])
		}
	}
}

func TestEmit(t *testing.T) {
	table := &models.SheetTable{Rows: []models.Row{
		{"", "", ""},
		{"trad", "pinyin", ""},
		{},
		{"", "x", "", "y", ""},
	}}

	rows := Emit(table)
	assert.Equal(t, [][]string{
		{"trad", "pinyin"},
		{"", "x", "", "y"},
	}, rows)
}

func TestSerialize(t *testing.T) {
	rows := [][]string{
		{"trad", "pinyin"},
		{"中文", "zhōng wén"},
	}
	assert.Equal(t, "trad\tpinyin\n中文\tzhōng wén\n", string(Serialize(rows)))
	assert.Empty(t, Serialize(nil))
	assert.Equal(t, "a\t\tb\n", string(Serialize([][]string{{"a", "", "b"}})))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "staging", "nested", "a1.tsv")

	require.NoError(t, WriteFile(path, [][]string{{"a", "b"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))

	require.NoError(t, WriteFile(path, [][]string{{"fresh"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsx2tsv-go/internal/testutil"
)

func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeBook(t *testing.T, dir string) string {
	t.Helper()
	wb := testutil.Workbook{
		Sheets: []testutil.Sheet{
			{Name: "Sheet1", SheetData: `<row r="1"><c r="A1"><v> x </v></c></row>`},
			{Name: "Data", SheetData: `<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1"><v>zhōng wén</v></c></row>` +
				`<row r="2"><c r="A2" t="s"><v>7</v></c><c r="B2"><v>tail</v></c></row>`},
		},
		SharedStrings: []string{"中文"},
	}
	return testutil.WriteFile(t, dir, "book.xlsx", wb.Parts())
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeBook(t, dir)
	out := filepath.Join(dir, "staging", "data.tsv")

	stdout, _, err := runCLI("--in", in, "--sheet", "Data", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+out+" (2 rows)\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "中文\tzhōng wén\n\ttail\n", string(data))
}

func TestRunSheetNotFound(t *testing.T) {
	dir := t.TempDir()
	in := writeBook(t, dir)
	out := filepath.Join(dir, "out.tsv")

	stdout, stderr, err := runCLI("-i", in, "-s", "Sheetz", "-o", out)
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "sheet not found: Sheetz; available: Data, Sheet1")
	assert.NotContains(t, stderr, "Usage:")
	assert.NoFileExists(t, out)
}

func TestRunStrict(t *testing.T) {
	dir := t.TempDir()
	in := writeBook(t, dir)
	out := filepath.Join(dir, "out.tsv")

	_, stderr, err := runCLI("--in", in, "--sheet", "Data", "--out", out, "--strict")
	require.Error(t, err)
	assert.Contains(t, stderr, "shared string index")
	assert.NoFileExists(t, out)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeBook(t, dir)
	out := filepath.Join(dir, "out.tsv")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("trim_space: true\nstrict: true\n"), 0600))

	_, _, err := runCLI("--config", cfgPath, "--in", in, "--sheet", "Sheet1", "--out", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))

	_, _, err = runCLI("--config", cfgPath, "--strict=false", "--in", in, "--sheet", "Data", "--out", out)
	require.NoError(t, err, "flags override the config file")
}

func TestRunMissingFlags(t *testing.T) {
	_, stderr, err := runCLI("--in", "book.xlsx")
	require.Error(t, err)
	assert.Contains(t, stderr, `required flag(s) "out", "sheet" not set`)
}

func TestRunSheets(t *testing.T) {
	in := writeBook(t, t.TempDir())

	stdout, _, err := runCLI("sheets", "--in", in)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1\nData\n", stdout)
}

func TestRunInvalidContainer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "book.xlsx")
	require.NoError(t, os.WriteFile(in, []byte("not a zip"), 0644))

	_, stderr, err := runCLI("--in", in, "--sheet", "Data", "--out", filepath.Join(dir, "out.tsv"))
	require.Error(t, err)
	assert.Contains(t, stderr, "cannot open container")
}

func TestLoadConfigDebugFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("debug: true\n"), 0600))

	tests := []struct {
		name  string
		args  []string
		debug bool
		level string
	}{
		{"config only", []string{"--config", cfgPath}, true, "debug"},
		{"flag disables debug", []string{"--config", cfgPath, "--debug=false"}, false, "warn"},
		{"flag enables debug", []string{"--debug"}, true, "debug"},
		{"defaults", nil, false, "warn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd(io.Discard, io.Discard)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg, err := loadConfig(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, tt.level, cfg.LogLevel)
		})
	}
}

func TestLoadConfigKeepsExplicitLevel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("debug: true\nlog_level: info\n"), 0600))

	cmd := newRootCmd(io.Discard, io.Discard)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--debug=false"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestRunSheetsRejectsConvertFlags(t *testing.T) {
	in := writeBook(t, t.TempDir())

	for _, flag := range []string{"--debug", "--config=config.yaml"} {
		_, stderr, err := runCLI("sheets", "--in", in, flag)
		require.Error(t, err, flag)
		assert.Contains(t, stderr, "unknown flag", flag)
	}
}

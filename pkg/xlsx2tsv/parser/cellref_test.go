package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecodeCellRef(t *testing.T) {
	tests := []struct {
		ref string
		col uint
		row uint
	}{
		{"A1", 0, 1},
		{"Z9", 25, 9},
		{"AA1", 26, 1},
		{"AB5", 27, 5},
		{"AZ3", 51, 3},
		{"BA2", 52, 2},
		{"XFD1048576", 16383, 1048576},
		{"C7:D9", 2, 7},
	}

	for _, tt := range tests {
		ref, err := DecodeCellRef(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.col, ref.Col, "column of %s", tt.ref)
		assert.Equal(t, tt.row, ref.Row, "row of %s", tt.ref)
	}
}

func TestDecodeCellRefMalformed(t *testing.T) {
	for _, ref := range []string{"", "1A", "a1", "A", "12", "$A$1", "XFE1", "AAAAAAAAAAA1", "A99999999999"} {
		got, err := DecodeCellRef(ref)
		var malformed *MalformedReferenceError
		require.ErrorAs(t, err, &malformed, "ref %q", ref)
		assert.Equal(t, ref, malformed.Ref)
		assert.Equal(t, uint(0), got.Col, "malformed %q must decode to column 0", ref)
	}
}

func TestDecodeCellRefMatchesExcelize(t *testing.T) {
	for col := 1; col <= 1000; col++ {
		name, err := excelize.CoordinatesToCellName(col, col)
		require.NoError(t, err)

		ref, err := DecodeCellRef(name)
		require.NoError(t, err, name)
		require.Equal(t, uint(col-1), ref.Col, name)
		require.Equal(t, uint(col), ref.Row, name)
	}
}


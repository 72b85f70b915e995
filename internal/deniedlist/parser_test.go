package deniedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a denied-list workbook. A nil slice skips the
// sheet entirely; a non-nil slice always gets a header row.
func buildWorkbook(t *testing.T, names, authors []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(sheet, header string, values []string) {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, "A1", header))
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	if names != nil {
		writeSheet(namesSheet, "name", names)
	}
	if authors != nil {
		writeSheet(authorsSheet, "author", authors)
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	raw := buildWorkbook(t,
		[]string{"Dead Souls", "The Overcoat"},
		[]string{"Nikolai Gogol"},
	)

	set, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dead Souls", "The Overcoat"}, set.Names)
	assert.Equal(t, []string{"Nikolai Gogol"}, set.Authors)
}

func TestParse_HeaderOnlySheetsAreEmptySets(t *testing.T) {
	raw := buildWorkbook(t, []string{}, []string{})

	set, err := Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, set.Names)
	assert.Empty(t, set.Authors)
}

func TestParse_EmptyCellsDropped(t *testing.T) {
	raw := buildWorkbook(t,
		[]string{"Dead Souls", "", "The Nose"},
		[]string{""},
	)

	set, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dead Souls", "The Nose"}, set.Names)
	assert.Empty(t, set.Authors)
}

func TestParse_MissingSheet(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		authors []string
	}{
		{name: "no author sheet", names: []string{"Dead Souls"}, authors: nil},
		{name: "no name sheet", names: nil, authors: []string{"Nikolai Gogol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := buildWorkbook(t, tt.names, tt.authors)
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParse_NotASpreadsheet(t *testing.T) {
	_, err := Parse([]byte("definitely not a workbook"))
	assert.ErrorIs(t, err, ErrParse)
}

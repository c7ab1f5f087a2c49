// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const tilesCSV = "\ufeffEst présent sur la grille,\"Label*\r\n(Apparaitra sous le picto dans CBoard)\",Ligne\n" +
	"Animaux, Chat ,1\n" +
	"Animaux,Chien\n" +
	",,\n" +
	"Inconnu,Loup,3,extra\n"

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(tilesCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3, "blank record skipped")

	label := "Label*\n(Apparaitra sous le picto dans CBoard)"
	assert.Equal(t, "Animaux", rows[0].Get("Est présent sur la grille"), "BOM stripped from first header")
	assert.Equal(t, "Chat", rows[0].Get(label), "CRLF in header normalized, cell trimmed")
	assert.Equal(t, "1", rows[0].Get("Ligne"))

	assert.Equal(t, "Chien", rows[1].Get(label))
	assert.Equal(t, "", rows[1].Get("Ligne"), "short record pads missing columns")

	assert.Equal(t, Row{"Est présent sur la grille": "Inconnu", label: "Loup", "Ligne": "3"}, rows[2])
}

func TestRowGet(t *testing.T) {
	r := Row{"a": "  x  "}
	assert.Equal(t, "x", r.Get("a"))
	assert.Equal(t, "", r.Get("missing"))
	assert.Equal(t, "", r.Get(""))
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func writeWorkbook(t *testing.T, path, sheetName string, records [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheetName != "Sheet1" {
		_, err := f.NewSheet(sheetName)
		require.NoError(t, err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]any, len(record))
		for j, v := range record {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheetName, cell, &values))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestReadMatchesAcrossFormats(t *testing.T) {
	dir := t.TempDir()
	records := [][]string{
		{"Grilles", "Nombre de ligne"},
		{"Animaux", "4"},
		{"Nourriture", "3"},
	}

	csvPath := filepath.Join(dir, "boards.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Grilles,Nombre de ligne\nAnimaux,4\nNourriture,3\n"), 0o644))
	xlsxPath := filepath.Join(dir, "boards.xlsx")
	writeWorkbook(t, xlsxPath, "Sheet1", records)

	fromCSV, err := Read(csvPath, "")
	require.NoError(t, err)
	fromXLSX, err := Read(xlsxPath, "")
	require.NoError(t, err)

	assert.Equal(t, fromCSV, fromXLSX)
	assert.Len(t, fromCSV, 2)
}

func TestReadWorkbookNamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, path, "Pictos", [][]string{{"Label"}, {"Chat"}})

	rows, err := Read(path, "Pictos")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Chat", rows[0].Get("Label"))

	_, err = Read(path, "Absent")
	assert.Error(t, err)
}

func TestReadUnsupportedExtension(t *testing.T) {
	_, err := Read("boards.ods", "")
	assert.ErrorContains(t, err, "unsupported sheet format")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Error(t, err)
}

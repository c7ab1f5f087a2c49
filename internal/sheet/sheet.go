// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads header-keyed rows from CSV and Excel workbooks.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a header to the cell value of one data row.
type Row map[string]string

// Get returns the trimmed value of column, or "" when absent.
func (r Row) Get(column string) string {
	if column == "" {
		return ""
	}
	return strings.TrimSpace(r[column])
}

// Read loads path as a CSV or .xlsx file depending on its extension.
// sheetName selects the worksheet of a workbook; empty means the first one.
func Read(path, sheetName string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		rows, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return rows, nil
	case ".xlsx", ".xlsm":
		rows, err := ReadWorkbook(path, sheetName)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported sheet format %q: use .csv or .xlsx", filepath.Ext(path))
	}
}

// ReadCSV parses CSV data whose first record is the header row.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return fromRecords(records), nil
}

// ReadWorkbook reads one worksheet of an Excel workbook.
func ReadWorkbook(path, sheetName string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	return fromRecords(records), nil
}

// fromRecords keys every record after the first by the header record.
// Short records leave trailing columns empty; extra cells are dropped.
func fromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.TrimSpace(strings.ReplaceAll(h, "\r\n", "\n"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Package spreadsheet reads and writes xlsx files as datasets.
//
// The first sheet is used; its first row is the header, every following row
// is one sample. Loading never installs a partial dataset: any parse failure
// returns an error and leaves the caller's state untouched.
package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spectralworks/spectral-prep/internal/dataset"
)

// FilteredSuffix is inserted before the extension when deriving the output
// path for filtered data. Repeated saves overwrite the same file.
const FilteredSuffix = "_savitzky_filtered"

// Load parses the spreadsheet at path into a dataset.
func Load(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheets[0])
	}

	header := rows[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: header row is empty", path)
	}

	ds := &dataset.Dataset{Columns: make([]dataset.Column, len(header))}
	for i, name := range header {
		ds.Columns[i] = dataset.Column{
			Name:  name,
			Cells: make([]dataset.Cell, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for c := range ds.Columns {
			// GetRows drops trailing empty cells; pad to the header width.
			var raw string
			if c < len(row) {
				raw = row[c]
			}
			ds.Columns[c].Cells = append(ds.Columns[c].Cells, parseCell(raw))
		}
	}
	return ds, nil
}

// parseCell keeps the display string verbatim and records the numeric value
// when the cell parses as a float.
func parseCell(raw string) dataset.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return dataset.Cell{Text: raw, Value: v, Numeric: true}
		}
	}
	return dataset.TextCell(raw)
}

// Write saves ds to path as an xlsx workbook: header row first, then one
// row per sample. Numeric cells are written as numbers, text cells as
// strings. An existing file at path is overwritten.
func Write(ds *dataset.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(ds.Columns))
	for i, name := range ds.Headers() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for r := 0; r < ds.Len(); r++ {
		row := make([]interface{}, len(ds.Columns))
		for c := range ds.Columns {
			cell := ds.Columns[c].Cells[r]
			if cell.Numeric {
				row[c] = cell.Value
			} else {
				row[c] = cell.Text
			}
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// FilteredPath derives the output path for filtered data by inserting
// FilteredSuffix before the source file's extension:
//
//	/data/sample.xlsx -> /data/sample_savitzky_filtered.xlsx
func FilteredPath(src string) string {
	ext := filepath.Ext(src)
	base := src[:len(src)-len(ext)]
	return base + FilteredSuffix + ext
}

// Package dataset defines the in-memory tabular model shared by the loader,
// filter, table view, plot view and writer.
package dataset

import "strconv"

// Cell is a single spreadsheet cell. The original display text is kept
// alongside the parsed value so the table view can round-trip cell contents
// exactly as they appeared in the source file.
type Cell struct {
	Text    string  // display string as loaded (or formatted after filtering)
	Value   float64 // parsed numeric value, meaningful only when Numeric is true
	Numeric bool
}

// NumericCell builds a cell from a float64, formatting the display text the
// way strconv renders the shortest exact representation.
func NumericCell(v float64) Cell {
	return Cell{
		Text:    strconv.FormatFloat(v, 'g', -1, 64),
		Value:   v,
		Numeric: true,
	}
}

// TextCell builds a non-numeric cell.
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// Column is a named, ordered sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Values extracts the column as a float64 slice. The second return is false
// if any cell is non-numeric.
func (c *Column) Values() ([]float64, bool) {
	out := make([]float64, len(c.Cells))
	for i, cell := range c.Cells {
		if !cell.Numeric {
			return nil, false
		}
		out[i] = cell.Value
	}
	return out, true
}

// SetValues replaces the column's cells with numeric cells for vs.
// Panics if the length differs; callers smooth in place and never resize.
func (c *Column) SetValues(vs []float64) {
	if len(vs) != len(c.Cells) {
		panic("dataset: SetValues length mismatch")
	}
	for i, v := range vs {
		c.Cells[i] = NumericCell(v)
	}
}

// Dataset is an ordered collection of equal-length columns loaded from one
// spreadsheet. It is owned by the application controller; other components
// receive it only for the duration of a single operation.
type Dataset struct {
	Columns []Column
}

// Len returns the number of rows (samples).
func (d *Dataset) Len() int {
	if d == nil || len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// Headers returns the column names in order.
func (d *Dataset) Headers() []string {
	names := make([]string, len(d.Columns))
	for i := range d.Columns {
		names[i] = d.Columns[i].Name
	}
	return names
}

// Cell returns the display string at (row, col). Out-of-range lookups return
// the empty string so table callbacks stay total.
func (d *Dataset) Cell(row, col int) string {
	if d == nil || col < 0 || col >= len(d.Columns) {
		return ""
	}
	cells := d.Columns[col].Cells
	if row < 0 || row >= len(cells) {
		return ""
	}
	return cells[row].Text
}

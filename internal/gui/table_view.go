package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/spectralworks/spectral-prep/internal/dataset"
)

// TableView renders the current dataset as a grid: one header row of column
// names, then one row per sample. The grid is rebuilt wholesale on every
// update so no cells from a previous, larger dataset survive.
type TableView struct {
	table *widget.Table
	data  *dataset.Dataset
}

// NewTableView creates an empty table view.
func NewTableView() *TableView {
	tv := &TableView{}
	tv.table = widget.NewTable(
		// size: 1 header row + data rows
		func() (int, int) {
			if tv.data == nil {
				return 0, 0
			}
			return tv.data.Len() + 1, len(tv.data.Columns)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if tv.data == nil {
				lbl.SetText("")
				return
			}
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(tv.data.Columns[id.Col].Name)
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			lbl.SetText(tv.data.Cell(id.Row-1, id.Col))
		},
	)
	return tv
}

// Build returns the table widget.
func (tv *TableView) Build() fyne.CanvasObject {
	return tv.table
}

// SetDataset replaces the displayed dataset and refreshes the grid.
func (tv *TableView) SetDataset(ds *dataset.Dataset) {
	tv.data = ds
	for c := range ds.Columns {
		tv.table.SetColumnWidth(c, 140)
	}
	tv.table.Refresh()
}

// Show makes the table visible.
func (tv *TableView) Show() { tv.table.Show() }

// Hide hides the table.
func (tv *TableView) Hide() { tv.table.Hide() }

// showTable is the controller hook: display ds and switch the content area
// to the table view.
func (ui *UI) showTable(ds *dataset.Dataset) {
	ui.tableView.SetDataset(ds)
	ui.plotView.Hide()
	ui.tableView.Show()
}

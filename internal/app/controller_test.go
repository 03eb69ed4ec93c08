package app

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spectralworks/spectral-prep/internal/dataset"
	"github.com/spectralworks/spectral-prep/internal/spreadsheet"
)

// recorder captures hook invocations so the whole UI flow can be asserted
// without a window.
type recorder struct {
	tables   []*dataset.Dataset
	plots    []image.Image
	controls []bool
	notices  []string
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		ShowTable:                func(ds *dataset.Dataset) { r.tables = append(r.tables, ds) },
		ShowPlot:                 func(img image.Image) { r.plots = append(r.plots, img) },
		SetFilterControlsVisible: func(v bool) { r.controls = append(r.controls, v) },
		Notify:                   func(title, msg string) { r.notices = append(r.notices, title+": "+msg) },
	}
}

func writeSpectrum(t *testing.T, dir string, rows int) string {
	t.Helper()
	wl := dataset.Column{Name: "wavelength"}
	in := dataset.Column{Name: "intensity"}
	for i := 0; i < rows; i++ {
		wl.Cells = append(wl.Cells, dataset.NumericCell(400+float64(i)))
		noise := 0.4
		if i%2 == 1 {
			noise = -0.4
		}
		in.Cells = append(in.Cells, dataset.NumericCell(5+math.Sin(float64(i)/9)+noise))
	}
	ds := &dataset.Dataset{Columns: []dataset.Column{wl, in}}
	path := filepath.Join(dir, "sample.xlsx")
	if err := spreadsheet.Write(ds, path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestControllerStartsWithNoData(t *testing.T) {
	c := NewController(nil, Hooks{})
	if c.Mode() != ModeNoData {
		t.Errorf("initial mode = %v, want %v", c.Mode(), ModeNoData)
	}
	if c.Dataset() != nil {
		t.Error("initial dataset should be nil")
	}
	p := c.Params()
	if p.Window != WindowDefault || p.Order != OrderDefault {
		t.Errorf("initial params = %+v", p)
	}
}

func TestLoadFileDisplaysTable(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	path := writeSpectrum(t, t.TempDir(), 100)
	c.LoadFile(path)

	if c.Mode() != ModeLoaded {
		t.Fatalf("mode = %v, want %v", c.Mode(), ModeLoaded)
	}
	if c.SourcePath() != path {
		t.Errorf("source path = %q, want %q", c.SourcePath(), path)
	}
	if len(rec.tables) != 1 {
		t.Fatalf("ShowTable called %d times, want 1", len(rec.tables))
	}
	ds := rec.tables[0]
	if ds.Len() != 100 || len(ds.Columns) != 2 {
		t.Errorf("table shows %d rows x %d columns, want 100 x 2", ds.Len(), len(ds.Columns))
	}
}

func TestLoadFailureKeepsPreviousDataset(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	dir := t.TempDir()
	path := writeSpectrum(t, dir, 20)
	c.LoadFile(path)

	c.LoadFile(filepath.Join(dir, "absent.xlsx"))

	if c.Dataset() == nil || c.Dataset().Len() != 20 {
		t.Error("failed load must keep the previous dataset")
	}
	if c.SourcePath() != path {
		t.Errorf("failed load must keep the previous source path, got %q", c.SourcePath())
	}
	if len(rec.tables) != 1 {
		t.Errorf("ShowTable called %d times, want 1 (no redisplay on failure)", len(rec.tables))
	}
}

func TestPlotDataRendersLineChart(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())
	c.LoadFile(writeSpectrum(t, t.TempDir(), 100))

	c.PlotData()

	if len(rec.plots) != 1 {
		t.Fatalf("ShowPlot called %d times, want 1", len(rec.plots))
	}
	if rec.plots[0] == nil {
		t.Error("plot image is nil")
	}
}

func TestPlotDataNoDataIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())
	c.PlotData()
	if len(rec.plots) != 0 {
		t.Error("PlotData without data must not render")
	}
}

func TestPlotDataWrongFirstColumnIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())
	c.LoadFile(writeSpectrum(t, t.TempDir(), 20))
	c.Dataset().Columns[0].Name = "time"

	c.PlotData()
	if len(rec.plots) != 0 {
		t.Error("PlotData must not render when the first column is not 'wavelength'")
	}
}

func TestActivateFilterModeRequiresData(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	c.ActivateFilterMode()
	if c.Mode() != ModeNoData || len(rec.controls) != 0 {
		t.Error("ActivateFilterMode without data must be a no-op")
	}

	c.LoadFile(writeSpectrum(t, t.TempDir(), 20))
	c.ActivateFilterMode()
	if c.Mode() != ModeFilterConfiguring {
		t.Errorf("mode = %v, want %v", c.Mode(), ModeFilterConfiguring)
	}
	if len(rec.controls) != 1 || rec.controls[0] != true {
		t.Errorf("filter controls visibility calls = %v, want [true]", rec.controls)
	}
}

func TestFinishFilteringEndToEnd(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	dir := t.TempDir()
	path := writeSpectrum(t, dir, 100)
	c.LoadFile(path)

	orig, err := spreadsheet.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	c.ActivateFilterMode()
	c.SetWindow(7)
	c.SetOrder(2)
	c.FinishFiltering()

	if c.Mode() != ModeLoaded {
		t.Errorf("mode after finalize = %v, want %v", c.Mode(), ModeLoaded)
	}
	// Controls shown on activate, hidden on finish.
	if len(rec.controls) != 2 || rec.controls[1] != false {
		t.Errorf("filter controls visibility calls = %v, want [true false]", rec.controls)
	}
	// Table redisplayed with the filtered data.
	if len(rec.tables) != 2 {
		t.Errorf("ShowTable called %d times, want 2", len(rec.tables))
	}

	outPath := filepath.Join(dir, "sample_savitzky_filtered.xlsx")
	out, err := spreadsheet.Load(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if out.Len() != orig.Len() || len(out.Columns) != len(orig.Columns) {
		t.Fatalf("output shape %dx%d, want %dx%d", out.Len(), len(out.Columns), orig.Len(), len(orig.Columns))
	}

	// Wavelength passes through unchanged; intensity was smoothed.
	for i := 0; i < orig.Len(); i++ {
		if out.Columns[0].Cells[i].Value != orig.Columns[0].Cells[i].Value {
			t.Fatalf("wavelength row %d changed in output", i)
		}
	}
	changed := false
	for i := 0; i < orig.Len(); i++ {
		if out.Columns[1].Cells[i].Value != orig.Columns[1].Cells[i].Value {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("intensity column unchanged in output")
	}

	if len(rec.notices) != 1 {
		t.Fatalf("Notify called %d times, want 1", len(rec.notices))
	}
	if want := outPath; !strings.Contains(rec.notices[0], want) {
		t.Errorf("notification %q does not name the output path %q", rec.notices[0], want)
	}
}

// Filtering has no wavelength precondition: a dataset whose first column
// is named "time" is still smoothed (first column included) and written.
func TestFinishFilteringWithoutWavelengthColumn(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	// Zig-zag noise in both columns so smoothing visibly changes each;
	// the first column is headed "time", not "wavelength".
	tc := dataset.Column{Name: "time"}
	in := dataset.Column{Name: "intensity"}
	for i := 0; i < 50; i++ {
		noise := 0.3
		if i%2 == 1 {
			noise = -0.3
		}
		tc.Cells = append(tc.Cells, dataset.NumericCell(float64(i)+noise))
		in.Cells = append(in.Cells, dataset.NumericCell(5+math.Cos(float64(i)/7)+noise))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.xlsx")
	if err := spreadsheet.Write(&dataset.Dataset{Columns: []dataset.Column{tc, in}}, path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	c.LoadFile(path)

	orig, err := spreadsheet.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	c.SetWindow(7)
	c.SetOrder(2)
	c.FinishFiltering()

	out, err := spreadsheet.Load(filepath.Join(dir, "sample_savitzky_filtered.xlsx"))
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if out.Len() != 50 || len(out.Columns) != 2 {
		t.Fatalf("output shape %dx%d, want 50x2", out.Len(), len(out.Columns))
	}
	if out.Columns[0].Name != "time" {
		t.Errorf("first output column = %q, want %q", out.Columns[0].Name, "time")
	}

	// Both columns were smoothed; neither is named wavelength.
	for col := 0; col < 2; col++ {
		changed := false
		for i := 0; i < orig.Len(); i++ {
			if out.Columns[col].Cells[i].Value != orig.Columns[col].Cells[i].Value {
				changed = true
				break
			}
		}
		if !changed {
			t.Errorf("column %q unchanged in output", out.Columns[col].Name)
		}
	}

	if len(rec.notices) != 1 {
		t.Errorf("Notify called %d times, want 1", len(rec.notices))
	}
}

func TestFinishFilteringEvenWindowNormalized(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	dir := t.TempDir()
	c.LoadFile(writeSpectrum(t, dir, 50))

	// Programmatic input bypassing the slider step constraint.
	c.SetWindow(4)
	c.SetOrder(2)
	c.FinishFiltering()

	if _, err := os.Stat(filepath.Join(dir, "sample_savitzky_filtered.xlsx")); err != nil {
		t.Errorf("filter with even window did not produce output: %v", err)
	}
}

func TestFinishFilteringNoDataIsNoOp(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	c.FinishFiltering()

	if c.Mode() != ModeNoData {
		t.Errorf("mode = %v, want %v", c.Mode(), ModeNoData)
	}
	if len(rec.tables) != 0 || len(rec.notices) != 0 {
		t.Error("FinishFiltering without data must not display or notify")
	}
}

func TestFinishFilteringWriteFailureKeepsDataset(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())

	dir := t.TempDir()
	path := writeSpectrum(t, dir, 50)
	c.LoadFile(path)

	// Make the output path unwritable by occupying it with a directory.
	outPath := spreadsheet.FilteredPath(path)
	if err := os.Mkdir(outPath, 0o755); err != nil {
		t.Fatal(err)
	}

	c.SetWindow(7)
	c.SetOrder(2)
	c.FinishFiltering()

	// In-memory filtered dataset stands regardless of write failure.
	if c.Dataset() == nil || c.Dataset().Len() != 50 {
		t.Fatal("dataset lost after write failure")
	}
	if c.Mode() != ModeLoaded {
		t.Errorf("mode = %v, want %v", c.Mode(), ModeLoaded)
	}
	if len(rec.notices) != 0 {
		t.Error("success dialog must not be shown on write failure")
	}
}

func TestToggleOptionsHidesControlsKeepsParams(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec.hooks())
	c.LoadFile(writeSpectrum(t, t.TempDir(), 20))
	c.ActivateFilterMode()
	c.SetWindow(11)
	c.SetOrder(3)

	c.ToggleOptions(false)

	if got := rec.controls[len(rec.controls)-1]; got != false {
		t.Error("collapsing the options panel must hide the filter controls")
	}
	p := c.Params()
	if p.Window != 11 || p.Order != 3 {
		t.Errorf("params after collapse = %+v, want window 11 order 3", p)
	}
	if c.Mode() != ModeFilterConfiguring {
		t.Error("collapsing the panel must not discard the configuring state")
	}
}

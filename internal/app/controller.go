// Package app holds the application controller: the single owner of the
// loaded dataset and the state machine behind every UI action. The GUI layer
// wires widgets to the transition methods here and renders through Hooks, so
// the whole load -> display -> filter -> save flow runs headlessly in tests.
package app

import (
	"image"

	"github.com/spectralworks/spectral-prep/internal/dataset"
	"github.com/spectralworks/spectral-prep/internal/logging"
	"github.com/spectralworks/spectral-prep/internal/plotdata"
	"github.com/spectralworks/spectral-prep/internal/savgol"
	"github.com/spectralworks/spectral-prep/internal/spreadsheet"
)

// Mode is the controller's state-machine state.
type Mode int

const (
	// ModeNoData is the initial state: nothing loaded, plot and filter
	// actions are diagnostics-only no-ops.
	ModeNoData Mode = iota
	// ModeLoaded means a dataset is loaded and displayed.
	ModeLoaded
	// ModeFilterConfiguring means the filter parameter controls are live.
	ModeFilterConfiguring
)

func (m Mode) String() string {
	switch m {
	case ModeNoData:
		return "no-data"
	case ModeLoaded:
		return "loaded"
	case ModeFilterConfiguring:
		return "filter-configuring"
	default:
		return "unknown"
	}
}

// Slider ranges and defaults for the filter parameter controls.
const (
	WindowMin     = 3
	WindowMax     = 21
	WindowStep    = 2
	WindowDefault = 7

	OrderMin     = 1
	OrderMax     = 5
	OrderDefault = 2
)

// Chart render size in pixels; the view scales the image to fit.
const (
	plotWidth  = 1024
	plotHeight = 560
)

// Hooks are the view callbacks the controller drives. Every field is
// optional; a nil hook is skipped, which is what lets tests run the
// controller with no UI at all.
type Hooks struct {
	// ShowTable displays the dataset in the table view.
	ShowTable func(ds *dataset.Dataset)
	// ShowPlot displays a rendered chart in the plot view.
	ShowPlot func(img image.Image)
	// SetFilterControlsVisible shows or hides the slider controls.
	SetFilterControlsVisible func(visible bool)
	// Notify raises a blocking information dialog.
	Notify func(title, message string)
}

// Controller owns the dataset, the source file reference and the current
// mode. All methods run on the UI event thread; there is no concurrent
// access and no locking.
type Controller struct {
	log   *logging.Logger
	hooks Hooks

	ds         *dataset.Dataset
	sourcePath string
	mode       Mode

	params savgol.Params
}

// NewController creates a controller in ModeNoData with default filter
// parameters. A nil logger falls back to the default stderr logger.
func NewController(log *logging.Logger, hooks Hooks) *Controller {
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Controller{
		log:    log,
		hooks:  hooks,
		mode:   ModeNoData,
		params: savgol.Params{Window: WindowDefault, Order: OrderDefault},
	}
}

// Mode returns the current state-machine state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Dataset returns the currently loaded dataset, nil when none is loaded.
func (c *Controller) Dataset() *dataset.Dataset {
	return c.ds
}

// SourcePath returns the path of the originally loaded file.
func (c *Controller) SourcePath() string {
	return c.sourcePath
}

// Params returns the current filter parameters as set by the sliders.
func (c *Controller) Params() savgol.Params {
	return c.params
}

// LoadFile parses the spreadsheet at path and installs it as the current
// dataset. On failure the previous dataset and source path stay current.
// On success the table view is refreshed automatically.
func (c *Controller) LoadFile(path string) {
	ds, err := spreadsheet.Load(path)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("Error loading file")
		return
	}

	c.ds = ds
	c.sourcePath = path
	c.mode = ModeLoaded
	c.log.Info().
		Str("path", path).
		Int("rows", ds.Len()).
		Int("columns", len(ds.Columns)).
		Msg("Excel file loaded successfully")
	c.showTable()
}

// PlotData renders the wavelength vs. first-series line chart. With no
// dataset, or when the column layout does not meet the plot precondition,
// it emits a diagnostic and draws nothing.
func (c *Controller) PlotData() {
	if c.ds == nil {
		c.log.Warn().Msg("No data loaded.")
		return
	}
	sch, err := dataset.Validate(c.ds)
	if err != nil {
		c.log.Warn().Err(err).Msg("Ensure the first column is named 'wavelength' and at least one data column exists.")
		return
	}
	img, err := plotdata.Render(c.ds, sch, plotWidth, plotHeight)
	if err != nil {
		c.log.Error().Err(err).Msg("Error plotting data")
		return
	}
	if c.hooks.ShowPlot != nil {
		c.hooks.ShowPlot(img)
	}
}

// ActivateFilterMode exposes the filter parameter controls. Requires a
// loaded dataset.
func (c *Controller) ActivateFilterMode() {
	if c.ds == nil {
		c.log.Warn().Msg("Load an Excel file first.")
		return
	}
	c.mode = ModeFilterConfiguring
	if c.hooks.SetFilterControlsVisible != nil {
		c.hooks.SetFilterControlsVisible(true)
	}
	c.log.Info().Msg("Filter mode activated. Adjust the sliders, then finish filtering.")
}

// SetWindow records the window-size slider value.
func (c *Controller) SetWindow(w int) {
	c.params.Window = w
}

// SetOrder records the polynomial-order slider value.
func (c *Controller) SetOrder(o int) {
	c.params.Order = o
}

// FinishFiltering runs the whole finalize path: normalize parameters,
// smooth every column not named "wavelength", write the filtered
// spreadsheet next to the source file, redisplay the table and return to
// ModeLoaded. Unlike plotting, filtering has no column-layout precondition.
//
// Per-column smoothing failures are reported individually and do not abort
// the operation. A write failure is reported but the in-memory filtered
// dataset stands.
func (c *Controller) FinishFiltering() {
	if c.ds == nil {
		c.log.Warn().Msg("No data loaded.")
		return
	}

	params := c.params.Normalize()
	c.log.Info().
		Int("window", params.Window).
		Int("order", params.Order).
		Msg("Applying Savitzky-Golay filter")

	for _, colErr := range savgol.Apply(c.ds, params) {
		c.log.Error().
			Err(colErr.Err).
			Str("column", colErr.Column).
			Msgf("Error filtering column %q", colErr.Column)
	}

	c.persistFiltered()
	c.showTable()

	c.mode = ModeLoaded
	if c.hooks.SetFilterControlsVisible != nil {
		c.hooks.SetFilterControlsVisible(false)
	}
}

// persistFiltered writes the current dataset to the derived output path.
// Skipped with a diagnostic when no source file reference exists.
func (c *Controller) persistFiltered() {
	if c.sourcePath == "" {
		c.log.Warn().Msg("Original file path not found.")
		return
	}
	out := spreadsheet.FilteredPath(c.sourcePath)
	if err := spreadsheet.Write(c.ds, out); err != nil {
		c.log.Error().Err(err).Str("path", out).Msg("Error saving filtered file")
		return
	}
	c.log.Info().Str("path", out).Msg("Filtered data saved")
	if c.hooks.Notify != nil {
		c.hooks.Notify("Filtering Complete", "Filtered data saved to:\n"+out)
	}
}

// ToggleOptions reports the options panel being opened or collapsed.
// Collapsing hides the filter controls without discarding the slider
// values or the configuring state.
func (c *Controller) ToggleOptions(open bool) {
	if !open && c.hooks.SetFilterControlsVisible != nil {
		c.hooks.SetFilterControlsVisible(false)
	}
}

func (c *Controller) showTable() {
	if c.ds == nil {
		c.log.Warn().Msg("No data loaded.")
		return
	}
	if c.hooks.ShowTable != nil {
		c.hooks.ShowTable(c.ds)
	}
}

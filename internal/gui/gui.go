// Package gui provides the graphical user interface for spectral-prep.
package gui

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	appctl "github.com/spectralworks/spectral-prep/internal/app"
	"github.com/spectralworks/spectral-prep/internal/logging"
)

// guiLogger is the package-level logger for GUI mode.
var guiLogger *logging.Logger

// Launch starts the GUI application and blocks until the window closes.
func Launch() error {
	// Check for display on Linux
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("GUI mode requires a display; DISPLAY and WAYLAND_DISPLAY are not set")
		}
	}

	fyneApp := app.NewWithID("com.spectralworks.spectral-prep")
	fyneApp.Settings().SetTheme(&spectralTheme{})

	mainWindow := fyneApp.NewWindow("Spectral Preprocessing Tool")
	mainWindow.SetMaster()

	ui := NewUI(mainWindow)

	// Mirror diagnostics into the activity pane. Set up after NewUI so the
	// sink has a list to append to.
	guiLogger = logging.NewLogger(ui.appendActivityLine)
	if os.Getenv("SPECTRAL_DEBUG") != "" {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		guiLogger.Info().Msg("Debug logging enabled via SPECTRAL_DEBUG")
	}
	ui.bindController(guiLogger)

	mainWindow.SetContent(ui.Build())
	mainWindow.Resize(fyne.NewSize(1200, 700))
	mainWindow.CenterOnScreen()
	mainWindow.ShowAndRun()

	return nil
}

// UI composes the sidebar and the stacked content area over the headless
// controller. Every widget callback delegates to a controller transition;
// the controller drives the views back through Hooks.
type UI struct {
	window     fyne.Window
	controller *appctl.Controller

	sidebar   *Sidebar
	tableView *TableView
	plotView  *PlotView
	activity  *ActivityLog
}

// NewUI creates the UI views. The controller is attached separately by
// bindController once the logger exists.
func NewUI(window fyne.Window) *UI {
	return &UI{
		window:    window,
		tableView: NewTableView(),
		plotView:  NewPlotView(),
		activity:  NewActivityLog(),
	}
}

// bindController wires the controller and the sidebar to the views.
func (ui *UI) bindController(log *logging.Logger) {
	ui.controller = appctl.NewController(log, appctl.Hooks{
		ShowTable:                ui.showTable,
		ShowPlot:                 ui.showPlot,
		SetFilterControlsVisible: ui.setFilterControlsVisible,
		Notify:                   ui.notify,
	})
	ui.sidebar = NewSidebar(ui.controller, ui.openLoadDialog)
}

// Build creates the window layout: collapsible sidebar on the left, table
// or plot in the center, activity log along the bottom.
func (ui *UI) Build() fyne.CanvasObject {
	content := container.NewStack(
		ui.tableView.Build(),
		ui.plotView.Build(),
	)
	ui.plotView.Hide()

	center := container.NewBorder(
		nil,
		ui.activity.Build(),
		nil, nil,
		content,
	)

	return container.NewBorder(
		nil, nil,
		ui.sidebar.Build(),
		nil,
		center,
	)
}

// openLoadDialog shows the native open dialog filtered to spreadsheets and
// hands the chosen path to the controller.
func (ui *UI) openLoadDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		ui.controller.LoadFile(reader.URI().Path())
	}, ui.window)
	fd.SetFilter(spreadsheetFilter())
	fd.Show()
}

func (ui *UI) notify(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

func (ui *UI) appendActivityLine(line string) {
	ui.activity.Append(line)
}

func (ui *UI) setFilterControlsVisible(visible bool) {
	ui.sidebar.SetFilterControlsVisible(visible)
}

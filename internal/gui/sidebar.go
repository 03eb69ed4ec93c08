package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	appctl "github.com/spectralworks/spectral-prep/internal/app"
)

// Sidebar holds the preprocessing controls: the outer toggle, the action
// buttons and the filter parameter sliders. State transitions live in the
// controller; the sidebar only reports widget events.
type Sidebar struct {
	controller *appctl.Controller
	onLoad     func()

	optionsOpen bool

	options        *fyne.Container
	filterControls *fyne.Container
	windowLabel    *widget.Label
	orderLabel     *widget.Label
}

// NewSidebar creates the sidebar. onLoad is invoked by the load button to
// open the file dialog (the dialog needs the window, which the UI owns).
func NewSidebar(controller *appctl.Controller, onLoad func()) *Sidebar {
	return &Sidebar{
		controller: controller,
		onLoad:     onLoad,
	}
}

// Build creates the sidebar layout.
func (sb *Sidebar) Build() fyne.CanvasObject {
	loadBtn := widget.NewButton("Load Excel File", sb.onLoad)
	plotBtn := widget.NewButton("Plot Data", sb.controller.PlotData)
	filterBtn := widget.NewButton("Savitzky-Golay Filter", sb.controller.ActivateFilterMode)

	sb.windowLabel = widget.NewLabel(windowLabelText(appctl.WindowDefault))
	windowSlider := widget.NewSlider(appctl.WindowMin, appctl.WindowMax)
	windowSlider.Step = appctl.WindowStep
	windowSlider.SetValue(appctl.WindowDefault)
	windowSlider.OnChanged = func(v float64) {
		w := int(v)
		sb.windowLabel.SetText(windowLabelText(w))
		sb.controller.SetWindow(w)
	}

	sb.orderLabel = widget.NewLabel(orderLabelText(appctl.OrderDefault))
	orderSlider := widget.NewSlider(appctl.OrderMin, appctl.OrderMax)
	orderSlider.Step = 1
	orderSlider.SetValue(appctl.OrderDefault)
	orderSlider.OnChanged = func(v float64) {
		o := int(v)
		sb.orderLabel.SetText(orderLabelText(o))
		sb.controller.SetOrder(o)
	}

	finishBtn := NewPrimaryButton("Finished filtering choices", sb.controller.FinishFiltering)

	sb.filterControls = container.NewVBox(
		sb.windowLabel,
		windowSlider,
		sb.orderLabel,
		orderSlider,
		finishBtn,
	)
	sb.filterControls.Hide()

	sb.options = container.NewVBox(
		loadBtn,
		plotBtn,
		filterBtn,
		sb.filterControls,
	)
	sb.options.Hide()

	toggle := NewPrimaryButton("Preprocessing", sb.toggleOptions)

	return container.NewVBox(
		VerticalSpacer(8),
		toggle,
		VerticalSpacer(8),
		sb.options,
	)
}

// toggleOptions shows or collapses the options panel. Collapsing also hides
// the filter controls; slider values are untouched.
func (sb *Sidebar) toggleOptions() {
	sb.optionsOpen = !sb.optionsOpen
	if sb.optionsOpen {
		sb.options.Show()
	} else {
		sb.options.Hide()
	}
	sb.controller.ToggleOptions(sb.optionsOpen)
}

// SetFilterControlsVisible is the controller hook for the slider panel.
func (sb *Sidebar) SetFilterControlsVisible(visible bool) {
	if visible {
		sb.filterControls.Show()
	} else {
		sb.filterControls.Hide()
	}
}

func windowLabelText(w int) string {
	return fmt.Sprintf("Savitzky-Golay Window Size: %d", w)
}

func orderLabelText(o int) string {
	return fmt.Sprintf("Polynomial Order: %d", o)
}

// spreadsheetFilter limits the open dialog to spreadsheet files.
func spreadsheetFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter([]string{".xlsx", ".xls"})
}

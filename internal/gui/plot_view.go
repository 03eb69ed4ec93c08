package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// PlotView shows a rendered chart image in the content area.
type PlotView struct {
	img  *canvas.Image
	wrap *fyne.Container
}

// NewPlotView creates an empty plot view.
func NewPlotView() *PlotView {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	return &PlotView{
		img:  img,
		wrap: container.NewStack(img),
	}
}

// Build returns the plot container.
func (pv *PlotView) Build() fyne.CanvasObject {
	return pv.wrap
}

// SetImage replaces the displayed chart.
func (pv *PlotView) SetImage(m image.Image) {
	pv.img.Image = m
	pv.img.Refresh()
}

// Show makes the plot visible.
func (pv *PlotView) Show() { pv.wrap.Show() }

// Hide hides the plot.
func (pv *PlotView) Hide() { pv.wrap.Hide() }

// showPlot is the controller hook: display the rendered chart and switch
// the content area to the plot view.
func (ui *UI) showPlot(m image.Image) {
	ui.plotView.SetImage(m)
	ui.tableView.Hide()
	ui.plotView.Show()
}

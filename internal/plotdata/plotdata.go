// Package plotdata renders a dataset as a wavelength-vs-intensity line
// chart. Rendering is headless: it produces an image.Image the GUI displays
// in a canvas, so the chart contract is testable without any window.
package plotdata

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/spectralworks/spectral-prep/internal/dataset"
)

// Title is the chart title for spectral line plots.
const Title = "Spectral Data"

// Render draws the first series column of ds against the wavelength column
// as a line chart of the given pixel size. The schema must come from
// dataset.Validate; column selection is fixed to the first column after
// wavelength.
func Render(ds *dataset.Dataset, sch dataset.Schema, width, height int) (image.Image, error) {
	xs, ok := ds.Columns[sch.WavelengthIndex].Values()
	if !ok {
		return nil, fmt.Errorf("wavelength column contains non-numeric cells")
	}
	yCol := &ds.Columns[sch.SeriesIndices[0]]
	ys, ok := yCol.Values()
	if !ok {
		return nil, fmt.Errorf("column %q contains non-numeric cells", yCol.Name)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 samples to plot, have %d", len(xs))
	}

	ch := chart.Chart{
		Title:  Title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "Wavelength"},
		YAxis:  chart.YAxis{Name: yCol.Name},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yCol.Name,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart image: %w", err)
	}
	return img, nil
}

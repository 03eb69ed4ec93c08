package dataset

import (
	"errors"
	"strings"
)

// Schema errors returned by Validate. Callers surface these as diagnostics;
// none of them is fatal.
var (
	// ErrNoData means no dataset has been loaded yet.
	ErrNoData = errors.New("no data loaded")

	// ErrNoWavelength means the first column is not named "wavelength".
	ErrNoWavelength = errors.New("first column must be named 'wavelength'")

	// ErrNoSeries means there is no data column after the wavelength column.
	ErrNoSeries = errors.New("at least one data column after 'wavelength' is required")
)

// WavelengthColumn is the reserved name of the x-axis column. The comparison
// is case-insensitive and lives only in Validate.
const WavelengthColumn = "wavelength"

// Schema is the result of validating a dataset's column layout: where the
// wavelength column sits and which columns carry series data.
type Schema struct {
	WavelengthIndex int
	SeriesIndices   []int
}

// Validate checks the dataset layout required by plotting and filtering:
// a first column case-insensitively named "wavelength" plus at least one
// further column. It returns a typed error naming the missing requirement.
func Validate(d *Dataset) (Schema, error) {
	if d == nil || len(d.Columns) == 0 {
		return Schema{}, ErrNoData
	}
	if !strings.EqualFold(d.Columns[0].Name, WavelengthColumn) {
		return Schema{}, ErrNoWavelength
	}
	if len(d.Columns) < 2 {
		return Schema{}, ErrNoSeries
	}
	sch := Schema{WavelengthIndex: 0}
	for i := 1; i < len(d.Columns); i++ {
		sch.SeriesIndices = append(sch.SeriesIndices, i)
	}
	return sch, nil
}

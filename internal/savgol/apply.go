package savgol

import (
	"fmt"
	"strings"

	"github.com/spectralworks/spectral-prep/internal/dataset"
)

// ColumnError records a single column that could not be smoothed.
type ColumnError struct {
	Column string
	Err    error
}

func (e ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

// Apply smooths every column of ds in place except those case-insensitively
// named "wavelength", which pass through untouched wherever they sit.
// Column names, order and row count are preserved.
//
// A column that cannot be smoothed (non-numeric cells, fewer rows than the
// window) is left as-is and reported; the remaining columns are still
// processed. Params must already be normalized.
func Apply(ds *dataset.Dataset, p Params) []ColumnError {
	var failures []ColumnError
	for i := range ds.Columns {
		col := &ds.Columns[i]
		if strings.EqualFold(col.Name, dataset.WavelengthColumn) {
			continue
		}
		values, ok := col.Values()
		if !ok {
			failures = append(failures, ColumnError{Column: col.Name, Err: fmt.Errorf("contains non-numeric cells")})
			continue
		}
		smoothed, err := Smooth(values, p)
		if err != nil {
			failures = append(failures, ColumnError{Column: col.Name, Err: err})
			continue
		}
		col.SetValues(smoothed)
	}
	return failures
}

// Package savgol implements Savitzky-Golay smoothing: a local polynomial
// least-squares fit evaluated over a centered sliding window, applied to
// uniformly sampled series.
//
// Interior samples are smoothed by convolution with pre-computed design
// coefficients. Edge samples, where a full centered window does not fit,
// are replaced by evaluating a polynomial fitted to the first (respectively
// last) full window of samples.
package savgol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Params holds the user-adjustable filter parameters.
type Params struct {
	Window int // window size in samples, odd, >= 3
	Order  int // polynomial order, >= 1, < Window
}

// Normalize returns params adjusted to satisfy the filter invariants:
// the window is odd and strictly greater than the polynomial order.
// Out-of-range slider values are never rejected, only corrected.
func (p Params) Normalize() Params {
	if p.Window%2 == 0 {
		p.Window++
	}
	if p.Window <= p.Order {
		p.Window = p.Order + 2
		if p.Window%2 == 0 {
			p.Window++
		}
	}
	return p
}

// Validate reports whether params can be used for coefficient design as-is.
func (p Params) Validate() error {
	if p.Window < 3 || p.Window%2 == 0 {
		return fmt.Errorf("window size must be odd and >= 3, got %d", p.Window)
	}
	if p.Order < 1 {
		return fmt.Errorf("polynomial order must be >= 1, got %d", p.Order)
	}
	if p.Order >= p.Window {
		return fmt.Errorf("polynomial order %d must be less than window size %d", p.Order, p.Window)
	}
	return nil
}

// Design computes the smoothing coefficients c for the given params such
// that the smoothed center sample of a window x is
//
//	y = sum_{j=0}^{W-1} c[j] * x[j]
//
// The coefficients are the first row of the pseudo-inverse of the
// Vandermonde matrix over the window offsets -h..h: the value at offset 0
// of the least-squares polynomial fit.
func Design(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	half := p.Window / 2
	a := vandermonde(offsets(-half, p.Window), p.Order)

	// Solve (A^T A) z = e0, then c = A z.
	var ata mat.Dense
	ata.Mul(a.T(), a)
	e0 := mat.NewVecDense(p.Order+1, nil)
	e0.SetVec(0, 1)
	z := mat.NewVecDense(p.Order+1, nil)
	if err := z.SolveVec(&ata, e0); err != nil {
		return nil, fmt.Errorf("coefficient design: %w", err)
	}

	c := mat.NewVecDense(p.Window, nil)
	c.MulVec(a, z)

	out := make([]float64, p.Window)
	for i := range out {
		v := c.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("coefficient design produced non-finite value at tap %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// Smooth applies the filter to x, returning a new slice of the same length.
// Params must already satisfy the invariants (see Normalize).
func Smooth(x []float64, p Params) ([]float64, error) {
	coeffs, err := Design(p)
	if err != nil {
		return nil, err
	}
	if len(x) < p.Window {
		return nil, fmt.Errorf("series length %d is shorter than window size %d", len(x), p.Window)
	}

	n := len(x)
	half := p.Window / 2
	out := make([]float64, n)

	// Interior: direct convolution with the design coefficients.
	for i := half; i < n-half; i++ {
		var y float64
		for j, c := range coeffs {
			y += c * x[i-half+j]
		}
		out[i] = y
	}

	// Edges: fit an Order-degree polynomial to the first/last full window
	// and evaluate it at the uncovered positions.
	head, err := polyfit(x[:p.Window], p.Order)
	if err != nil {
		return nil, fmt.Errorf("head fit: %w", err)
	}
	for i := 0; i < half; i++ {
		out[i] = polyval(head, float64(i))
	}

	tail, err := polyfit(x[n-p.Window:], p.Order)
	if err != nil {
		return nil, fmt.Errorf("tail fit: %w", err)
	}
	for i := n - half; i < n; i++ {
		out[i] = polyval(tail, float64(i-(n-p.Window)))
	}

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("smoothing produced non-finite value at sample %d", i)
		}
	}
	return out, nil
}

// offsets returns n consecutive integers starting at from, as float64.
func offsets(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from + i)
	}
	return out
}

// vandermonde builds the n x (order+1) matrix with rows [1, t, t^2, ...].
func vandermonde(ts []float64, order int) *mat.Dense {
	a := mat.NewDense(len(ts), order+1, nil)
	for i, t := range ts {
		v := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}
	return a
}

// polyfit least-squares fits an order-degree polynomial to y sampled at
// positions 0..len(y)-1, returning the coefficients lowest-degree first.
func polyfit(y []float64, order int) ([]float64, error) {
	a := vandermonde(offsets(0, len(y)), order)
	b := mat.NewVecDense(len(y), nil)
	for i, v := range y {
		b.SetVec(i, v)
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, err
	}

	coeffs := make([]float64, order+1)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}
	return coeffs, nil
}

// polyval evaluates a polynomial (coefficients lowest-degree first) at t.
func polyval(coeffs []float64, t float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*t + coeffs[i]
	}
	return y
}

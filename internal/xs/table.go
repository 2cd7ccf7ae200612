package xs

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Table interpolates a tabulated cross section with an Akima spline in
// log10-log10 space. Beyond the tabulated window it continues the end
// slopes, a power law in linear space.
type Table struct {
	lo, hi         float64 // tabulated window, keV
	loLog, hiLog   float64 // log10 of the window
	loVal, hiVal   float64 // log10 σ at the window edges
	loSlope        float64 // dlog10σ/dlog10E at the edges
	hiSlope        float64
	spline         *interp.AkimaSpline
}

// NewTable builds a Table from parallel energy (keV) and cross-section
// (millibarn) columns. Energies must be strictly increasing and
// positive, cross sections positive, with at least four points.
func NewTable(energies, sigmas []float64) (*Table, error) {
	if len(energies) != len(sigmas) {
		return nil, fmt.Errorf("xs: %d energies against %d cross sections", len(energies), len(sigmas))
	}
	if len(energies) < 4 {
		return nil, errors.New("xs: need at least four table points")
	}
	xlog := make([]float64, len(energies))
	ylog := make([]float64, len(sigmas))
	for i, e := range energies {
		if e <= 0 {
			return nil, fmt.Errorf("xs: energy %v is not positive", e)
		}
		if i > 0 && e <= energies[i-1] {
			return nil, fmt.Errorf("xs: energies not strictly increasing at %v", e)
		}
		if sigmas[i] <= 0 {
			return nil, fmt.Errorf("xs: cross section %v at %v keV is not positive", sigmas[i], e)
		}
		xlog[i] = math.Log10(e)
		ylog[i] = math.Log10(sigmas[i])
	}
	spline := &interp.AkimaSpline{}
	if err := spline.Fit(xlog, ylog); err != nil {
		return nil, fmt.Errorf("xs: fitting table: %w", err)
	}
	n := len(xlog)
	return &Table{
		lo: energies[0], hi: energies[n-1],
		loLog: xlog[0], hiLog: xlog[n-1],
		loVal: ylog[0], hiVal: ylog[n-1],
		loSlope: spline.PredictDerivative(xlog[0]),
		hiSlope: spline.PredictDerivative(xlog[n-1]),
		spline:  spline,
	}, nil
}

// Domain returns the tabulated energy window in keV.
func (t *Table) Domain() (lo, hi float64) { return t.lo, t.hi }

// InRange reports whether e lies inside the tabulated window.
func (t *Table) InRange(e float64) bool { return e >= t.lo && e <= t.hi }

// Evaluate returns σ(e) in millibarns. Energies at or below zero give
// 0; outside the window the end power laws continue the table.
func (t *Table) Evaluate(e float64) float64 {
	if e <= 0 {
		return 0
	}
	if math.IsNaN(e) {
		return math.NaN()
	}
	return math.Pow(10, t.logSigma(math.Log10(e)))
}

// EvaluateDeriv returns σ(e) and dσ/dE. On a log-log curve the linear
// derivative is σ·s/E with s the local log-log slope.
func (t *Table) EvaluateDeriv(e float64) (sigma, deriv float64) {
	if e <= 0 {
		return 0, 0
	}
	if math.IsNaN(e) {
		return math.NaN(), math.NaN()
	}
	le := math.Log10(e)
	sigma = math.Pow(10, t.logSigma(le))
	return sigma, sigma * t.slope(le) / e
}

func (t *Table) logSigma(le float64) float64 {
	switch {
	case le < t.loLog:
		return t.loVal + t.loSlope*(le-t.loLog)
	case le > t.hiLog:
		return t.hiVal + t.hiSlope*(le-t.hiLog)
	default:
		return t.spline.Predict(le)
	}
}

func (t *Table) slope(le float64) float64 {
	switch {
	case le < t.loLog:
		return t.loSlope
	case le > t.hiLog:
		return t.hiSlope
	default:
		return t.spline.PredictDerivative(le)
	}
}

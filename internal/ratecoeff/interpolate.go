package ratecoeff

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// InterpolatedRate serves a tabulated Maxwellian rate coefficient. The
// table is fitted in log10-log10 space with a Fritsch-Butland cubic,
// which preserves the monotone rise of rate curves, and the end slopes
// continue the table as power laws outside its window.
type InterpolatedRate struct {
	lo, hi       float64 // tabulated window, keV
	loLog, hiLog float64
	loVal, hiVal float64
	loSlope      float64
	hiSlope      float64
	spline       *interp.FritschButland
}

// NewInterpolatedRate builds an InterpolatedRate from parallel
// temperature (keV) and rate-coefficient (cm³/s) columns. Temperatures
// must be strictly increasing and positive, rates positive, with at
// least four points.
func NewInterpolatedRate(temps, rates []float64) (*InterpolatedRate, error) {
	if len(temps) != len(rates) {
		return nil, fmt.Errorf("ratecoeff: %d temperatures against %d rates", len(temps), len(rates))
	}
	if len(temps) < 4 {
		return nil, errors.New("ratecoeff: need at least four table points")
	}
	xlog := make([]float64, len(temps))
	ylog := make([]float64, len(rates))
	for i, temp := range temps {
		if temp <= 0 {
			return nil, fmt.Errorf("ratecoeff: temperature %v is not positive", temp)
		}
		if i > 0 && temp <= temps[i-1] {
			return nil, fmt.Errorf("ratecoeff: temperatures not strictly increasing at %v", temp)
		}
		if rates[i] <= 0 {
			return nil, fmt.Errorf("ratecoeff: rate %v at %v keV is not positive", rates[i], temp)
		}
		xlog[i] = math.Log10(temp)
		ylog[i] = math.Log10(rates[i])
	}
	spline := &interp.FritschButland{}
	if err := spline.Fit(xlog, ylog); err != nil {
		return nil, fmt.Errorf("ratecoeff: fitting table: %w", err)
	}
	n := len(xlog)
	return &InterpolatedRate{
		lo: temps[0], hi: temps[n-1],
		loLog: xlog[0], hiLog: xlog[n-1],
		loVal: ylog[0], hiVal: ylog[n-1],
		loSlope: spline.PredictDerivative(xlog[0]),
		hiSlope: spline.PredictDerivative(xlog[n-1]),
		spline:  spline,
	}, nil
}

// Domain returns the tabulated temperature window in keV.
func (r *InterpolatedRate) Domain() (lo, hi float64) { return r.lo, r.hi }

// InRange reports whether t lies inside the tabulated window.
func (r *InterpolatedRate) InRange(t float64) bool { return t >= r.lo && t <= r.hi }

// Value returns ⟨σv⟩ at temperature t in keV. Temperatures at or below
// zero give 0.
func (r *InterpolatedRate) Value(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if math.IsNaN(t) {
		return math.NaN()
	}
	return math.Pow(10, r.logRate(math.Log10(t)))
}

// ValueDeriv returns ⟨σv⟩ and d⟨σv⟩/dT. On the log-log curve the
// linear derivative is the value times the local slope over t.
func (r *InterpolatedRate) ValueDeriv(t float64) (value, deriv float64) {
	if t <= 0 {
		return 0, 0
	}
	if math.IsNaN(t) {
		return math.NaN(), math.NaN()
	}
	lt := math.Log10(t)
	value = math.Pow(10, r.logRate(lt))
	return value, value * r.slope(lt) / t
}

func (r *InterpolatedRate) logRate(lt float64) float64 {
	switch {
	case lt < r.loLog:
		return r.loVal + r.loSlope*(lt-r.loLog)
	case lt > r.hiLog:
		return r.hiVal + r.hiSlope*(lt-r.hiLog)
	default:
		return r.spline.Predict(lt)
	}
}

func (r *InterpolatedRate) slope(lt float64) float64 {
	switch {
	case lt < r.loLog:
		return r.loSlope
	case lt > r.hiLog:
		return r.hiSlope
	default:
		return r.spline.PredictDerivative(lt)
	}
}

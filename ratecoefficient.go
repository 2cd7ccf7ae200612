package fusionrate

import (
	"fmt"
	"math"
)

// RateCoefficient returns the Maxwellian ⟨σv⟩ in cm³/s at ion
// temperature t in keV, evaluated by the reaction's resolved scheme.
// Negative, infinite and NaN temperatures give NaN; zero gives zero.
func (r *Reaction) RateCoefficient(t float64) float64 {
	switch classify(t) {
	case numInvalid:
		return math.NaN()
	case numZero:
		return 0
	}
	return r.maxwellian(t)
}

// RateCoefficientDeriv returns ⟨σv⟩ in cm³/s and d⟨σv⟩/dT in
// cm³/s/keV. At exactly zero temperature the value is zero and the
// derivative is the smallest positive float, so an optimizer at the
// origin is still pointed uphill.
func (r *Reaction) RateCoefficientDeriv(t float64) (value, deriv float64) {
	switch classify(t) {
	case numInvalid:
		return math.NaN(), math.NaN()
	case numZero:
		return 0, zeroSlope
	}
	return r.maxwellianDeriv(t)
}

// RateCoefficients evaluates a slice of temperatures element-wise.
func (r *Reaction) RateCoefficients(t []float64) []float64 {
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = r.RateCoefficient(v)
	}
	return out
}

// RateCoefficientDerivs evaluates a slice of temperatures
// element-wise, returning value and derivative slices of the input's
// length.
func (r *Reaction) RateCoefficientDerivs(t []float64) (values, derivs []float64) {
	values = make([]float64, len(t))
	derivs = make([]float64, len(t))
	for i, v := range t {
		values[i], derivs[i] = r.RateCoefficientDeriv(v)
	}
	return values, derivs
}

// RateCoefficientFor returns ⟨σv⟩ for an explicit distribution.
// Bi-Maxwellian averages always integrate; there are no published fits
// or stored tables for them. The only error is a malformed
// Distribution; numeric degeneracies resolve to sentinels per element
// as everywhere else.
func (r *Reaction) RateCoefficientFor(d Distribution) (float64, error) {
	switch d.kind {
	case distMaxwellian:
		return r.RateCoefficient(d.perp), nil
	case distBiMaxwellian:
		switch pairClassify(d.perp, d.par) {
		case numInvalid:
			return math.NaN(), nil
		case numZero:
			return 0, nil
		}
		return r.integ.BiMaxwellian(d.perp, d.par), nil
	default:
		return 0, fmt.Errorf("fusionrate: %s: %w", d, ErrMalformedDistribution)
	}
}

// RateCoefficientDerivFor returns ⟨σv⟩ and its derivatives with
// respect to the distribution's temperatures: [d/dT] for a Maxwellian,
// [∂/∂T⊥, ∂/∂T∥] for a bi-Maxwellian.
func (r *Reaction) RateCoefficientDerivFor(d Distribution) (float64, []float64, error) {
	switch d.kind {
	case distMaxwellian:
		v, dv := r.RateCoefficientDeriv(d.perp)
		return v, []float64{dv}, nil
	case distBiMaxwellian:
		switch pairClassify(d.perp, d.par) {
		case numInvalid:
			nan := math.NaN()
			return nan, []float64{nan, nan}, nil
		case numZero:
			return 0, []float64{zeroSlope, zeroSlope}, nil
		}
		v, dPerp, dPar := r.integ.BiMaxwellianDeriv(d.perp, d.par)
		return v, []float64{dPerp, dPar}, nil
	default:
		return 0, nil, fmt.Errorf("fusionrate: %s: %w", d, ErrMalformedDistribution)
	}
}

func (r *Reaction) maxwellian(t float64) float64 {
	switch r.scheme {
	case SchemeAnalytic:
		if !r.analytic.InRange(t) {
			lo, hi := r.analytic.Domain()
			r.diag.RateOutOfRange(t, lo, hi)
		}
		return r.analytic.Value(t)
	case SchemeInterpolation:
		if !r.interp.InRange(t) {
			lo, hi := r.interp.Domain()
			r.diag.RateOutOfRange(t, lo, hi)
		}
		return r.interp.Value(t)
	default:
		return r.integ.Maxwellian(t)
	}
}

func (r *Reaction) maxwellianDeriv(t float64) (float64, float64) {
	switch r.scheme {
	case SchemeAnalytic:
		if !r.analytic.InRange(t) {
			lo, hi := r.analytic.Domain()
			r.diag.RateOutOfRange(t, lo, hi)
		}
		return r.analytic.ValueDeriv(t)
	case SchemeInterpolation:
		if !r.interp.InRange(t) {
			lo, hi := r.interp.Domain()
			r.diag.RateOutOfRange(t, lo, hi)
		}
		return r.interp.ValueDeriv(t)
	default:
		return r.integ.MaxwellianDeriv(t)
	}
}

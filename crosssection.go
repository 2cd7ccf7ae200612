package fusionrate

import "math"

// CrossSection returns σ(e) in millibarns at center-of-mass energy e
// in keV. Negative, infinite and NaN energies give NaN; zero gives
// zero.
func (r *Reaction) CrossSection(e float64) float64 {
	switch classify(e) {
	case numInvalid:
		return math.NaN()
	case numZero:
		return 0
	}
	r.noteEnergy(e)
	return r.sigma.Evaluate(e)
}

// CrossSectionDeriv returns σ(e) in millibarns and dσ/dE in millibarns
// per keV. At exactly zero energy the derivative is the smallest
// positive float, not zero.
func (r *Reaction) CrossSectionDeriv(e float64) (sigma, deriv float64) {
	switch classify(e) {
	case numInvalid:
		return math.NaN(), math.NaN()
	case numZero:
		return 0, zeroSlope
	}
	r.noteEnergy(e)
	return r.sigma.EvaluateDeriv(e)
}

// CrossSections evaluates a slice of energies element-wise. A
// degenerate element resolves to its sentinel without affecting its
// neighbors.
func (r *Reaction) CrossSections(e []float64) []float64 {
	out := make([]float64, len(e))
	for i, v := range e {
		out[i] = r.CrossSection(v)
	}
	return out
}

// CrossSectionDerivs evaluates a slice of energies element-wise,
// returning value and derivative slices of the input's length.
func (r *Reaction) CrossSectionDerivs(e []float64) (sigmas, derivs []float64) {
	sigmas = make([]float64, len(e))
	derivs = make([]float64, len(e))
	for i, v := range e {
		sigmas[i], derivs[i] = r.CrossSectionDeriv(v)
	}
	return sigmas, derivs
}

// noteEnergy counts evaluations outside the model's trusted window.
func (r *Reaction) noteEnergy(e float64) {
	if !r.sigma.InRange(e) {
		lo, hi := r.sigma.Domain()
		r.diag.CrossSectionOutOfRange(e, lo, hi)
	}
}

package xs

// Model is a fusion cross section as a function of center-of-mass
// energy. Energies are in keV, cross sections in millibarns.
//
// Implementations are pure: any value may be evaluated concurrently
// after construction.
type Model interface {
	// Evaluate returns σ(e). Energies at or below zero give 0.
	Evaluate(e float64) float64

	// EvaluateDeriv returns σ(e) and dσ/dE in millibarns per keV.
	EvaluateDeriv(e float64) (sigma, deriv float64)

	// Domain returns the energy window the model is fitted or
	// tabulated over. Evaluation outside the window extrapolates.
	Domain() (lo, hi float64)

	// InRange reports whether e lies inside Domain.
	InRange(e float64) bool
}

// Package ratecoeff turns cross-section models into thermal rate
// coefficients.
//
// The Integrator averages σ·v over Maxwellian and bi-Maxwellian ion
// distributions by adaptive quadrature, with derivatives taken under
// the integral sign. InterpolatedRate serves rate coefficients from
// stored tables instead. Both are pure after construction and safe for
// concurrent use. Temperatures are keV, results cm³/s.
package ratecoeff

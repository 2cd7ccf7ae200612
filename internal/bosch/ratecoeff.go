package bosch

import (
	"math"

	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
)

// RateCoeff is a fitted Maxwellian-averaged rate coefficient for one
// reaction, equations (12)-(14) of Bosch-Hale:
//
//	⟨σv⟩(T) = C1 · θ √(ξ/(m_r c² T³)) · exp(-3ξ)
//	θ = T / (1 - T(C2+T(C4+T C6)) / (1+T(C3+T(C5+T C7))))
//	ξ = (B_G²/(4θ))^(1/3)
//
// with T in keV and ⟨σv⟩ in cm³/s. The zero value is not usable;
// obtain one from RateCoeffFor.
type RateCoeff struct {
	name   reactions.Name
	bgsq   float64 // squared Gamow constant, keV
	mrc2   float64 // reduced mass energy, keV
	c      [7]float64
	lo, hi float64 // fitted temperature window, keV
}

// RateCoeffFor returns the fitted rate coefficient for the reaction.
// The second return is false when no fit is published for it.
func RateCoeffFor(name reactions.Name) (RateCoeff, bool) {
	rc, ok := rateCoeffs[name]
	return rc, ok
}

// Name returns the canonical name of the fitted reaction.
func (r RateCoeff) Name() reactions.Name { return r.name }

// Domain returns the fitted temperature window in keV.
func (r RateCoeff) Domain() (lo, hi float64) { return r.lo, r.hi }

// InRange reports whether t lies inside the fitted window.
func (r RateCoeff) InRange(t float64) bool { return t >= r.lo && t <= r.hi }

// Value returns ⟨σv⟩(t) in cm³/s at temperature t in keV. Temperatures
// at or below zero give 0.
func (r RateCoeff) Value(t float64) float64 {
	if t <= 0 {
		return 0
	}
	th := r.theta(t)
	xi := math.Cbrt(r.bgsq / (4 * th))
	return r.c[0] * th * math.Sqrt(xi/(r.mrc2*t*t*t)) * math.Exp(-3*xi)
}

// ValueDeriv returns ⟨σv⟩(t) in cm³/s and d⟨σv⟩/dT in cm³/s per keV.
func (r RateCoeff) ValueDeriv(t float64) (value, deriv float64) {
	if t <= 0 {
		return 0, 0
	}
	th, dth := r.thetaDeriv(t)
	xi := math.Cbrt(r.bgsq / (4 * th))
	value = r.c[0] * th * math.Sqrt(xi/(r.mrc2*t*t*t)) * math.Exp(-3*xi)
	dxi := -xi / (3 * th) * dth
	dlog := dth/th + dxi*(1/(2*xi)-3) - 3/(2*t)
	return value, value * dlog
}

func (r RateCoeff) theta(t float64) float64 {
	p := t * (r.c[1] + t*(r.c[3]+t*r.c[5]))
	q := 1 + t*(r.c[2]+t*(r.c[4]+t*r.c[6]))
	return t / (1 - p/q)
}

// thetaDeriv returns θ(t) and dθ/dt.
func (r RateCoeff) thetaDeriv(t float64) (float64, float64) {
	p := t * (r.c[1] + t*(r.c[3]+t*r.c[5]))
	q := 1 + t*(r.c[2]+t*(r.c[4]+t*r.c[6]))
	dp := r.c[1] + t*(2*r.c[3]+3*r.c[5]*t)
	dq := r.c[2] + t*(2*r.c[4]+3*r.c[6]*t)
	d := 1 - p/q
	dd := -(dp*q - p*dq) / (q * q)
	return t / d, (d - t*dd) / (d * d)
}

var rateCoeffs = map[reactions.Name]RateCoeff{
	// Coefficient sets from Bosch-Hale Table VII.
	reactions.DT: {
		name: reactions.DT,
		bgsq: 34.3827 * 34.3827,
		mrc2: 1124656,
		c: [7]float64{
			1.17302e-9, 1.51361e-2, 7.51886e-2, 4.60643e-3,
			1.35000e-2, -1.06750e-4, 1.36600e-5,
		},
		lo: 0.2, hi: 100,
	},
	reactions.DHe3: {
		name: reactions.DHe3,
		bgsq: 68.7508 * 68.7508,
		mrc2: 1124572,
		c: [7]float64{
			5.51036e-10, 6.41918e-3, -2.02896e-3, -1.91080e-5,
			1.35776e-4, 0, 0,
		},
		lo: 0.5, hi: 190,
	},
	reactions.DDpT: {
		name: reactions.DDpT,
		bgsq: 31.3970 * 31.3970,
		mrc2: 937814,
		c: [7]float64{
			5.65718e-12, 3.41267e-3, 1.99167e-3, 0,
			1.05060e-5, 0, 0,
		},
		lo: 0.2, hi: 100,
	},
	reactions.DDnHe3: {
		name: reactions.DDnHe3,
		bgsq: 31.3970 * 31.3970,
		mrc2: 937814,
		c: [7]float64{
			5.43360e-12, 5.85778e-3, 7.68222e-3, 0,
			-2.96400e-6, 0, 0,
		},
		lo: 0.2, hi: 100,
	},
}

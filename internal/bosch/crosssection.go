package bosch

import (
	"math"

	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
)

// sCalc evaluates one Padé fit of the astrophysical S-function,
//
//	S(E) = (a1 + E(a2 + E(a3 + E(a4 + E a5)))) /
//	       (1  + E(b1 + E(b2 + E(b3 + E b4))))
//
// with E in keV and S in millibarn·keV.
type sCalc struct {
	a [5]float64
	b [4]float64
}

func (c sCalc) value(e float64) float64 {
	num := c.a[0] + e*(c.a[1]+e*(c.a[2]+e*(c.a[3]+e*c.a[4])))
	den := 1 + e*(c.b[0]+e*(c.b[1]+e*(c.b[2]+e*c.b[3])))
	return num / den
}

// valueDeriv returns S(E) and dS/dE.
func (c sCalc) valueDeriv(e float64) (float64, float64) {
	num := c.a[0] + e*(c.a[1]+e*(c.a[2]+e*(c.a[3]+e*c.a[4])))
	den := 1 + e*(c.b[0]+e*(c.b[1]+e*(c.b[2]+e*c.b[3])))
	dnum := c.a[1] + e*(2*c.a[2]+e*(3*c.a[3]+4*c.a[4]*e))
	dden := c.b[0] + e*(2*c.b[1]+e*(3*c.b[2]+4*c.b[3]*e))
	s := num / den
	return s, (dnum - s*dden) / den
}

// CrossSection is a fitted fusion cross section for one reaction,
//
//	σ(E) = S(E) · exp(-B_G/√E) / E
//
// with E the center-of-mass energy in keV and σ in millibarns. The
// zero value is not usable; obtain one from CrossSectionFor.
type CrossSection struct {
	name       reactions.Name
	bg         float64 // Gamow constant, √keV
	lo, hi     float64 // fitted energy window, keV
	transition float64 // switchover between the two fits, 0 if single
	low, high  sCalc
	sLo, sHi   float64 // S held at the window edges
}

// CrossSectionFor returns the fitted cross section for the reaction.
// The second return is false when no fit is published for it.
func CrossSectionFor(name reactions.Name) (CrossSection, bool) {
	cs, ok := crossSections[name]
	return cs, ok
}

// Reactions lists the reactions covered by the fits, in a stable order.
func Reactions() []reactions.Name {
	return []reactions.Name{reactions.DT, reactions.DHe3, reactions.DDpT, reactions.DDnHe3}
}

// Name returns the canonical name of the fitted reaction.
func (c CrossSection) Name() reactions.Name { return c.name }

// GamowConstant returns the published B_G in √keV.
func (c CrossSection) GamowConstant() float64 { return c.bg }

// Domain returns the fitted energy window in keV.
func (c CrossSection) Domain() (lo, hi float64) { return c.lo, c.hi }

// InRange reports whether e lies inside the fitted window.
func (c CrossSection) InRange(e float64) bool { return e >= c.lo && e <= c.hi }

// Evaluate returns σ(e) in millibarns at center-of-mass energy e in
// keV. Energies at or below zero give 0, the physical threshold limit.
func (c CrossSection) Evaluate(e float64) float64 {
	if e <= 0 {
		return 0
	}
	var s float64
	switch {
	case e < c.lo:
		s = c.sLo
	case e > c.hi:
		s = c.sHi
	default:
		s = c.fit(e).value(e)
	}
	return s * math.Exp(-c.bg/math.Sqrt(e)) / e
}

// EvaluateDeriv returns σ(e) in millibarns and dσ/dE in millibarns per
// keV. Outside the fitted window the held S-function contributes no
// slope of its own, only the tunneling factor varies.
func (c CrossSection) EvaluateDeriv(e float64) (sigma, deriv float64) {
	if e <= 0 {
		return 0, 0
	}
	var s, ds float64
	switch {
	case e < c.lo:
		s = c.sLo
	case e > c.hi:
		s = c.sHi
	default:
		s, ds = c.fit(e).valueDeriv(e)
	}
	sqrtE := math.Sqrt(e)
	gamow := math.Exp(-c.bg / sqrtE)
	sigma = s * gamow / e
	deriv = gamow * ((c.bg-2*sqrtE)*s + 2*e*sqrtE*ds) / (2 * e * e * sqrtE)
	return sigma, deriv
}

// fit selects the active Padé fit. Reactions with a single fitted
// range always use low.
func (c CrossSection) fit(e float64) sCalc {
	if c.transition > 0 && e > c.transition {
		return c.high
	}
	return c.low
}

var crossSections = make(map[reactions.Name]CrossSection, 4)

func init() {
	// Coefficient sets from Bosch-Hale Table IV. D+T and D+³He carry
	// separate fits below and above the transition energy.
	for _, cs := range []CrossSection{
		{
			name: reactions.DT,
			bg:   34.3827,
			lo:   0.5, hi: 4700, transition: 530,
			low: sCalc{
				a: [5]float64{6.927e4, 7.454e8, 2.050e6, 5.2002e4, 0},
				b: [4]float64{6.38e1, -9.95e-1, 6.981e-5, 1.728e-4},
			},
			high: sCalc{
				a: [5]float64{-1.4714e6, 0, 0, 0, 0},
				b: [4]float64{-8.4127e-3, 4.7983e-6, -1.0748e-9, 8.5184e-14},
			},
		},
		{
			name: reactions.DHe3,
			bg:   68.7508,
			lo:   0.3, hi: 4800, transition: 900,
			low: sCalc{
				a: [5]float64{5.7501e6, 2.5226e3, 4.5566e1, 0, 0},
				b: [4]float64{-3.1995e-3, -8.5530e-6, 5.9014e-8, 0},
			},
			high: sCalc{
				a: [5]float64{-8.3993e5, 0, 0, 0, 0},
				b: [4]float64{-2.6830e-3, 1.1633e-6, -2.1332e-10, 1.425e-14},
			},
		},
		{
			name: reactions.DDpT,
			bg:   31.3970,
			lo:   0.5, hi: 5000,
			low: sCalc{
				a: [5]float64{5.5576e4, 2.1054e2, -3.2638e-2, 1.4987e-6, 1.8181e-10},
			},
		},
		{
			name: reactions.DDnHe3,
			bg:   31.3970,
			lo:   0.5, hi: 4900,
			low: sCalc{
				a: [5]float64{5.3701e4, 3.3027e2, -1.2706e-1, 2.9327e-5, -2.5151e-9},
			},
		},
	} {
		cs.sLo = cs.low.value(cs.lo)
		hiFit := cs.low
		if cs.transition > 0 {
			hiFit = cs.high
		}
		cs.sHi = hiFit.value(cs.hi)
		crossSections[cs.name] = cs
	}
}

package ratecoeff

import (
	"math"

	"github.com/PrincetonUniversity/fusionrate/internal/quadrature"
	"github.com/PrincetonUniversity/fusionrate/internal/species"
	"github.com/PrincetonUniversity/fusionrate/internal/xs"
)

// mbMetersToCm3 converts millibarn·(m/s) to cm³/s.
const mbMetersToCm3 = 1e-25

const (
	relTol1D  = 1e-9
	relTol2D  = 1e-7
	windowPad = 25
)

// Integrator averages a cross-section model over thermal ion
// distributions.
type Integrator struct {
	sigma xs.Model
	bg    float64 // Gamow constant, √keV
	speed float64 // 2√(2·keV/(π·m_r)), m/s
}

// New builds an Integrator for a cross section. The reduced mass is in
// amu. The Gamow constant, in √keV, locates the tunneling peak so the
// integration window can cover it at any temperature.
func New(sigma xs.Model, reducedMass, gamowConstant float64) *Integrator {
	return &Integrator{
		sigma: sigma,
		bg:    gamowConstant,
		speed: 2 * math.Sqrt(2*species.KeVJoules/(math.Pi*reducedMass*species.AMUKilograms)),
	}
}

// window returns the upper limit for the normalized-energy integrand
// at temperature t: three times the tunneling peak position plus a
// fixed tail allowance.
func (in *Integrator) window(t float64) float64 {
	if in.bg <= 0 {
		return windowPad
	}
	return 3*math.Cbrt(in.bg*in.bg/(4*t)) + windowPad
}

// Maxwellian returns ⟨σv⟩ at temperature t for reactants sharing one
// Maxwellian distribution. Temperatures at or below zero give 0.
func (in *Integrator) Maxwellian(t float64) float64 {
	if t <= 0 {
		return 0
	}
	val := quadrature.Adaptive(func(u float64) float64 {
		return u * math.Exp(-u) * in.sigma.Evaluate(u*t)
	}, 0, in.window(t), quadrature.Tol{Rel: relTol1D})
	return in.speed * math.Sqrt(t) * val * mbMetersToCm3
}

// MaxwellianDeriv returns ⟨σv⟩ and d⟨σv⟩/dT, differentiating under the
// integral sign.
func (in *Integrator) MaxwellianDeriv(t float64) (value, deriv float64) {
	if t <= 0 {
		return 0, 0
	}
	h := in.window(t)
	tol := quadrature.Tol{Rel: relTol1D}
	val := quadrature.Adaptive(func(u float64) float64 {
		return u * math.Exp(-u) * in.sigma.Evaluate(u*t)
	}, 0, h, tol)
	slope := quadrature.Adaptive(func(u float64) float64 {
		_, ds := in.sigma.EvaluateDeriv(u * t)
		return u * u * math.Exp(-u) * ds
	}, 0, h, tol)
	scale := in.speed * mbMetersToCm3
	sqrtT := math.Sqrt(t)
	return scale * sqrtT * val, scale * (val/(2*sqrtT) + sqrtT*slope)
}

// BiMaxwellian returns ⟨σv⟩ for reactants sharing one bi-Maxwellian
// distribution with perpendicular temperature tPerp and parallel
// temperature tPar. In normalized velocity coordinates the reaction
// energy is E = T⊥x² + T∥y², and the average is
//
//	⟨σv⟩ = (2/√π) ∫∫ x·exp(-x²-y²) · v(E)·σ(E) dy dx
//
// over x ≥ 0 and both signs of y. Either temperature at or below zero
// gives 0.
func (in *Integrator) BiMaxwellian(tPerp, tPar float64) float64 {
	if tPerp <= 0 || tPar <= 0 {
		return 0
	}
	val := quadrature.Adaptive2D(func(x, y float64) float64 {
		e := tPerp*x*x + tPar*y*y
		return x * math.Exp(-x*x-y*y) * math.Sqrt(e) * in.sigma.Evaluate(e)
	}, 0, math.Sqrt(in.window(tPerp)), -math.Sqrt(in.window(tPar)), math.Sqrt(in.window(tPar)),
		quadrature.Tol{Rel: relTol2D})
	return in.speed * val * mbMetersToCm3
}

// BiMaxwellianDeriv returns ⟨σv⟩ and its partial derivatives with
// respect to the perpendicular and parallel temperatures, both taken
// under the integral sign.
func (in *Integrator) BiMaxwellianDeriv(tPerp, tPar float64) (value, dPerp, dPar float64) {
	if tPerp <= 0 || tPar <= 0 {
		return 0, 0, 0
	}
	x1 := math.Sqrt(in.window(tPerp))
	y1 := math.Sqrt(in.window(tPar))
	tol := quadrature.Tol{Rel: relTol2D}
	energy := func(x, y float64) float64 { return tPerp*x*x + tPar*y*y }

	val := quadrature.Adaptive2D(func(x, y float64) float64 {
		e := energy(x, y)
		return x * math.Exp(-x*x-y*y) * math.Sqrt(e) * in.sigma.Evaluate(e)
	}, 0, x1, -y1, y1, tol)
	perp := quadrature.Adaptive2D(func(x, y float64) float64 {
		return x * x * x * math.Exp(-x*x-y*y) * in.dsv(energy(x, y))
	}, 0, x1, -y1, y1, tol)
	par := quadrature.Adaptive2D(func(x, y float64) float64 {
		return x * y * y * math.Exp(-x*x-y*y) * in.dsv(energy(x, y))
	}, 0, x1, -y1, y1, tol)

	scale := in.speed * mbMetersToCm3
	return scale * val, scale * perp, scale * par
}

// dsv is d(√E·σ)/dE, the energy derivative of the speed-weighted cross
// section. It vanishes at zero energy along with σ.
func (in *Integrator) dsv(e float64) float64 {
	if e <= 0 {
		return 0
	}
	sigma, ds := in.sigma.EvaluateDeriv(e)
	return (sigma + 2*e*ds) / (2 * math.Sqrt(e))
}

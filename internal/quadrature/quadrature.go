package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	panelPoints = 15
	maxDepth    = 25
	defaultRel  = 1e-8
)

// Tol bounds the error accepted for one integral. The bound applied is
// max(Abs, Rel·|estimate|); a zero Tol falls back to a relative
// tolerance of 1e-8.
type Tol struct {
	Rel float64
	Abs float64
}

func (t Tol) effective(scale float64) float64 {
	rel := t.Rel
	if rel == 0 && t.Abs == 0 {
		rel = defaultRel
	}
	e := rel * math.Abs(scale)
	if t.Abs > e {
		e = t.Abs
	}
	return e
}

// Adaptive integrates f over [a, b]. Panels are bisected, with half the
// error budget given to each side, until the two-panel refinement of a
// panel changes its estimate by less than the budget. Non-finite
// integrand values propagate to the result instead of being refined.
func Adaptive(f func(float64) float64, a, b float64, tol Tol) float64 {
	if a == b {
		return 0
	}
	if b < a {
		return -Adaptive(f, b, a, tol)
	}
	whole := quad.Fixed(f, a, b, panelPoints, quad.Legendre{}, 0)
	return refine(f, a, b, whole, tol.effective(whole), maxDepth)
}

func refine(f func(float64) float64, a, b, whole, budget float64, depth int) float64 {
	mid := a + (b-a)/2
	left := quad.Fixed(f, a, mid, panelPoints, quad.Legendre{}, 0)
	right := quad.Fixed(f, mid, b, panelPoints, quad.Legendre{}, 0)
	sum := left + right
	diff := sum - whole
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return sum
	}
	if math.Abs(diff) <= budget || depth == 0 {
		return sum
	}
	return refine(f, a, mid, left, budget/2, depth-1) +
		refine(f, mid, b, right, budget/2, depth-1)
}

// Adaptive2D integrates f over [ax, bx]×[ay, by] as an iterated
// integral. Each inner integral is solved to a tenth of the requested
// tolerance so its noise stays below the outer budget.
func Adaptive2D(f func(x, y float64) float64, ax, bx, ay, by float64, tol Tol) float64 {
	inner := Tol{Rel: tol.Rel / 10, Abs: tol.Abs / 10}
	outer := func(x float64) float64 {
		return Adaptive(func(y float64) float64 { return f(x, y) }, ay, by, inner)
	}
	return Adaptive(outer, ax, bx, tol)
}

package xs_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/PrincetonUniversity/fusionrate/internal/bosch"
	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
	"github.com/PrincetonUniversity/fusionrate/internal/xs"
)

func within(got, want, rtol float64) bool {
	return math.Abs(got-want) <= rtol*math.Abs(want)
}

// powerLawTable samples σ = c·E^p, which is exactly linear in
// log-log space.
func powerLawTable(t *testing.T, c, p float64) *xs.Table {
	t.Helper()
	energies := floats.LogSpan(make([]float64, 25), 1, 1000)
	sigmas := make([]float64, len(energies))
	for i, e := range energies {
		sigmas[i] = c * math.Pow(e, p)
	}
	table, err := xs.NewTable(energies, sigmas)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func TestTableReproducesPowerLaw(t *testing.T) {
	const c, p = 2.5, -1.5
	table := powerLawTable(t, c, p)

	// Inside, between and on the knots; outside, via the continued
	// end slopes.
	for _, e := range []float64{0.05, 0.4, 1, 3.7, 19, 250, 999, 1000, 4e3, 5e4} {
		want := c * math.Pow(e, p)
		if got := table.Evaluate(e); !within(got, want, 1e-10) {
			t.Errorf("σ(%v) = %v, want %v", e, got, want)
		}
		sigma, deriv := table.EvaluateDeriv(e)
		if !within(sigma, want, 1e-10) {
			t.Errorf("EvaluateDeriv σ(%v) = %v, want %v", e, sigma, want)
		}
		if wantDeriv := want * p / e; !within(deriv, wantDeriv, 1e-10) {
			t.Errorf("dσ/dE(%v) = %v, want %v", e, deriv, wantDeriv)
		}
	}
}

func TestTableDomain(t *testing.T) {
	table := powerLawTable(t, 1, 1)
	lo, hi := table.Domain()
	if !within(lo, 1, 1e-12) || !within(hi, 1000, 1e-12) {
		t.Fatalf("Domain = [%v, %v], want [1, 1000]", lo, hi)
	}
	if !table.InRange(500) || table.InRange(0.5) || table.InRange(1001) {
		t.Error("InRange disagrees with Domain")
	}
}

// A dense table sampled from the D+T fit has to reproduce the fit off
// the knots, derivative included.
func TestTableTracksAnalyticFit(t *testing.T) {
	cs, ok := bosch.CrossSectionFor(reactions.DT)
	if !ok {
		t.Fatal("no D+T fit")
	}
	energies := floats.LogSpan(make([]float64, 200), 1, 1000)
	sigmas := make([]float64, len(energies))
	for i, e := range energies {
		sigmas[i] = cs.Evaluate(e)
	}
	table, err := xs.NewTable(energies, sigmas)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for _, e := range []float64{1.7, 8.3, 47, 260, 810} {
		if got, want := table.Evaluate(e), cs.Evaluate(e); !within(got, want, 1e-3) {
			t.Errorf("σ(%v keV) = %v, fit gives %v", e, got, want)
		}
		_, gotDeriv := table.EvaluateDeriv(e)
		_, wantDeriv := cs.EvaluateDeriv(e)
		if !within(gotDeriv, wantDeriv, 1e-2) {
			t.Errorf("dσ/dE(%v keV) = %v, fit gives %v", e, gotDeriv, wantDeriv)
		}
	}
}

func TestTableRejectsBadInput(t *testing.T) {
	good := []float64{1, 2, 3, 4}
	cases := []struct {
		name             string
		energies, sigmas []float64
	}{
		{"mismatched lengths", good, []float64{1, 2, 3}},
		{"too few points", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"non-positive energy", []float64{0, 1, 2, 3}, good},
		{"non-increasing energies", []float64{1, 2, 2, 3}, good},
		{"non-positive cross section", good, []float64{1, 0, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := xs.NewTable(tc.energies, tc.sigmas); err == nil {
				t.Error("NewTable accepted bad input")
			}
		})
	}
}

func TestTableEdgeInputs(t *testing.T) {
	table := powerLawTable(t, 1, 2)
	if got := table.Evaluate(0); got != 0 {
		t.Errorf("σ(0) = %v, want 0", got)
	}
	if got := table.Evaluate(-3); got != 0 {
		t.Errorf("σ(-3) = %v, want 0", got)
	}
	if sigma, deriv := table.EvaluateDeriv(0); sigma != 0 || deriv != 0 {
		t.Errorf("EvaluateDeriv(0) = %v, %v, want 0, 0", sigma, deriv)
	}
	if got := table.Evaluate(math.NaN()); !math.IsNaN(got) {
		t.Errorf("σ(NaN) = %v, want NaN", got)
	}
}

package ratecoeff_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/PrincetonUniversity/fusionrate/internal/bosch"
	"github.com/PrincetonUniversity/fusionrate/internal/quadrature"
	"github.com/PrincetonUniversity/fusionrate/internal/ratecoeff"
	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
	"github.com/PrincetonUniversity/fusionrate/internal/species"
	"github.com/PrincetonUniversity/fusionrate/internal/xs"
)

func within(got, want, rtol float64) bool {
	return math.Abs(got-want) <= rtol*math.Abs(want)
}

// fitIntegrator builds an Integrator over the analytic cross section
// of one of the fitted reactions.
func fitIntegrator(t *testing.T, name reactions.Name) *ratecoeff.Integrator {
	t.Helper()
	cs, ok := bosch.CrossSectionFor(name)
	if !ok {
		t.Fatalf("no cross-section fit for %q", name)
	}
	core, err := reactions.New(string(name))
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	return ratecoeff.New(cs, core.ReducedMass(), core.GamowConstant())
}

// Integrating the fitted cross section has to land on the fitted rate
// coefficient to within the accuracy of the two parametrizations.
func TestMaxwellianMatchesBoschFit(t *testing.T) {
	for _, name := range bosch.Reactions() {
		t.Run(string(name), func(t *testing.T) {
			in := fitIntegrator(t, name)
			rc, _ := bosch.RateCoeffFor(name)
			for _, temp := range []float64{2, 5, 10, 20, 50} {
				got := in.Maxwellian(temp)
				want := rc.Value(temp)
				if !within(got, want, 2e-2) {
					t.Errorf("⟨σv⟩(%v keV) = %.4e, fit gives %.4e", temp, got, want)
				}
			}
		})
	}
}

func TestMaxwellianKnownValue(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	got := in.Maxwellian(10)
	if !within(got, 1.136e-16, 2e-2) {
		t.Errorf("D+T ⟨σv⟩(10 keV) = %.4e, want about 1.136e-16 cm³/s", got)
	}
}

func TestBiMaxwellianEqualTemperaturesMatchesMaxwellian(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	for _, temp := range []float64{2, 10, 50} {
		maxw := in.Maxwellian(temp)
		bimax := in.BiMaxwellian(temp, temp)
		if !within(bimax, maxw, 1e-6) {
			t.Errorf("T = %v keV: bi-Maxwellian %.10e differs from Maxwellian %.10e",
				temp, bimax, maxw)
		}
	}
}

func TestMaxwellianDerivMatchesFiniteDifference(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	for _, temp := range []float64{2, 10, 40} {
		value, deriv := in.MaxwellianDeriv(temp)
		if !within(value, in.Maxwellian(temp), 1e-9) {
			t.Fatalf("MaxwellianDeriv value diverges from Maxwellian at %v keV", temp)
		}
		h := 1e-3 * temp
		fd := (in.Maxwellian(temp+h) - in.Maxwellian(temp-h)) / (2 * h)
		if !within(deriv, fd, 1e-4) {
			t.Errorf("d⟨σv⟩/dT(%v keV) = %.6e, finite difference %.6e", temp, deriv, fd)
		}
	}
}

// At equal temperatures the two partial derivatives have to add up to
// the total Maxwellian temperature derivative.
func TestBiMaxwellianPartialsSumToTotalDerivative(t *testing.T) {
	in := fitIntegrator(t, reactions.DDpT)
	for _, temp := range []float64{5, 20} {
		_, total := in.MaxwellianDeriv(temp)
		_, dPerp, dPar := in.BiMaxwellianDeriv(temp, temp)
		if got := dPerp + dPar; !within(got, total, 1e-5) {
			t.Errorf("T = %v keV: ∂⊥+∂∥ = %.8e, d/dT = %.8e", temp, got, total)
		}
	}
}

func TestBiMaxwellianPartialsMatchFiniteDifference(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	const tPerp, tPar = 8, 14
	value, dPerp, dPar := in.BiMaxwellianDeriv(tPerp, tPar)
	if !within(value, in.BiMaxwellian(tPerp, tPar), 1e-7) {
		t.Fatal("BiMaxwellianDeriv value diverges from BiMaxwellian")
	}

	h := 1e-2
	fdPerp := (in.BiMaxwellian(tPerp+h, tPar) - in.BiMaxwellian(tPerp-h, tPar)) / (2 * h)
	if !within(dPerp, fdPerp, 1e-3) {
		t.Errorf("∂⟨σv⟩/∂T⊥ = %.6e, finite difference %.6e", dPerp, fdPerp)
	}
	fdPar := (in.BiMaxwellian(tPerp, tPar+h) - in.BiMaxwellian(tPerp, tPar-h)) / (2 * h)
	if !within(dPar, fdPar, 1e-3) {
		t.Errorf("∂⟨σv⟩/∂T∥ = %.6e, finite difference %.6e", dPar, fdPar)
	}
}

// Widening the integration window beyond the standard cutoff must not
// move the result: the tail allowance already covers the integrand.
func TestMaxwellianWindowInsensitive(t *testing.T) {
	cs, _ := bosch.CrossSectionFor(reactions.DT)
	core, err := reactions.New("D+T")
	if err != nil {
		t.Fatal(err)
	}
	in := ratecoeff.New(cs, core.ReducedMass(), core.GamowConstant())

	for _, temp := range []float64{2, 10, 100} {
		got := in.Maxwellian(temp)

		bg := core.GamowConstant()
		wide := 3*math.Cbrt(bg*bg/(4*temp)) + 60
		integral := quadrature.Adaptive(func(u float64) float64 {
			return u * math.Exp(-u) * cs.Evaluate(u*temp)
		}, 0, wide, quadrature.Tol{Rel: 1e-10})
		speed := 2 * math.Sqrt(2*species.KeVJoules/(math.Pi*core.ReducedMass()*species.AMUKilograms))
		want := speed * math.Sqrt(temp) * integral * 1e-25

		if !within(got, want, 1e-8) {
			t.Errorf("T = %v keV: standard window %.12e, widened %.12e", temp, got, want)
		}
	}
}

func TestIntegratorZeroAndNegativeTemperatures(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	for _, temp := range []float64{0, -5} {
		if got := in.Maxwellian(temp); got != 0 {
			t.Errorf("Maxwellian(%v) = %v, want 0", temp, got)
		}
		if v, d := in.MaxwellianDeriv(temp); v != 0 || d != 0 {
			t.Errorf("MaxwellianDeriv(%v) = %v, %v, want 0, 0", temp, v, d)
		}
	}
	if got := in.BiMaxwellian(0, 10); got != 0 {
		t.Errorf("BiMaxwellian(0, 10) = %v, want 0", got)
	}
	if got := in.BiMaxwellian(10, 0); got != 0 {
		t.Errorf("BiMaxwellian(10, 0) = %v, want 0", got)
	}
	if v, dPerp, dPar := in.BiMaxwellianDeriv(0, 0); v != 0 || dPerp != 0 || dPar != 0 {
		t.Errorf("BiMaxwellianDeriv(0, 0) = %v, %v, %v, want zeros", v, dPerp, dPar)
	}
}

func TestIntegratorNaNTemperature(t *testing.T) {
	in := fitIntegrator(t, reactions.DT)
	if got := in.Maxwellian(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Maxwellian(NaN) = %v, want NaN", got)
	}
}

// A tabulated model driven through the integrator has to reproduce
// the analytic chain.
func TestIntegratorWithTableModel(t *testing.T) {
	cs, _ := bosch.CrossSectionFor(reactions.DT)
	energies := floats.LogSpan(make([]float64, 250), 0.5, 4700)
	sigmas := make([]float64, len(energies))
	for i, e := range energies {
		sigmas[i] = cs.Evaluate(e)
	}
	table, err := xs.NewTable(energies, sigmas)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	core, err := reactions.New("T(d,n)⁴He")
	if err != nil {
		t.Fatal(err)
	}
	in := ratecoeff.New(table, core.ReducedMass(), core.GamowConstant())
	rc, _ := bosch.RateCoeffFor(reactions.DT)
	for _, temp := range []float64{5, 10, 50} {
		got := in.Maxwellian(temp)
		if want := rc.Value(temp); !within(got, want, 2e-2) {
			t.Errorf("tabulated ⟨σv⟩(%v keV) = %.4e, fit gives %.4e", temp, got, want)
		}
	}
}

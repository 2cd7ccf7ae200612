package fusionrate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/PrincetonUniversity/fusionrate"
)

func mustReaction(t *testing.T, name string, cfg fusionrate.Config) *fusionrate.Reaction {
	t.Helper()
	r, err := fusionrate.NewWithConfig(name, cfg)
	require.NoError(t, err)
	return r
}

func TestRateCoefficientLiteratureValue(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	rate := r.RateCoefficient(10)
	assert.InEpsilon(t, 1.136e-16, rate, 5e-3, "D+T ⟨σv⟩ at 10 keV")

	_, deriv := r.RateCoefficientDeriv(10)
	assert.Positive(t, deriv)
}

func TestRateCoefficientZeroTemperature(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	assert.Zero(t, r.RateCoefficient(0))

	value, deriv := r.RateCoefficientDeriv(0)
	assert.Zero(t, value)
	assert.Equal(t, math.SmallestNonzeroFloat64, deriv,
		"the zero-temperature derivative must be strictly positive")
}

func TestRateCoefficientInvalidInputs(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	for _, temp := range []float64{-1, -1e6, math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.True(t, math.IsNaN(r.RateCoefficient(temp)), "RateCoefficient(%v)", temp)
		value, deriv := r.RateCoefficientDeriv(temp)
		assert.True(t, math.IsNaN(value) && math.IsNaN(deriv), "RateCoefficientDeriv(%v)", temp)
	}
}

// A degenerate element must not poison its neighbors in a batch.
func TestRateCoefficientSliceShapeAndMasking(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	temps := []float64{10, -3, 0, math.Inf(1), 20, math.NaN()}
	values, derivs := r.RateCoefficientDerivs(temps)
	require.Len(t, values, len(temps))
	require.Len(t, derivs, len(temps))

	assert.Positive(t, values[0])
	assert.True(t, math.IsNaN(values[1]))
	assert.Zero(t, values[2])
	assert.Equal(t, math.SmallestNonzeroFloat64, derivs[2])
	assert.True(t, math.IsNaN(values[3]))
	assert.Positive(t, values[4])
	assert.True(t, math.IsNaN(values[5]))

	assert.Equal(t, r.RateCoefficient(10), values[0], "masking must not disturb valid elements")
	assert.Equal(t, r.RateCoefficient(20), values[4])
}

func TestRateCoefficientLogSweep(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	temps := floats.LogSpan(make([]float64, 50), 1e-2, 1e4)
	rates := r.RateCoefficients(temps)
	require.Len(t, rates, 50)

	for i, v := range rates {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "rate[%d] = %v", i, v)
		require.GreaterOrEqual(t, v, 0.0, "rate[%d]", i)
	}
	// The D+T rate rises monotonically until the Gamow competition
	// flattens it near 60 keV; index 30 is about 47 keV.
	for i := 1; i <= 30; i++ {
		require.Greater(t, rates[i], rates[i-1],
			"rate not increasing between %v and %v keV", temps[i-1], temps[i])
	}
}

func TestRateCoefficientDerivMatchesFiniteDifference(t *testing.T) {
	for _, scheme := range []fusionrate.Scheme{fusionrate.SchemeAnalytic, fusionrate.SchemeIntegration} {
		t.Run(string(scheme), func(t *testing.T) {
			r := mustReaction(t, "D+T", fusionrate.Config{Scheme: scheme})
			for _, temp := range []float64{2, 10, 40} {
				value, deriv := r.RateCoefficientDeriv(temp)
				assert.InEpsilon(t, r.RateCoefficient(temp), value, 1e-9)

				h := 1e-3 * temp
				fd := (r.RateCoefficient(temp+h) - r.RateCoefficient(temp-h)) / (2 * h)
				assert.InEpsilon(t, fd, deriv, 1e-4, "T = %v keV", temp)
			}
		})
	}
}

func TestBiMaxwellianMatchesMaxwellian(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{Scheme: fusionrate.SchemeIntegration})

	for _, temp := range []float64{2, 10, 50} {
		maxw := r.RateCoefficient(temp)
		bimax, err := r.RateCoefficientFor(fusionrate.BiMaxwellian(temp, temp))
		require.NoError(t, err)
		assert.InEpsilon(t, maxw, bimax, 1e-6, "T = %v keV", temp)
	}
}

func TestRateCoefficientForMaxwellian(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	got, err := r.RateCoefficientFor(fusionrate.Maxwellian(10))
	require.NoError(t, err)
	assert.Equal(t, r.RateCoefficient(10), got)

	value, derivs, err := r.RateCoefficientDerivFor(fusionrate.Maxwellian(10))
	require.NoError(t, err)
	require.Len(t, derivs, 1)
	wantValue, wantDeriv := r.RateCoefficientDeriv(10)
	assert.Equal(t, wantValue, value)
	assert.Equal(t, wantDeriv, derivs[0])
}

func TestBiMaxwellianDerivatives(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	const tPerp, tPar = 8.0, 14.0
	value, derivs, err := r.RateCoefficientDerivFor(fusionrate.BiMaxwellian(tPerp, tPar))
	require.NoError(t, err)
	require.Len(t, derivs, 2)
	assert.Positive(t, value)

	h := 1e-2
	up, err := r.RateCoefficientFor(fusionrate.BiMaxwellian(tPerp+h, tPar))
	require.NoError(t, err)
	down, err := r.RateCoefficientFor(fusionrate.BiMaxwellian(tPerp-h, tPar))
	require.NoError(t, err)
	assert.InEpsilon(t, (up-down)/(2*h), derivs[0], 1e-3, "∂/∂T⊥")

	up, err = r.RateCoefficientFor(fusionrate.BiMaxwellian(tPerp, tPar+h))
	require.NoError(t, err)
	down, err = r.RateCoefficientFor(fusionrate.BiMaxwellian(tPerp, tPar-h))
	require.NoError(t, err)
	assert.InEpsilon(t, (up-down)/(2*h), derivs[1], 1e-3, "∂/∂T∥")
}

func TestBiMaxwellianEdgeCases(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	// Any invalid component poisons the pair.
	for _, d := range []fusionrate.Distribution{
		fusionrate.BiMaxwellian(-1, 10),
		fusionrate.BiMaxwellian(10, math.Inf(1)),
		fusionrate.BiMaxwellian(math.NaN(), 0),
	} {
		value, err := r.RateCoefficientFor(d)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(value), "%v", d)

		value, derivs, err := r.RateCoefficientDerivFor(d)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(value), "%v", d)
		for _, dv := range derivs {
			assert.True(t, math.IsNaN(dv), "%v", d)
		}
	}

	// A zero component with a valid partner zeroes the value and
	// leaves strictly positive derivatives.
	for _, d := range []fusionrate.Distribution{
		fusionrate.BiMaxwellian(0, 10),
		fusionrate.BiMaxwellian(10, 0),
		fusionrate.BiMaxwellian(0, 0),
	} {
		value, derivs, err := r.RateCoefficientDerivFor(d)
		require.NoError(t, err)
		assert.Zero(t, value, "%v", d)
		for _, dv := range derivs {
			assert.Equal(t, math.SmallestNonzeroFloat64, dv, "%v", d)
		}
	}
}

func TestMalformedDistribution(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	var zero fusionrate.Distribution
	_, err := r.RateCoefficientFor(zero)
	require.ErrorIs(t, err, fusionrate.ErrMalformedDistribution)
	_, _, err = r.RateCoefficientDerivFor(zero)
	require.ErrorIs(t, err, fusionrate.ErrMalformedDistribution)
}

// The interpolation scheme has to track the analytic fit it was
// tabulated from, inside the table window, to interpolation accuracy.
func TestInterpolationTracksAnalytic(t *testing.T) {
	dir := t.TempDir()
	writeRateTable(t, dir)

	interp := mustReaction(t, "D+T", fusionrate.Config{TableDir: dir, Scheme: fusionrate.SchemeInterpolation})
	analytic := mustReaction(t, "D+T", fusionrate.Config{})

	for _, temp := range []float64{0.5, 3, 17, 80} {
		assert.InEpsilon(t, analytic.RateCoefficient(temp), interp.RateCoefficient(temp), 1e-3,
			"T = %v keV", temp)
	}
}

func TestRateOutOfRangeDiagnostics(t *testing.T) {
	r := mustReaction(t, "D+T", fusionrate.Config{})

	// The D+T analytic fit window is 0.2 to 100 keV: two elements
	// below, one above, three inside, and the degenerate elements
	// never count.
	temps := []float64{0.05, 0.1, 10, 50, 99, 150, 0, -4, math.NaN()}
	r.RateCoefficients(temps)
	assert.Equal(t, uint64(3), r.Diagnostics().RateOutOfRange)

	// Integration has no fitted window and never degrades.
	ri := mustReaction(t, "D+T", fusionrate.Config{Scheme: fusionrate.SchemeIntegration})
	ri.RateCoefficients(temps)
	assert.Zero(t, ri.Diagnostics().RateOutOfRange)
}

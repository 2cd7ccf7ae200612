// Package fusionrate computes fusion reaction cross sections and
// thermal rate coefficients, with exact first derivatives, for the
// fusion-power-relevant reactions: D+T, D+³He, both D+D branches, T+T,
// T+³He and p+¹¹B.
//
// Units are fixed: energies and temperatures in keV, cross sections in
// millibarns, rate coefficients in cm³/s and their temperature
// derivatives in cm³/s/keV.
//
// # Usage
//
//	r, err := fusionrate.New("D+T")
//	if err != nil {
//		// unknown reaction name
//	}
//	sigma := r.CrossSection(50)            // σ at 50 keV, millibarns
//	rate := r.RateCoefficient(10)          // Maxwellian ⟨σv⟩ at 10 keV, cm³/s
//	rate, dRate := r.RateCoefficientDeriv(10)
//
// Reaction names are forgiving: "D+T", "T(d,n)4He", "D-T" and "DT" all
// name the same reaction. Reactions lists the canonical set.
//
// # Numeric edge cases
//
// The evaluation methods never return errors. Degenerate numeric
// inputs resolve per element to documented sentinel values: negative,
// infinite or NaN energies and temperatures give NaN; exactly zero
// gives an exactly zero value whose derivative is the smallest
// positive float, the faithful representable stand-in for the
// one-sided limit, so gradient-based callers are never told that zero
// temperature is a stationary point. Inputs outside a model's fitted
// window extrapolate under a documented policy and are counted in
// Diagnostics. Only structural misuse (an unknown reaction name, a
// missing data table, a malformed distribution) surfaces as an error,
// at construction or call setup.
//
// # Data tables
//
// The four fitted reactions work out of the box. T+T, T+³He and p+¹¹B
// have no published parametrization of comparable quality, so their
// cross sections are served from stored tables: point Config.TableDir
// at a directory written by cmd/tablegen. The same store can hold
// precomputed Maxwellian rate-coefficient tables, which the
// Interpolation scheme serves in place of live integration.
//
// All types are immutable after construction and safe for concurrent
// use.
package fusionrate

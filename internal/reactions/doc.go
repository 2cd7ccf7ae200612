// Package reactions defines the canonical fusion reactions, resolves the many
// accepted spellings of their names, and derives per-reaction kinematic
// constants (reduced mass, Gamow constant, Q-value, frame conversion).
//
// # Canonical names
//
// A reaction is written target(beam,ejectile)residual, for example
// "T(d,n)⁴He". The resolver also accepts compact forms ("DT", "D3He"),
// reactant pairs ("D+T", "²H+³He"), and full equations with an arrow
// ("D+D→p+T", "T + T -> a + 2n"). ASCII digits may replace superscripts and
// "a" may replace "α". A token that names a species outright ("3He") is never
// read as a multiplicity; "2n" and "3α" are.
//
// Resolution failures are reported with reactions.ErrUnknown so callers can
// distinguish configuration mistakes from numeric edge cases.
package reactions

// Package bosch evaluates the Bosch-Hale parametrizations of fusion
// cross sections and Maxwellian rate coefficients.
//
// The fits cover the four best-measured reactions: D+T, D+³He and the
// two D+D branches. Cross sections take center-of-mass energies in keV
// and return millibarns; rate coefficients take temperatures in keV and
// return cm³/s. Outside a fit's energy window the astrophysical
// S-function is held at its boundary value, so the returned cross
// section stays finite and continuous while the Gamow tunneling factor
// keeps its exact form.
//
// Reference: Bosch, H.-S.; Hale, G. M. Improved Formulas for Fusion
// Cross-Sections and Thermal Reactivities. Nuclear Fusion 1992, 32 (4).
package bosch

// Package diag counts and reports degraded-accuracy evaluations.
//
// A cross section or rate coefficient requested outside its model's
// fitted window still returns a finite value under the documented
// extrapolation policy, but the result is only as good as that policy.
// Diag counts every such evaluation and logs it at debug level, so
// callers can audit whether their inputs stayed on trusted ground.
package diag

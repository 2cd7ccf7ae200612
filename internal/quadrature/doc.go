// Package quadrature provides adaptive Gauss-Legendre integration in
// one and two dimensions.
//
// Integrals are built from fixed 15-point Legendre panels that are
// bisected until the panel estimate stabilizes to the requested
// tolerance. The integrands this package is written for, thermally
// weighted cross sections, are smooth and rapidly decaying, so a
// handful of bisection levels usually suffices.
package quadrature

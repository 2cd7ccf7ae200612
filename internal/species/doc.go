// Package species holds the static table of nuclear species used as fusion
// fuel and products: bare-nucleus masses, charge numbers, and the symbol
// synonyms accepted by the reaction name resolver.
//
// The table is fixed at compile time and never mutated, so lookups are safe
// from any goroutine.
package species

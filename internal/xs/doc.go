// Package xs defines the cross-section model interface shared by the
// analytic fits and tabulated data, and a log-log interpolating model
// for tables.
package xs

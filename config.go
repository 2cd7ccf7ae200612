package fusionrate

import (
	"fmt"

	"go.uber.org/zap"
)

// Scheme picks how Maxwellian rate coefficients are evaluated.
type Scheme string

const (
	// SchemeAuto picks the best available method: the analytic fit
	// where one is published, else a stored rate table, else live
	// integration.
	SchemeAuto Scheme = "auto"

	// SchemeAnalytic evaluates the published parametric
	// rate-coefficient fit. Only the four fitted reactions have one.
	SchemeAnalytic Scheme = "analytic"

	// SchemeIntegration integrates the cross section against the
	// distribution by adaptive quadrature. Always available.
	SchemeIntegration Scheme = "integration"

	// SchemeInterpolation interpolates a precomputed rate table from
	// the configured table directory.
	SchemeInterpolation Scheme = "interpolation"
)

// ParseScheme resolves a scheme name, case-sensitively.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeAuto, SchemeAnalytic, SchemeIntegration, SchemeInterpolation:
		return Scheme(s), nil
	case "":
		return SchemeAuto, nil
	default:
		return "", fmt.Errorf("fusionrate: unknown scheme %q; schemes are %s, %s, %s, %s",
			s, SchemeAuto, SchemeAnalytic, SchemeIntegration, SchemeInterpolation)
	}
}

// Config carries the optional wiring for a Reaction. The zero value is
// ready to use: automatic scheme choice, no table directory, no
// logging.
type Config struct {
	// TableDir is a directory of stored data tables written by
	// cmd/tablegen. Empty disables the Interpolation scheme and makes
	// reactions without a parametric cross section unconstructable.
	TableDir string

	// Scheme picks the Maxwellian rate-coefficient method. The zero
	// value means SchemeAuto. Bi-Maxwellian averages always integrate
	// regardless of this setting, since no fits or tables exist for
	// them.
	Scheme Scheme

	// Logger receives degraded-accuracy diagnostics at debug level.
	// Nil disables logging; the counters still run.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

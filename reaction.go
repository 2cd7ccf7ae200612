package fusionrate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/PrincetonUniversity/fusionrate/internal/bosch"
	"github.com/PrincetonUniversity/fusionrate/internal/diag"
	"github.com/PrincetonUniversity/fusionrate/internal/ratecoeff"
	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
	"github.com/PrincetonUniversity/fusionrate/internal/species"
	"github.com/PrincetonUniversity/fusionrate/internal/tablestore"
	"github.com/PrincetonUniversity/fusionrate/internal/xs"
)

var (
	// ErrUnknownReaction reports a reaction name that could not be
	// resolved to the canonical set.
	ErrUnknownReaction = reactions.ErrUnknown

	// ErrNoTable reports a required stored data table that the
	// configured table directory does not hold (or no directory was
	// configured at all).
	ErrNoTable = errors.New("no stored table")

	// ErrNoFit reports a request for the analytic rate-coefficient
	// scheme on a reaction without a published fit.
	ErrNoFit = errors.New("no analytic rate-coefficient fit")

	// ErrMalformedDistribution reports a Distribution that was not
	// built with Maxwellian or BiMaxwellian.
	ErrMalformedDistribution = errors.New("malformed distribution")
)

// Particle identifies one reactant species.
type Particle struct {
	Symbol string  // canonical symbol, e.g. "D" or "³He"
	Mass   float64 // bare-nucleus mass in amu
	Charge int     // proton number Z
}

func publicParticle(p species.Particle) Particle {
	return Particle{Symbol: p.Symbol, Mass: p.Mass, Charge: p.Charge}
}

// Reaction evaluates cross sections and rate coefficients for one
// fusion reaction. It is immutable after construction; all methods are
// safe for concurrent use.
//
// The evaluation methods apply the numeric edge-case policy documented
// on the package: they are total over float64 and signal degenerate
// inputs through NaN sentinels, never through errors.
type Reaction struct {
	core   reactions.Core
	scheme Scheme
	diag   *diag.Diag

	sigma xs.Model
	integ *ratecoeff.Integrator

	analytic    bosch.RateCoeff
	hasAnalytic bool
	interp      *ratecoeff.InterpolatedRate
}

// New builds a Reaction from any accepted spelling of its name with
// the zero Config. Unknown names fail here with ErrUnknownReaction.
func New(name string) (*Reaction, error) {
	return NewWithConfig(name, Config{})
}

// NewWithConfig builds a Reaction with explicit wiring. It fails when
// the name is unknown, when required table data is missing, or when
// cfg requests a scheme the reaction cannot serve.
func NewWithConfig(name string, cfg Config) (*Reaction, error) {
	core, err := reactions.New(name)
	if err != nil {
		return nil, err
	}

	var store *tablestore.FileStore
	if cfg.TableDir != "" {
		store = tablestore.NewFileStore(cfg.TableDir)
	}

	sigma, err := crossSectionModel(core, store)
	if err != nil {
		return nil, err
	}

	r := &Reaction{
		core:  core,
		diag:  diag.New(cfg.logger(), string(core.Name())),
		sigma: sigma,
		integ: ratecoeff.New(sigma, core.ReducedMass(), core.GamowConstant()),
	}
	r.analytic, r.hasAnalytic = bosch.RateCoeffFor(core.Name())

	if store != nil {
		tbl, ok, err := store.Load(string(core.Name()), tablestore.KindRateMaxwellian)
		if err != nil {
			return nil, fmt.Errorf("fusionrate: %s: %w", core.Name(), err)
		}
		if ok {
			r.interp, err = ratecoeff.NewInterpolatedRate(tbl.X, tbl.Y)
			if err != nil {
				return nil, fmt.Errorf("fusionrate: %s rate table: %w", core.Name(), err)
			}
		}
	}

	if r.scheme, err = r.resolveScheme(cfg.Scheme); err != nil {
		return nil, err
	}
	return r, nil
}

// crossSectionModel picks the parametric fit when one is published,
// else a stored table.
func crossSectionModel(core reactions.Core, store *tablestore.FileStore) (xs.Model, error) {
	if cs, ok := bosch.CrossSectionFor(core.Name()); ok {
		return cs, nil
	}
	if store == nil {
		return nil, fmt.Errorf(
			"fusionrate: %s has no parametric cross section and no table directory is configured: %w",
			core.Name(), ErrNoTable)
	}
	tbl, ok, err := store.Load(string(core.Name()), tablestore.KindCrossSection)
	if err != nil {
		return nil, fmt.Errorf("fusionrate: %s: %w", core.Name(), err)
	}
	if !ok {
		return nil, fmt.Errorf("fusionrate: %s cross section not in %s: %w",
			core.Name(), store.Dir(), ErrNoTable)
	}
	energies := tbl.X
	if tbl.Frame == tablestore.FrameBeam {
		energies = floats.ScaleTo(make([]float64, len(tbl.X)), core.BeamToCOM(), tbl.X)
	}
	m, err := xs.NewTable(energies, tbl.Y)
	if err != nil {
		return nil, fmt.Errorf("fusionrate: %s cross-section table: %w", core.Name(), err)
	}
	return m, nil
}

func (r *Reaction) resolveScheme(req Scheme) (Scheme, error) {
	switch req {
	case SchemeAuto, "":
		switch {
		case r.hasAnalytic:
			return SchemeAnalytic, nil
		case r.interp != nil:
			return SchemeInterpolation, nil
		default:
			return SchemeIntegration, nil
		}
	case SchemeAnalytic:
		if !r.hasAnalytic {
			return "", fmt.Errorf("fusionrate: %s: %w", r.core.Name(), ErrNoFit)
		}
		return SchemeAnalytic, nil
	case SchemeIntegration:
		return SchemeIntegration, nil
	case SchemeInterpolation:
		if r.interp == nil {
			return "", fmt.Errorf("fusionrate: %s Maxwellian rate table: %w", r.core.Name(), ErrNoTable)
		}
		return SchemeInterpolation, nil
	default:
		_, err := ParseScheme(string(req))
		return "", err
	}
}

// Reactions lists the canonical reaction names in a stable order.
func Reactions() []string {
	names := reactions.All()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// Name returns the canonical reaction name, e.g. "T(d,n)⁴He".
func (r *Reaction) Name() string { return string(r.core.Name()) }

// Beam returns the beam-side reactant.
func (r *Reaction) Beam() Particle { return publicParticle(r.core.Beam()) }

// Target returns the target-side reactant.
func (r *Reaction) Target() Particle { return publicParticle(r.core.Target()) }

// ReducedMass is the two-body reduced mass in amu.
func (r *Reaction) ReducedMass() float64 { return r.core.ReducedMass() }

// QValue is the reaction energy release in keV.
func (r *Reaction) QValue() float64 { return r.core.QValue() }

// GamowConstant is B_G in √keV; exp(−B_G/√E) is the low-energy
// tunneling factor.
func (r *Reaction) GamowConstant() float64 { return r.core.GamowConstant() }

// Scheme returns the resolved Maxwellian rate-coefficient scheme.
func (r *Reaction) Scheme() Scheme { return r.scheme }

// Diagnostics is a snapshot of the degraded-accuracy counters.
type Diagnostics struct {
	// CrossSectionOutOfRange counts cross-section evaluations outside
	// the model's fitted or tabulated energy window.
	CrossSectionOutOfRange uint64
	// RateOutOfRange counts analytic or interpolated rate-coefficient
	// evaluations outside their fitted or tabulated temperature
	// window.
	RateOutOfRange uint64
}

// Diagnostics returns the current degraded-accuracy counters.
func (r *Reaction) Diagnostics() Diagnostics {
	s := r.diag.Snapshot()
	return Diagnostics{
		CrossSectionOutOfRange: s.CrossSectionOutOfRange,
		RateOutOfRange:         s.RateOutOfRange,
	}
}

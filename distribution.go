package fusionrate

import "fmt"

type distributionKind int

const (
	distMaxwellian distributionKind = iota + 1
	distBiMaxwellian
)

// Distribution describes the velocity distribution the reactant pair
// shares: an isotropic Maxwellian at one temperature, or a
// bi-Maxwellian with separate temperatures perpendicular and parallel
// to the field. It is a closed tagged choice; build one with
// Maxwellian or BiMaxwellian. The zero value is malformed and rejected
// by the evaluation methods.
type Distribution struct {
	kind distributionKind
	// temperatures in keV; Maxwellian uses perp only.
	perp, par float64
}

// Maxwellian is an isotropic thermal distribution at temperature t in
// keV.
func Maxwellian(t float64) Distribution {
	return Distribution{kind: distMaxwellian, perp: t, par: t}
}

// BiMaxwellian is an anisotropic thermal distribution with
// perpendicular temperature tPerp and parallel temperature tPar, both
// in keV. BiMaxwellian(t, t) is equivalent to Maxwellian(t) up to
// quadrature tolerance.
func BiMaxwellian(tPerp, tPar float64) Distribution {
	return Distribution{kind: distBiMaxwellian, perp: tPerp, par: tPar}
}

func (d Distribution) String() string {
	switch d.kind {
	case distMaxwellian:
		return fmt.Sprintf("Maxwellian(%g keV)", d.perp)
	case distBiMaxwellian:
		return fmt.Sprintf("BiMaxwellian(⊥%g ∥%g keV)", d.perp, d.par)
	default:
		return "Distribution(malformed)"
	}
}

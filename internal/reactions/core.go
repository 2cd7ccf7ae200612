package reactions

import (
	"math"

	"github.com/PrincetonUniversity/fusionrate/internal/species"
)

// Core is the immutable kinematic description of one reaction. All derived
// constants are fixed at construction.
type Core struct {
	name   Name
	beam   species.Particle
	target species.Particle
}

// New resolves raw into a canonical reaction and builds its Core.
func New(raw string) (Core, error) {
	n, err := Resolve(raw)
	if err != nil {
		return Core{}, err
	}
	d := defs[n]
	return Core{name: n, beam: d.beam, target: d.target}, nil
}

func (c Core) Name() Name { return c.name }

func (c Core) Beam() species.Particle { return c.beam }

func (c Core) Target() species.Particle { return c.target }

// Products returns the product multiset, copied.
func (c Core) Products() []Product {
	src := defs[c.name].products
	out := make([]Product, len(src))
	copy(out, src)
	return out
}

// ReducedMass is the two-body reduced mass in amu.
func (c Core) ReducedMass() float64 {
	ma, mb := c.beam.Mass, c.target.Mass
	return ma * mb / (ma + mb)
}

// ReducedMassEnergy is the reduced mass in keV (mᵣc²).
func (c Core) ReducedMassEnergy() float64 {
	return c.ReducedMass() * species.AMUKeV
}

// GamowConstant is B_G = πα·Z₁Z₂·√(2·mᵣc²) in √keV. The penetrability
// exp(−B_G/√E) governs the low-energy cross section.
func (c Core) GamowConstant() float64 {
	z := float64(c.beam.Charge * c.target.Charge)
	return math.Pi * species.FineStructure * z * math.Sqrt(2*c.ReducedMassEnergy())
}

// QValue is the reaction energy release from the mass defect, in keV.
func (c Core) QValue() float64 {
	m := c.beam.Mass + c.target.Mass
	for _, p := range defs[c.name].products {
		m -= float64(p.Count) * p.Particle.Mass
	}
	return m * species.AMUKeV
}

// BeamToCOM converts a beam-frame (stationary target) energy to the
// center-of-mass frame: E_com = E_beam · m_target/(m_beam + m_target).
func (c Core) BeamToCOM() float64 {
	return c.target.Mass / (c.beam.Mass + c.target.Mass)
}

package species

import (
	"fmt"
	"sort"
	"strings"
)

// Particle is one nuclear species. Mass is the bare-nucleus mass in atomic
// mass units; Charge is the proton number Z.
type Particle struct {
	Symbol string
	Mass   float64
	Charge int
}

// Bare-nucleus masses from CODATA 2018; ¹¹B from AME2020 atomic mass minus
// five electron masses.
var (
	Neutron  = Particle{Symbol: "n", Mass: 1.00866491595, Charge: 0}
	Proton   = Particle{Symbol: "p", Mass: 1.007276466621, Charge: 1}
	Deuteron = Particle{Symbol: "D", Mass: 2.013553212745, Charge: 1}
	Triton   = Particle{Symbol: "T", Mass: 3.01550071621, Charge: 1}
	Helion   = Particle{Symbol: "³He", Mass: 3.014932247175, Charge: 2}
	Alpha    = Particle{Symbol: "⁴He", Mass: 4.001506179127, Charge: 2}
	Boron11  = Particle{Symbol: "¹¹B", Mass: 11.00656227, Charge: 5}
)

// synonyms maps every accepted spelling to its particle. "3He" is accepted
// even though a bare multiplicity prefix could also read as "3 × He": the
// resolver always tries the whole token as a species first.
var synonyms = map[string]Particle{
	"n":   Neutron,
	"n-1": Neutron,

	"p":   Proton,
	"H":   Proton,
	"¹H":  Proton,
	"1H":  Proton,
	"H-1": Proton,

	"D":   Deuteron,
	"d":   Deuteron,
	"²H":  Deuteron,
	"2H":  Deuteron,
	"H-2": Deuteron,

	"T":   Triton,
	"t":   Triton,
	"³H":  Triton,
	"3H":  Triton,
	"H-3": Triton,

	"h":    Helion,
	"³He":  Helion,
	"3He":  Helion,
	"He-3": Helion,

	"a":    Alpha,
	"α":    Alpha,
	"⁴He":  Alpha,
	"4He":  Alpha,
	"He-4": Alpha,

	"B":    Boron11,
	"¹¹B":  Boron11,
	"11B":  Boron11,
	"B-11": Boron11,
}

// Lookup resolves a species symbol or any of its synonyms.
func Lookup(symbol string) (Particle, error) {
	p, ok := synonyms[strings.TrimSpace(symbol)]
	if !ok {
		return Particle{}, fmt.Errorf("unknown species %q; valid symbols are %s",
			symbol, strings.Join(Symbols(), ", "))
	}
	return p, nil
}

// Symbols returns the accepted spellings, sorted, for error messages.
func Symbols() []string {
	out := make([]string, 0, len(synonyms))
	for s := range synonyms {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

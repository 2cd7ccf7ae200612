package reactions

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PrincetonUniversity/fusionrate/internal/species"
)

// Name is a canonical reaction name in target(beam,ejectile)residual form.
type Name string

const (
	DT     Name = "T(d,n)⁴He"
	DHe3   Name = "³He(d,p)⁴He"
	DDpT   Name = "D(d,p)T"
	DDnHe3 Name = "D(d,n)³He"
	TT     Name = "T(t,2n)⁴He"
	THe3   Name = "³He(t,pn)⁴He"
	PB11   Name = "¹¹B(p,α)2⁴He"
)

// ErrUnknown reports a reaction name that could not be resolved. It is a
// configuration error, not a numeric edge case.
var ErrUnknown = errors.New("unknown reaction")

// Product is one reaction product with its multiplicity.
type Product struct {
	Particle species.Particle
	Count    int
}

type def struct {
	beam, target species.Particle
	products     []Product
}

// defs is the full reaction catalogue. Order of All() follows allNames.
var defs = map[Name]def{
	DT: {
		beam: species.Deuteron, target: species.Triton,
		products: []Product{{species.Neutron, 1}, {species.Alpha, 1}},
	},
	DHe3: {
		beam: species.Deuteron, target: species.Helion,
		products: []Product{{species.Proton, 1}, {species.Alpha, 1}},
	},
	DDpT: {
		beam: species.Deuteron, target: species.Deuteron,
		products: []Product{{species.Proton, 1}, {species.Triton, 1}},
	},
	DDnHe3: {
		beam: species.Deuteron, target: species.Deuteron,
		products: []Product{{species.Neutron, 1}, {species.Helion, 1}},
	},
	TT: {
		beam: species.Triton, target: species.Triton,
		products: []Product{{species.Neutron, 2}, {species.Alpha, 1}},
	},
	THe3: {
		beam: species.Triton, target: species.Helion,
		products: []Product{{species.Proton, 1}, {species.Neutron, 1}, {species.Alpha, 1}},
	},
	PB11: {
		beam: species.Proton, target: species.Boron11,
		products: []Product{{species.Alpha, 3}},
	},
}

var allNames = []Name{DT, DHe3, DDpT, DDnHe3, TT, THe3, PB11}

// All lists the canonical reactions in a stable order.
func All() []Name {
	out := make([]Name, len(allNames))
	copy(out, allNames)
	return out
}

// aliases maps simplified compact spellings that the structural parser cannot
// split. Keys must already be in simplified form.
var aliases = map[string]Name{
	"DT":   DT,
	"TT":   TT,
	"DHe":  DHe3,
	"DHe3": DHe3,
	"D3He": DHe3,
	"pB":   PB11,
	"pB11": PB11,
}

var (
	// lookup maps for the structural parser, built in init.
	byReactants    = map[string]Name{} // unique reactant bags only
	byFullEquation = map[string]Name{}
)

func init() {
	reactantCount := map[string]int{}
	for _, n := range allNames {
		reactantCount[bagKey(reactantList(defs[n]))]++
	}
	for _, n := range allNames {
		d := defs[n]
		aliases[simplify(string(n))] = n
		rk := bagKey(reactantList(d))
		// D+D has two branches; the bare pair stays unresolvable.
		if reactantCount[rk] == 1 {
			byReactants[rk] = n
		}
		byFullEquation[rk+"|"+bagKey(productList(d))] = n
	}
}

func reactantList(d def) []species.Particle {
	return []species.Particle{d.beam, d.target}
}

func productList(d def) []species.Particle {
	var out []species.Particle
	for _, p := range d.products {
		for i := 0; i < p.Count; i++ {
			out = append(out, p.Particle)
		}
	}
	return out
}

// bagKey builds an order-independent key for a multiset of particles.
func bagKey(ps []species.Particle) string {
	counts := map[string]int{}
	for _, p := range ps {
		counts[p.Symbol]++
	}
	keys := make([]string, 0, len(counts))
	for s, n := range counts {
		keys = append(keys, fmt.Sprintf("%s:%d", s, n))
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

var superscripts = strings.NewReplacer("¹", "1", "²", "2", "³", "3", "⁴", "4")

// simplify maps special characters to a standard form for alias matching.
// The arrow substitution must run before hyphens become pluses.
func simplify(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = superscripts.Replace(s)
	s = strings.ReplaceAll(s, "->", "→")
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "α", "a")
	return s
}

// Resolve turns any accepted spelling into a canonical reaction name.
func Resolve(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if _, ok := defs[Name(s)]; ok {
		return Name(s), nil
	}
	if n, ok := aliases[simplify(s)]; ok {
		return n, nil
	}
	if n, ok := parseEquation(s); ok {
		return n, nil
	}
	// Hyphenated pairs like "D-T" only survive simplification.
	if n, ok := parseEquation(simplify(s)); ok {
		return n, nil
	}
	return "", fmt.Errorf("%w %q; canonical names are %v", ErrUnknown, raw, allNames)
}

var (
	arrowRE = regexp.MustCompile(`-+>`)
	multRE  = regexp.MustCompile(`^([23])\s*(.+)$`)
)

// parseEquation resolves "D+T", "D+D→p+T", "t(d,n)a" style strings by
// matching reactant and product multisets against the catalogue.
func parseEquation(s string) (Name, bool) {
	norm := arrowRE.ReplaceAllString(s, "→")
	norm = strings.ReplaceAll(norm, ",", "→")
	parts := strings.Split(norm, "→")

	switch len(parts) {
	case 1:
		reactants, err := expandSide(parts[0])
		if err != nil || len(reactants) != 2 {
			return "", false
		}
		n, ok := byReactants[bagKey(reactants)]
		return n, ok
	case 2:
		reactants, err := expandSide(parts[0])
		if err != nil || len(reactants) != 2 {
			return "", false
		}
		products, err := expandSide(parts[1])
		if err != nil || len(products) < 2 || len(products) > 3 {
			return "", false
		}
		n, ok := byFullEquation[bagKey(reactants)+"|"+bagKey(products)]
		return n, ok
	default:
		return "", false
	}
}

// expandSide splits one side of an equation into particles, expanding
// multiplicities ("2n", "3α") and fused ejectiles ("pn").
func expandSide(s string) ([]species.Particle, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == '(' || r == ')' || r == '+'
	})
	var out []species.Particle
	for _, tok := range tokens {
		ps, err := expandToken(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	return out, nil
}

func expandToken(tok string) ([]species.Particle, error) {
	if tok == "" {
		return nil, nil
	}
	// Whole-token species match wins over a multiplicity reading, so "3He"
	// is always the helion and never three heliums.
	if p, err := species.Lookup(tok); err == nil {
		return []species.Particle{p}, nil
	}
	if m := multRE.FindStringSubmatch(tok); m != nil {
		if p, err := species.Lookup(m[2]); err == nil {
			n := int(m[1][0] - '0')
			out := make([]species.Particle, n)
			for i := range out {
				out[i] = p
			}
			return out, nil
		}
	}
	if tok == "pn" || tok == "np" {
		return []species.Particle{species.Proton, species.Neutron}, nil
	}
	return nil, fmt.Errorf("unknown species %q", tok)
}

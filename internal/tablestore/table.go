package tablestore

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Kind labels what a stored table tabulates.
type Kind string

const (
	// KindCrossSection tables hold σ(E): X in keV, Y in millibarns.
	KindCrossSection Kind = "cross-section"
	// KindRateMaxwellian tables hold Maxwellian ⟨σv⟩(T): X in keV,
	// Y in cm³/s.
	KindRateMaxwellian Kind = "rate-maxwellian"
)

// Frame labels the energy frame of a cross-section table.
type Frame string

const (
	// FrameCOM energies are center-of-mass energies.
	FrameCOM Frame = "com"
	// FrameBeam energies are beam energies against a stationary
	// target, to be scaled by the mass ratio on use.
	FrameBeam Frame = "beam"
)

// Table is one stored data table for a reaction.
type Table struct {
	Reaction string    `json:"reaction"`        // canonical reaction name
	Kind     Kind      `json:"kind"`
	Frame    Frame     `json:"frame,omitempty"` // cross sections only
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

func (t Table) validate() error {
	if t.Reaction == "" {
		return fmt.Errorf("tablestore: table has no reaction name")
	}
	switch t.Kind {
	case KindCrossSection, KindRateMaxwellian:
	default:
		return fmt.Errorf("tablestore: unknown table kind %q", t.Kind)
	}
	if len(t.X) == 0 || len(t.X) != len(t.Y) {
		return fmt.Errorf("tablestore: %d x values against %d y values", len(t.X), len(t.Y))
	}
	return nil
}

// fileName derives a stable file name from a reaction name and kind.
// Sanitizing keeps whatever letters and digits survive; a short hash
// of the full name keeps unicode-heavy names collision-free.
func fileName(reaction string, kind Kind) string {
	return fmt.Sprintf("%s-%s.%s.json", sanitize(reaction), shortHash(reaction), kind)
}

func sanitize(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// shortHash returns a short hex tag of a name.
//
// It hashes with BLAKE2b-256 and truncates to 5 bytes (10 hex chars).
func shortHash(name string) string {
	sum := blake2b.Sum256([]byte(name))
	return fmt.Sprintf("%x", sum[:5])
}

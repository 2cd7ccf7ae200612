package commands

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// parseGrid turns "lo:hi:n" into n log-spaced points over [lo, hi], or
// a comma list into explicit values. Values are keV and must be
// positive; degenerate inputs are for library callers, not the CLI.
func parseGrid(s string) ([]float64, error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("grid %q: want lo:hi:n", s)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("grid %q: %w", s, err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("grid %q: %w", s, err)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("grid %q: %w", s, err)
		}
		if lo <= 0 || hi <= lo {
			return nil, fmt.Errorf("grid %q: want 0 < lo < hi", s)
		}
		if n < 2 {
			return nil, fmt.Errorf("grid %q: want at least 2 points", s)
		}
		return floats.LogSpan(make([]float64, n), lo, hi), nil
	}

	toks := strings.Split(s, ",")
	out := make([]float64, 0, len(toks))
	for _, tok := range toks {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, fmt.Errorf("grid %q: %w", s, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("grid %q: want positive values", s)
		}
		out = append(out, v)
	}
	return out, nil
}

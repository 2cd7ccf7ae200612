package diag

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Diag accumulates evaluation diagnostics for one reaction. All methods
// are safe for concurrent use; counters are atomic and the logger is
// zap's own concurrency-safe structured logger.
type Diag struct {
	logger   *zap.Logger
	reaction string

	xsOutOfRange   atomic.Uint64
	rateOutOfRange atomic.Uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// CrossSectionOutOfRange counts cross-section evaluations outside
	// the model's fitted or tabulated energy window.
	CrossSectionOutOfRange uint64

	// RateOutOfRange counts rate-coefficient evaluations outside the
	// fit or table temperature window. Integration-scheme evaluations
	// have no window and never count here.
	RateOutOfRange uint64
}

// New builds a Diag for a reaction. A nil logger disables logging but
// keeps the counters.
func New(logger *zap.Logger, reaction string) *Diag {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Diag{logger: logger, reaction: reaction}
}

// CrossSectionOutOfRange records a cross-section evaluation at energy e
// outside the window [lo, hi].
func (d *Diag) CrossSectionOutOfRange(e, lo, hi float64) {
	d.xsOutOfRange.Add(1)
	d.logger.Debug("cross section evaluated outside fitted window",
		zap.String("reaction", d.reaction),
		zap.Float64("energy_kev", e),
		zap.Float64("window_lo_kev", lo),
		zap.Float64("window_hi_kev", hi),
	)
}

// RateOutOfRange records a rate-coefficient evaluation at temperature t
// outside the window [lo, hi].
func (d *Diag) RateOutOfRange(t, lo, hi float64) {
	d.rateOutOfRange.Add(1)
	d.logger.Debug("rate coefficient evaluated outside fitted window",
		zap.String("reaction", d.reaction),
		zap.Float64("temperature_kev", t),
		zap.Float64("window_lo_kev", lo),
		zap.Float64("window_hi_kev", hi),
	)
}

// Snapshot returns the current counter values.
func (d *Diag) Snapshot() Snapshot {
	return Snapshot{
		CrossSectionOutOfRange: d.xsOutOfRange.Load(),
		RateOutOfRange:         d.rateOutOfRange.Load(),
	}
}

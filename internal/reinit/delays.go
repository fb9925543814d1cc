package reinit

import "time"

// Delays are the settle intervals between configuration steps. They are
// timing heuristics tied to hardware signal renegotiation, kept as named
// overridable values so tests can substitute near-zero durations.
type Delays struct {
	// DDCSettle is the pause between the DDC power-off and power-on steps.
	DDCSettle time.Duration

	// RefreshSettle is how long the alternate refresh rate is held before
	// the original mode is restored.
	RefreshSettle time.Duration

	// ResolutionSettle is how long the alternate resolution is held before
	// the original mode is restored.
	ResolutionSettle time.Duration
}

// DefaultDelays returns the settle intervals used against real hardware.
func DefaultDelays() Delays {
	return Delays{
		DDCSettle:        1 * time.Second,
		RefreshSettle:    300 * time.Millisecond,
		ResolutionSettle: 500 * time.Millisecond,
	}
}

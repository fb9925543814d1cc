package reinit

import "github.com/JosNun/displayreset/internal/display"

// Auto tries the strategies least-disruptive-first, short-circuiting on the
// first success: DDC power-cycle for external displays, refresh-rate toggle
// when sibling rates exist, resolution cycle when any alternate mode exists,
// and soft reset as the always-reachable last resort. Each skipped or failed
// step logs why the next one is being tried; the last strategy's result is
// the final result.
func (e *Engine) Auto(rec display.Record) bool {
	if rec.IsBuiltIn {
		e.log.Debug("auto: %s is built-in, skipping DDC power-cycle", rec.Name)
	} else {
		if e.PowerCycle(rec) {
			return true
		}
		e.log.Warn("auto: DDC power-cycle failed, trying refresh-rate toggle")
	}

	if !display.HasMultipleRefreshRates(rec) {
		e.log.Debug("auto: %s has no sibling refresh rate, skipping refresh-rate toggle", rec.Name)
	} else {
		if e.ToggleRefreshRate(rec) {
			return true
		}
		e.log.Warn("auto: refresh-rate toggle failed, trying resolution cycle")
	}

	if len(rec.SupportedModes) <= 1 {
		e.log.Debug("auto: %s has a single supported mode, skipping resolution cycle", rec.Name)
	} else {
		if e.CycleResolution(rec) {
			return true
		}
		e.log.Warn("auto: resolution cycle failed, falling back to soft reset")
	}

	return e.SoftReset(rec)
}

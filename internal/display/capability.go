package display

// Capability classification is pure: it reads a Record's mode list and
// current mode and performs no I/O, so it can be unit-tested without
// hardware.

// HasMultipleRefreshRates reports whether any supported mode shares the
// current mode's resolution while differing in refresh rate by more than
// the epsilon threshold.
func HasMultipleRefreshRates(rec Record) bool {
	if rec.CurrentMode.IsZero() {
		return false
	}
	for _, m := range rec.SupportedModes {
		if m.SameResolution(rec.CurrentMode) && m.RefreshDiffers(rec.CurrentMode) {
			return true
		}
	}
	return false
}

// AlternateRefreshMode returns a supported mode with the same resolution as
// current but a different refresh rate, or false if none exists. The first
// match in inventory order wins.
func AlternateRefreshMode(rec Record) (Mode, bool) {
	if rec.CurrentMode.IsZero() {
		return Mode{}, false
	}
	for _, m := range rec.SupportedModes {
		if m.SameResolution(rec.CurrentMode) && m.RefreshDiffers(rec.CurrentMode) {
			return m, true
		}
	}
	return Mode{}, false
}

// AlternateMode returns any supported mode that differs from current in
// resolution or refresh rate, or false if none exists. The first match in
// inventory order wins.
func AlternateMode(rec Record) (Mode, bool) {
	if rec.CurrentMode.IsZero() {
		return Mode{}, false
	}
	for _, m := range rec.SupportedModes {
		if !m.SameResolution(rec.CurrentMode) || m.RefreshDiffers(rec.CurrentMode) {
			return m, true
		}
	}
	return Mode{}, false
}

// AvailableMethods returns the reinitialization methods applicable to the
// display, in the auto-selector's priority order. Soft and auto are always
// available.
func AvailableMethods(rec Record) []Method {
	methods := []Method{MethodAuto}
	if !rec.IsBuiltIn {
		methods = append(methods, MethodDDC)
	}
	if HasMultipleRefreshRates(rec) {
		methods = append(methods, MethodRefresh)
	}
	if len(rec.SupportedModes) > 1 {
		methods = append(methods, MethodResolution)
	}
	return append(methods, MethodSoft)
}

// RecommendedMethod picks the least-disruptive applicable method: DDC for
// external displays, refresh toggle when sibling rates exist, resolution
// cycle when any alternate mode exists, soft reset otherwise. The result is
// always a member of AvailableMethods.
func RecommendedMethod(rec Record) Method {
	switch {
	case !rec.IsBuiltIn:
		return MethodDDC
	case HasMultipleRefreshRates(rec):
		return MethodRefresh
	case len(rec.SupportedModes) > 1:
		return MethodResolution
	default:
		return MethodSoft
	}
}

// Capabilities bundles the derived classification for reporting.
type Capabilities struct {
	HasMultipleRefreshRates bool     `json:"hasMultipleRefreshRates"`
	AvailableMethods        []Method `json:"availableMethods"`
	RecommendedMethod       Method   `json:"recommendedMethod"`
}

// Classify computes the full capability report for a display.
func Classify(rec Record) Capabilities {
	return Capabilities{
		HasMultipleRefreshRates: HasMultipleRefreshRates(rec),
		AvailableMethods:        AvailableMethods(rec),
		RecommendedMethod:       RecommendedMethod(rec),
	}
}

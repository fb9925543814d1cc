// Package display holds the display inventory data model and the capability
// classifier that decides which reinitialization methods apply to a display.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/JosNun/displayreset/internal/errors"
)

// ID is an opaque platform display identifier. It is stable only for the
// current session; nothing in this package persists it across runs.
type ID uint32

// Mode is a (width, height, refresh-rate) triple a display can be driven at.
type Mode struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	RefreshHz float64 `json:"refreshRateHz"`
}

// IsZero reports whether the mode is the unknown/unset sentinel.
func (m Mode) IsZero() bool {
	return m.Width == 0 && m.Height == 0 && m.RefreshHz == 0
}

// String renders the mode as "1920x1080@60.0Hz".
func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%.1fHz", m.Width, m.Height, m.RefreshHz)
}

// SameResolution reports whether two modes share pixel dimensions.
func (m Mode) SameResolution(other Mode) bool {
	return m.Width == other.Width && m.Height == other.Height
}

// refreshRateEpsilon is the minimum refresh-rate difference (in Hz) for two
// modes at the same resolution to count as distinct rates. OS mode tables
// often carry 59.94/60.00 style near-duplicates below this threshold.
const refreshRateEpsilon = 0.5

// RefreshDiffers reports whether the refresh rates differ by more than the
// epsilon threshold.
func (m Mode) RefreshDiffers(other Mode) bool {
	return math.Abs(m.RefreshHz-other.RefreshHz) > refreshRateEpsilon
}

// Record describes one active physical display. All fields are recomputed
// fresh on every inventory query; nothing is cached between invocations.
type Record struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	IsMain    bool   `json:"isMain"`
	IsBuiltIn bool   `json:"isBuiltIn"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`

	// SupportedModes is ordered as reported by the OS; the order is
	// OS-defined and not guaranteed sorted.
	SupportedModes []Mode `json:"supportedModes"`

	// CurrentMode is the mode active at query time. The zero value means
	// the current mode could not be read.
	CurrentMode Mode `json:"currentMode"`

	// DDCNumber is the 1-based ordinal the power-control utility uses to
	// address this display. Zero for built-in displays, which have no DDC
	// channel.
	DDCNumber int `json:"-"`
}

// Method identifies a reinitialization strategy.
type Method string

const (
	MethodAuto       Method = "auto"
	MethodDDC        Method = "ddc"
	MethodRefresh    Method = "refresh"
	MethodResolution Method = "resolution"
	MethodSoft       Method = "soft"
)

// ParseMethod validates a method name from user input.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodAuto:
		return MethodAuto, nil
	case MethodDDC:
		return MethodDDC, nil
	case MethodRefresh:
		return MethodRefresh, nil
	case MethodResolution:
		return MethodResolution, nil
	case MethodSoft:
		return MethodSoft, nil
	default:
		return "", errors.New(errors.ErrDisplay,
			fmt.Sprintf("Unknown method '%s'", s),
			"Valid methods: auto, ddc, refresh, resolution, soft")
	}
}

//go:build linux

package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/randr"
	"github.com/stretchr/testify/assert"
)

func TestToMode_RefreshFromTimings(t *testing.T) {
	// A standard 1920x1080 CVT mode line: 148.5 MHz over 2200x1125 totals
	// is exactly 60 Hz.
	info := randr.ModeInfo{
		Width:    1920,
		Height:   1080,
		DotClock: 148500000,
		Htotal:   2200,
		Vtotal:   1125,
	}

	m := toMode(info)
	assert.Equal(t, 1920, m.Width)
	assert.Equal(t, 1080, m.Height)
	assert.InDelta(t, 60.0, m.RefreshHz, 0.01)
}

func TestToMode_ZeroTotalsYieldZeroRefresh(t *testing.T) {
	m := toMode(randr.ModeInfo{Width: 1280, Height: 720})
	assert.Zero(t, m.RefreshHz)
}

func TestIsBuiltInName(t *testing.T) {
	assert.True(t, isBuiltInName("eDP-1"))
	assert.True(t, isBuiltInName("LVDS-1"))
	assert.True(t, isBuiltInName("DSI-0"))
	assert.False(t, isBuiltInName("DP-1"))
	assert.False(t, isBuiltInName("HDMI-A-1"))
	assert.False(t, isBuiltInName(""))
}

package ddc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosNun/displayreset/internal/display"
	drerrors "github.com/JosNun/displayreset/internal/errors"
)

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	lookPathErr error
	output      string
	exitCode    int
	runErr      error
	calls       [][]string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) RunCapture(name string, args ...string) (string, int, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.exitCode, f.runErr
}

func externalDisplay() display.Record {
	return display.Record{ID: 71, Name: "DP-1", DDCNumber: 2}
}

func TestAvailable_ToolMissing(t *testing.T) {
	c := NewController("", &fakeRunner{lookPathErr: errors.New("not found in $PATH")})

	err := c.Available()
	require.Error(t, err)
	assert.True(t, drerrors.IsCode(err, drerrors.ErrTool))
	assert.Contains(t, err.Error(), "not installed")
	assert.Contains(t, err.Error(), "Install it")
}

func TestAvailable_ToolPresent(t *testing.T) {
	c := NewController("", &fakeRunner{})
	assert.NoError(t, c.Available())
}

func TestPowerOff_InvokesSetvcp(t *testing.T) {
	runner := &fakeRunner{output: "VCP code 0xd6 set ok\n"}
	c := NewController("", runner)

	require.NoError(t, c.PowerOff(externalDisplay()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"ddcutil", "--display", "2", "setvcp", "D6", "05"}, runner.calls[0])
}

func TestPowerOn_InvokesSetvcp(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController("", runner)

	require.NoError(t, c.PowerOn(externalDisplay()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"ddcutil", "--display", "2", "setvcp", "D6", "01"}, runner.calls[0])
}

func TestSetPower_NonZeroExit(t *testing.T) {
	runner := &fakeRunner{output: "Display not found\n", exitCode: 1}
	c := NewController("", runner)

	err := c.PowerOn(externalDisplay())
	require.Error(t, err)
	assert.True(t, drerrors.IsCode(err, drerrors.ErrTool))
	assert.Contains(t, err.Error(), "status 1")
}

func TestSetPower_ErrorMarkerInOutput(t *testing.T) {
	runner := &fakeRunner{output: "Some header\nDDC communication failed for display 2\n"}
	c := NewController("", runner)

	err := c.PowerOff(externalDisplay())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DDC communication failed")
}

func TestSetPower_NoDDCChannel(t *testing.T) {
	c := NewController("", &fakeRunner{})

	err := c.PowerOn(display.Record{ID: 68, Name: "eDP-1", IsBuiltIn: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no DDC channel")
}

func TestSetPower_CustomTool(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController("ddcutil-git", runner)

	require.NoError(t, c.PowerOn(externalDisplay()))
	assert.Equal(t, "ddcutil-git", runner.calls[0][0])
}

func TestScanForErrors(t *testing.T) {
	tests := []struct {
		output string
		found  bool
	}{
		{"VCP code 0xd6 set ok", false},
		{"header\nError: rc=-5\ntrailer", true},
		{"Invalid display number", true},
		{"permission denied opening /dev/i2c-4", true},
		{"", false},
	}

	for _, tt := range tests {
		line, found := ScanForErrors(tt.output)
		assert.Equal(t, tt.found, found, tt.output)
		if found {
			assert.True(t, strings.TrimSpace(line) != "")
		}
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrDisplay, "Display '12' not found", "Run 'displayreset list' to see connected displays")

	assert.Equal(t, ErrDisplay, err.Code)
	assert.Contains(t, err.Error(), "✗ Display '12' not found")
	assert.Contains(t, err.Error(), "Run 'displayreset list'")
}

func TestWrap_DefaultsToProbeCode(t *testing.T) {
	cause := errors.New("randr: no such output")
	err := Wrap(cause, "Couldn't read the current mode")

	assert.Equal(t, ErrProbe, err.Code)
	assert.Contains(t, err.Error(), "randr: no such output")
}

func TestWrapWithCode_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("exec: \"ddcutil\": executable file not found in $PATH")
	err := WrapWithCode(cause, ErrTool, "ddcutil is not installed", "Install it with your package manager")

	assert.Equal(t, ErrTool, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "executable file not found")
	assert.Contains(t, err.Error(), "Install it")
}

func TestIsCode(t *testing.T) {
	err := New(ErrTxn, "Couldn't commit the configuration", "")

	assert.True(t, IsCode(err, ErrTxn))
	assert.False(t, IsCode(err, ErrTool))
	assert.False(t, IsCode(nil, ErrTxn))
	assert.False(t, IsCode(errors.New("plain"), ErrTxn))
}

func TestIsCode_WrappedDeeper(t *testing.T) {
	inner := New(ErrTool, "ddcutil reported a failure", "")
	outer := fmt.Errorf("power off: %w", inner)

	assert.True(t, IsCode(outer, ErrTool))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary(nil))
	assert.Equal(t, "plain", Summary(errors.New("plain")))

	structured := New(ErrProbe, "Couldn't enumerate modes", "")
	assert.Equal(t, "Couldn't enumerate modes", Summary(structured))

	wrapped := Wrap(errors.New("connection refused"), "X query failed")
	assert.Equal(t, "X query failed: connection refused", Summary(wrapped))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger_CapturesMessagesWithLevels(t *testing.T) {
	buf := NewBufferLogger()

	buf.Debug("probing display %d", 3)
	buf.Warn("DDC power-off reported an error, attempting power-on anyway")
	buf.Error("restoration failed")

	assert.Len(t, buf.Messages, 3)
	assert.Equal(t, "debug", buf.Messages[0].Level)
	assert.Equal(t, "probing display 3", buf.Messages[0].Message)
	assert.True(t, buf.HasLevel("warn"))
	assert.False(t, buf.HasLevel("info"))
	assert.True(t, buf.Contains("restoration failed"))
	assert.False(t, buf.Contains("success"))
}

func TestBufferLogger_Clear(t *testing.T) {
	buf := NewBufferLogger()
	buf.Info("hello")
	buf.Clear()

	assert.Empty(t, buf.Messages)
}

func TestNoop_DiscardsEverything(t *testing.T) {
	// Must not panic; nothing observable to assert beyond that.
	l := Noop()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestEnvLogger_DebugGatedByEnv(t *testing.T) {
	t.Setenv("DISPLAYRESET_DEBUG", "")

	// With the variable unset the call should be a no-op; with it set the
	// message goes to the standard logger. Either way it must not panic.
	l := NewEnvLogger("[test]")
	l.Debug("hidden")

	t.Setenv("DISPLAYRESET_DEBUG", "1")
	l.Debug("visible")
}

func TestDefault_IsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}

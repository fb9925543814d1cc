package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosNun/displayreset/internal/errors"
)

func TestRunCapture_SimpleCommand(t *testing.T) {
	out, exitCode, err := Local().RunCapture("echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello\n", out)
}

func TestRunCapture_NonZeroExitCode(t *testing.T) {
	out, exitCode, err := Local().RunCapture("sh", "-c", "echo oops >&2; exit 3")

	require.NoError(t, err) // tool ran, just failed
	assert.Equal(t, 3, exitCode)
	assert.Contains(t, out, "oops")
}

func TestRunCapture_MissingExecutable(t *testing.T) {
	_, exitCode, err := Local().RunCapture("definitely-not-a-real-tool-xyz")

	require.Error(t, err)
	assert.Equal(t, -1, exitCode)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
}

func TestLookPath(t *testing.T) {
	path, err := Local().LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = Local().LookPath("definitely-not-a-real-tool-xyz")
	assert.Error(t, err)
}

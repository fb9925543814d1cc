// Package exec runs external tools and captures their output.
// displayreset invokes specific executables with an argument vector rather
// than a shell line, so there is no shell interpretation here.
package exec

import (
	"os/exec"

	"github.com/JosNun/displayreset/internal/errors"
)

// Runner executes external tools. It is an interface so strategies and
// diagnostics can be tested without spawning real processes.
type Runner interface {
	// LookPath searches for an executable on the process search path.
	LookPath(name string) (string, error)

	// RunCapture runs the tool and returns its combined stdout+stderr and
	// exit code. A non-zero exit code is not an error; err is only set when
	// the process could not be started at all.
	RunCapture(name string, args ...string) (output string, exitCode int, err error)
}

// localRunner is the real Runner backed by os/exec.
type localRunner struct{}

// Local returns a Runner that executes tools on this machine.
func Local() Runner {
	return &localRunner{}
}

func (r *localRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *localRunner) RunCapture(name string, args ...string) (string, int, error) {
	cmd := exec.Command(name, args...)

	out, runErr := cmd.CombinedOutput()
	if runErr != nil {
		// Exit error: the tool ran but returned non-zero. The output is
		// still meaningful (ddcutil writes its diagnostics there).
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return string(out), exitErr.ExitCode(), nil
		}
		return string(out), -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run "+name,
			"Make sure the command exists and is executable.")
	}

	return string(out), 0, nil
}

package doctor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JosNun/displayreset/internal/exec"
)

// DDCToolCheck verifies the power-control utility is installed. Its absence
// is a warning, not a failure: only the DDC strategy needs it.
type DDCToolCheck struct {
	Tool   string
	Runner exec.Runner
}

func (c *DDCToolCheck) Name() string     { return "ddc_tool" }
func (c *DDCToolCheck) Category() string { return "TOOLS" }

func (c *DDCToolCheck) Run() CheckResult {
	tool := c.Tool
	if tool == "" {
		tool = "ddcutil"
	}
	runner := c.Runner
	if runner == nil {
		runner = exec.Local()
	}

	path, err := runner.LookPath(tool)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s not found on PATH", tool),
			Suggestion: fmt.Sprintf("Install it to enable DDC power-cycling of external displays, e.g. 'apt install %s'.", tool),
		}
	}

	out, exitCode, err := runner.RunCapture(tool, "--version")
	if err != nil || exitCode != 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s found at %s (version unknown)", tool, path),
		}
	}

	version := parseToolVersion(out)
	if version == "" {
		version = "unknown version"
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s %s (%s)", tool, version, path),
	}
}

var versionPattern = regexp.MustCompile(`\d+(\.\d+)+`)

// parseToolVersion extracts a dotted version number from the first line of
// version output.
func parseToolVersion(output string) string {
	line := output
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return versionPattern.FindString(line)
}

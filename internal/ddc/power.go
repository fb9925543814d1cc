// Package ddc drives external display power state over DDC/CI through the
// ddcutil command-line tool. It is modeled as a port so strategies can be
// tested without spawning real processes.
package ddc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/exec"
)

// VCP feature code D6 (power mode) values per the MCCS spec.
const (
	vcpPowerFeature = "D6"
	vcpPowerOn      = "01"
	vcpPowerOff     = "05"
)

// DefaultTool is the power-control executable expected on the search path.
const DefaultTool = "ddcutil"

// PowerController is the injectable power-control port.
type PowerController interface {
	// Available returns nil when the power-control utility can be invoked,
	// or a structured error explaining how to obtain it.
	Available() error

	// PowerOff turns the display panel off via DDC/CI.
	PowerOff(rec display.Record) error

	// PowerOn turns the display panel back on via DDC/CI.
	PowerOn(rec display.Record) error
}

// errorMarkers match failure text ddcutil embeds in otherwise-successful
// looking output. Combined stdout+stderr is scanned for these regardless of
// exit code.
var errorMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\berror\b`),
	regexp.MustCompile(`(?i)ddc communication failed`),
	regexp.MustCompile(`(?i)invalid display`),
	regexp.MustCompile(`(?i)permission denied`),
}

// Controller shells out to ddcutil.
type Controller struct {
	tool   string
	runner exec.Runner
}

// NewController creates a ddcutil-backed controller. The tool name is
// configurable so tests and unusual installs can substitute a different
// binary; empty means DefaultTool.
func NewController(tool string, runner exec.Runner) *Controller {
	if tool == "" {
		tool = DefaultTool
	}
	if runner == nil {
		runner = exec.Local()
	}
	return &Controller{tool: tool, runner: runner}
}

var _ PowerController = (*Controller)(nil)

// Available checks for the utility on the process search path.
func (c *Controller) Available() error {
	if _, err := c.runner.LookPath(c.tool); err != nil {
		return errors.WrapWithCode(err, errors.ErrTool,
			fmt.Sprintf("'%s' is not installed", c.tool),
			fmt.Sprintf("Install it with your package manager, e.g. 'apt install %s' or 'brew install %s'.", c.tool, c.tool))
	}
	return nil
}

// PowerOff sets the DPM power mode to off.
func (c *Controller) PowerOff(rec display.Record) error {
	return c.setPower(rec, vcpPowerOff)
}

// PowerOn sets the DPM power mode to on.
func (c *Controller) PowerOn(rec display.Record) error {
	return c.setPower(rec, vcpPowerOn)
}

func (c *Controller) setPower(rec display.Record, value string) error {
	if rec.DDCNumber <= 0 {
		return errors.New(errors.ErrTool,
			fmt.Sprintf("Display '%s' has no DDC channel", rec.Name),
			"DDC power control only works on external displays.")
	}

	out, exitCode, err := c.runner.RunCapture(c.tool,
		"--display", strconv.Itoa(rec.DDCNumber),
		"setvcp", vcpPowerFeature, value)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return errors.New(errors.ErrTool,
			fmt.Sprintf("%s exited with status %d", c.tool, exitCode),
			firstLine(out))
	}
	if marker, found := ScanForErrors(out); found {
		return errors.New(errors.ErrTool,
			fmt.Sprintf("%s reported a failure", c.tool),
			marker)
	}
	return nil
}

// ScanForErrors checks tool output for embedded error markers. It returns
// the offending line so diagnostics can surface it.
func ScanForErrors(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		for _, marker := range errorMarkers {
			if marker.MatchString(line) {
				return strings.TrimSpace(line), true
			}
		}
	}
	return "", false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

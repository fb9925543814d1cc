package doctor

import (
	"fmt"
	"os"

	"github.com/JosNun/displayreset/internal/display"
)

// DisplayServerCheck verifies the display server is reachable and displays
// can be enumerated. Connect is injected so the check is testable without a
// running X server.
type DisplayServerCheck struct {
	Connect func() (display.Provider, func(), error)
}

func (c *DisplayServerCheck) Name() string     { return "display_server" }
func (c *DisplayServerCheck) Category() string { return "DISPLAY" }

func (c *DisplayServerCheck) Run() CheckResult {
	if os.Getenv("DISPLAY") == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "DISPLAY is not set",
			Suggestion: "Run from inside a graphical session, or export DISPLAY.",
		}
	}

	provider, closeFn, err := c.Connect()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("cannot connect to the display server: %v", err),
			Suggestion: "Check that the X server is running and accepts connections.",
		}
	}
	defer closeFn()

	records, err := provider.ListDisplays()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("display enumeration failed: %v", err),
			Suggestion: "Check that the RandR extension is available (xrandr --version).",
		}
	}
	if len(records) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "connected, but no active displays found",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d active display(s) found", len(records)),
	}
}

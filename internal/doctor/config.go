package doctor

import (
	"fmt"

	"github.com/JosNun/displayreset/internal/config"
	"github.com/JosNun/displayreset/internal/errors"
)

// ConfigCheck validates the configuration file, if any.
type ConfigCheck struct {
	// Explicit is the --config flag value, empty for the search order.
	Explicit string
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return "CONFIG" }

func (c *ConfigCheck) Run() CheckResult {
	path, err := config.Find(c.Explicit)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    errors.Summary(err),
			Suggestion: "Check the --config path.",
		}
	}
	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "no config file, using defaults",
		}
	}

	if _, err := config.Load(path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: %s", path, errors.Summary(err)),
			Suggestion: "Fix the file or recreate it with 'displayreset init --force'.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: path,
	}
}

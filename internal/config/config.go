// Package config loads displayreset settings. Everything has a sensible
// default; the config file only exists to override settle delays, the
// power-control tool, or the default method.
package config

import (
	"fmt"
	"time"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/reinit"
)

// Config holds all user-tunable settings.
type Config struct {
	// Method is the default reinitialization method when --method is not
	// given.
	Method string `yaml:"method" mapstructure:"method"`

	// DDCTool is the power-control executable name.
	DDCTool string `yaml:"ddc_tool" mapstructure:"ddc_tool"`

	// Delays are the settle intervals between configuration steps.
	Delays DelayConfig `yaml:"delays" mapstructure:"delays"`
}

// DelayConfig mirrors reinit.Delays in the config file.
type DelayConfig struct {
	DDCSettle        time.Duration `yaml:"ddc_settle" mapstructure:"ddc_settle"`
	RefreshSettle    time.Duration `yaml:"refresh_settle" mapstructure:"refresh_settle"`
	ResolutionSettle time.Duration `yaml:"resolution_settle" mapstructure:"resolution_settle"`
}

// Default returns the built-in configuration.
func Default() *Config {
	d := reinit.DefaultDelays()
	return &Config{
		Method:  string(display.MethodAuto),
		DDCTool: "ddcutil",
		Delays: DelayConfig{
			DDCSettle:        d.DDCSettle,
			RefreshSettle:    d.RefreshSettle,
			ResolutionSettle: d.ResolutionSettle,
		},
	}
}

// ReinitDelays converts the configured delays for the engine.
func (c *Config) ReinitDelays() reinit.Delays {
	return reinit.Delays{
		DDCSettle:        c.Delays.DDCSettle,
		RefreshSettle:    c.Delays.RefreshSettle,
		ResolutionSettle: c.Delays.ResolutionSettle,
	}
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if _, err := display.ParseMethod(c.Method); err != nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid default method '%s' in config", c.Method),
			"Valid methods: auto, ddc, refresh, resolution, soft")
	}
	if c.DDCTool == "" {
		return errors.New(errors.ErrConfig,
			"ddc_tool must not be empty",
			"Remove the setting to use the default (ddcutil).")
	}
	for name, d := range map[string]time.Duration{
		"ddc_settle":        c.Delays.DDCSettle,
		"refresh_settle":    c.Delays.RefreshSettle,
		"resolution_settle": c.Delays.ResolutionSettle,
	} {
		if d < 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Negative delay for %s", name),
				"Settle delays must be zero or positive durations like 300ms or 1s.")
		}
	}
	return nil
}

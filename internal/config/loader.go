package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/JosNun/displayreset/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".displayreset.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/displayreset"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path, layered over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'displayreset init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file has invalid values",
			"Delays are durations like 300ms or 1s; method is one of auto, ddc, refresh, resolution, soft")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file using the search order:
//  1. Explicit path (from --config flag)
//  2. .displayreset.yaml in the current directory
//  3. ~/.config/displayreset/config.yaml
//
// Returns an empty string when no config file exists; the defaults apply.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// Resolve combines Find and Load: defaults when no file exists, the loaded
// file otherwise.
func Resolve(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("method", def.Method)
	v.SetDefault("ddc_tool", def.DDCTool)
	v.SetDefault("delays.ddc_settle", def.Delays.DDCSettle)
	v.SetDefault("delays.refresh_settle", def.Delays.RefreshSettle)
	v.SetDefault("delays.resolution_settle", def.Delays.ResolutionSettle)
}

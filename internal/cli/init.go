package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JosNun/displayreset/internal/config"
	"github.com/JosNun/displayreset/internal/errors"
)

var initForce bool

// initCmd writes a default configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .displayreset.yaml configuration",
	Long: `Write a configuration file with the default settings: settle delays,
the power-control tool name, and the default method.

Examples:
  displayreset init
  displayreset init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

func initCommand(force bool) error {
	path := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		if !isInteractive() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
				Value(&overwrite),
		))
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	def := config.Default()
	data, err := yaml.Marshal(map[string]interface{}{
		"method":   def.Method,
		"ddc_tool": def.DDCTool,
		"delays": map[string]string{
			"ddc_settle":        def.Delays.DDCSettle.String(),
			"refresh_settle":    def.Delays.RefreshSettle.String(),
			"resolution_settle": def.Delays.ResolutionSettle.String(),
		},
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't serialize the default config", "")
	}

	content := "# displayreset configuration\n# Delays are durations like 300ms or 1s.\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check directory permissions")
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

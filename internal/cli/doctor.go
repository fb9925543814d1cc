package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/doctor"
	"github.com/JosNun/displayreset/internal/ui"
)

// doctorCmd diagnoses environment and configuration issues.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose display server, tooling, and config issues",
	Long: `Run diagnostic checks to identify common issues.

Checks:
  - Configuration file validity
  - Display server reachability and RandR support
  - Power-control utility (ddcutil) availability

Examples:
  displayreset doctor
  displayreset doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctorCommand(w io.Writer) error {
	cfg, cfgErr := loadConfig()

	tool := ""
	if cfgErr == nil {
		tool = cfg.DDCTool
	}

	checks := []doctor.Check{
		&doctor.ConfigCheck{Explicit: cfgFile},
		&doctor.DisplayServerCheck{
			Connect: func() (display.Provider, func(), error) {
				backend, err := openBackend()
				if err != nil {
					return nil, nil, err
				}
				return backend, backend.Close, nil
			},
		},
		&doctor.DDCToolCheck{Tool: tool},
	}

	results := doctor.RunAll(checks)

	if jsonOutput {
		if err := WriteJSONOutcome(w, doctor.AllPassed(results), results); err != nil {
			return err
		}
	} else {
		renderChecks(w, results)
	}

	if !doctor.AllPassed(results) {
		return errOperationFailed
	}
	return nil
}

func renderChecks(w io.Writer, results []doctor.CheckResult) {
	passStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	failStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	for _, r := range results {
		var line string
		switch r.Status {
		case doctor.StatusPass:
			line = passStyle.Render(ui.SymbolSuccess) + " " + r.Name + ": " + r.Message
		case doctor.StatusWarn:
			line = warnStyle.Render("!") + " " + r.Name + ": " + r.Message
		default:
			line = failStyle.Render(ui.SymbolFail) + " " + r.Name + ": " + r.Message
		}
		fmt.Fprintln(w, line)
		if r.Suggestion != "" && r.Status != doctor.StatusPass {
			fmt.Fprintln(w, mutedStyle.Render("  "+r.Suggestion))
		}
	}
}

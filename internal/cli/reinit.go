package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/JosNun/displayreset/internal/ddc"
	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/exec"
	"github.com/JosNun/displayreset/internal/reinit"
	"github.com/JosNun/displayreset/internal/ui"
)

var reinitMethodFlag string

// reinitCmd forces a display to re-negotiate its signal.
var reinitCmd = &cobra.Command{
	Use:   "reinit [display]",
	Short: "Reinitialize a display's signal",
	Long: `Force the selected display to re-negotiate its signal with the OS.

The display is matched by ID, name, or position in 'displayreset list'.
With no argument on a terminal, an interactive picker is shown.

Methods:
  auto        try strategies least-disruptive-first (default)
  ddc         power-cycle an external display over DDC/CI
  refresh     briefly toggle to a sibling refresh rate
  resolution  briefly cycle through an alternate mode
  soft        reapply the current mode to force renegotiation

Examples:
  displayreset reinit DP-1
  displayreset reinit 2 --method refresh
  displayreset reinit --method soft eDP-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := ""
		if len(args) > 0 {
			identifier = args[0]
		}
		return reinitCommand(os.Stdout, identifier, reinitMethodFlag)
	},
}

func init() {
	reinitCmd.Flags().StringVarP(&reinitMethodFlag, "method", "m", "", "reinitialization method (auto, ddc, refresh, resolution, soft)")
	rootCmd.AddCommand(reinitCmd)
}

func reinitCommand(w io.Writer, identifier, methodFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	methodName := methodFlag
	if methodName == "" {
		methodName = cfg.Method
	}
	method, err := display.ParseMethod(methodName)
	if err != nil {
		return err
	}

	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	log := newLogger()
	inv := display.NewInventory(backend, log)
	engine := reinit.NewEngine(inv, backend,
		ddc.NewController(cfg.DDCTool, exec.Local()),
		log, cfg.ReinitDelays())

	if identifier == "" {
		if !isInteractive() {
			return errors.New(errors.ErrDisplay,
				"No display identifier given",
				"Pass a display ID, name, or list position; see 'displayreset list'.")
		}
		pickedID, pickedMethod, err := pickDisplayAndMethod(inv, methodFlag == "")
		if err != nil {
			return err
		}
		identifier = pickedID
		if methodFlag == "" {
			method = pickedMethod
		}
	}

	outcome, err := engine.Reinitialize(identifier, method)
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := WriteJSONOutcome(w, outcome.Success, outcome); err != nil {
			return err
		}
	} else {
		renderOutcome(w, outcome)
	}

	if !outcome.Success {
		return errOperationFailed
	}
	return nil
}

func renderOutcome(w io.Writer, outcome reinit.Outcome) {
	if outcome.Success {
		style := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
		fmt.Fprintln(w, style.Render(ui.SymbolSuccess+" "+outcome.Message))
		return
	}
	style := lipgloss.NewStyle().Foreground(ui.ColorError)
	fmt.Fprintln(w, style.Render(ui.SymbolFail+" "+outcome.Message))
}

// pickDisplayAndMethod prompts for a display and, unless --method was
// given, for one of that display's applicable methods.
func pickDisplayAndMethod(inv *display.Inventory, askMethod bool) (string, display.Method, error) {
	records := inv.ListDisplays()
	if len(records) == 0 {
		return "", "", errors.New(errors.ErrDisplay,
			"No active displays found",
			"Check that the display server is running and DISPLAY is set.")
	}

	displayOpts := make([]huh.Option[int], 0, len(records))
	for i, rec := range records {
		label := fmt.Sprintf("%s (%s)", rec.Name, rec.CurrentMode)
		displayOpts = append(displayOpts, huh.NewOption(label, i))
	}

	var picked int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Which display needs reinitializing?").
			Options(displayOpts...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return "", "", errors.WrapWithCode(err, errors.ErrDisplay,
			"Cancelled", "")
	}
	rec := records[picked]

	method := display.RecommendedMethod(rec)
	if askMethod {
		methodOpts := make([]huh.Option[display.Method], 0, 5)
		for _, m := range display.AvailableMethods(rec) {
			label := string(m)
			if m == display.RecommendedMethod(rec) {
				label += " (recommended)"
			}
			methodOpts = append(methodOpts, huh.NewOption(label, m))
		}

		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[display.Method]().
				Title("Method").
				Options(methodOpts...).
				Value(&method),
		))
		if err := form.Run(); err != nil {
			return "", "", errors.WrapWithCode(err, errors.ErrDisplay,
				"Cancelled", "")
		}
	}

	return fmt.Sprintf("%d", rec.ID), method, nil
}

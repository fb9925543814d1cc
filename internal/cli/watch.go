package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/logger"
	"github.com/JosNun/displayreset/internal/watch"
)

var watchIntervalFlag string

// watchCmd starts the live display dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of displays and capabilities",
	Long: `Poll the display inventory on an interval and render each display's
current mode and applicable reinitialization methods.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit
  r                 Force refresh

Examples:
  displayreset watch
  displayreset watch --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := 2 * time.Second
		if watchIntervalFlag != "" {
			parsed, err := time.ParseDuration(watchIntervalFlag)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					"Invalid interval: "+watchIntervalFlag,
					"Use a valid duration like 2s, 5s, or 1m")
			}
			if parsed < 500*time.Millisecond {
				return errors.New(errors.ErrConfig,
					"Interval too short",
					"Minimum interval is 500ms to avoid hammering the display server")
			}
			interval = parsed
		}
		return watchCommand(interval)
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "2s", "refresh interval (e.g., 2s, 5s, 1m)")
	rootCmd.AddCommand(watchCmd)
}

func watchCommand(interval time.Duration) error {
	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	// The dashboard owns the screen; diagnostics would corrupt it.
	inv := display.NewInventory(backend, logger.Noop())

	program := tea.NewProgram(watch.New(inv, interval), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Dashboard crashed", "")
	}
	return nil
}

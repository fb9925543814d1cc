package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JosNun/displayreset/internal/config"
	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/display/x11"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/logger"
	"github.com/JosNun/displayreset/internal/ui"
)

// Global flags available to all subcommands.
var (
	cfgFile    string
	jsonOutput bool
	verbose    bool
	quiet      bool
	noColor    bool
)

// errOperationFailed signals a non-zero exit where the failure has already
// been reported; Execute must not print it again.
var errOperationFailed = stderrors.New("operation failed")

var rootCmd = &cobra.Command{
	Use:   "displayreset",
	Short: "Force a display to re-negotiate its signal",
	Long: `displayreset recovers displays from misdetected resolutions, stuck
refresh rates, and corrupted signal handshakes without a physical cable
unplug.

It probes each display's supported modes, derives which recovery strategies
apply, and runs them least-disruptive-first: DDC power-cycle, refresh-rate
toggle, resolution cycle, then soft reset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
			ui.DisableColors()
		}
		if verbose {
			os.Setenv("DISPLAYRESET_DEBUG", "1")
		}
	},
}

// Execute runs the root command and maps errors to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, errOperationFailed) {
			if jsonOutput {
				WriteJSONFromError(os.Stdout, err)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress strategy diagnostics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// newLogger builds the diagnostics logger for commands. Strategy diagnostics
// go to stderr as they happen so a human sees the fallback chain live.
func newLogger() logger.Logger {
	if quiet {
		return logger.Noop()
	}
	return logger.NewEnvLogger("[displayreset]")
}

// loadConfig resolves the effective configuration.
func loadConfig() (*config.Config, error) {
	return config.Resolve(cfgFile)
}

// openBackend connects to the platform display subsystem.
func openBackend() (*x11.Backend, error) {
	backend, err := x11.New()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProbe,
			"Couldn't connect to the display server",
			"Check that you are in a graphical session and DISPLAY is set.")
	}
	return backend, nil
}

// isInteractive reports whether prompts can be shown.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var _ display.Provider = (*x11.Backend)(nil)
var _ display.Configurator = (*x11.Backend)(nil)

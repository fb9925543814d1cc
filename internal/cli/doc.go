// Package cli implements the displayreset command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the display, reinit, and doctor packages for the actual
// work. The general structure separates:
//
//   - Command definitions (cobra.Command instances)
//   - Output rendering (human tables vs. the --json envelope)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "displayreset" with subcommands:
//
//	displayreset list              - List displays and their capabilities
//	displayreset reinit [display]  - Reinitialize a display's signal
//	displayreset watch             - Live display dashboard
//	displayreset doctor            - Diagnose environment issues
//	displayreset init              - Create a config file
//	displayreset version           - Print version information
//	displayreset completion        - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --json, --verbose, --quiet, --no-color) are
// defined on the root command and available to all subcommands.
// Command-specific flags like --method live on individual commands.
//
// Reinitialization failures exit non-zero without a second error print;
// the strategy diagnostics have already gone to stderr as they happened.
package cli

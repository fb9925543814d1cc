package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/ui"
)

// listCmd prints the display inventory with derived capabilities.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected displays and their capabilities",
	Long: `Enumerate active displays with their current mode, supported mode
count, and which reinitialization methods apply.

Examples:
  displayreset list
  displayreset list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// displayReport is one list entry: the record plus its classification.
type displayReport struct {
	display.Record
	Capabilities display.Capabilities `json:"capabilities"`
}

func listCommand(w io.Writer) error {
	log := newLogger()
	records := []display.Record{}

	// Enumeration failure is silent and total: an unreachable display
	// server yields an empty listing, not an error.
	backend, err := openBackend()
	if err != nil {
		log.Error("%s", errors.Summary(err))
	} else {
		defer backend.Close()
		records = display.NewInventory(backend, log).ListDisplays()
	}

	return renderList(w, records)
}

func renderList(w io.Writer, records []display.Record) error {
	reports := make([]displayReport, 0, len(records))
	for _, rec := range records {
		reports = append(reports, displayReport{
			Record:       rec,
			Capabilities: display.Classify(rec),
		})
	}

	if jsonOutput {
		return WriteJSONSuccess(w, reports)
	}

	if len(reports) == 0 {
		fmt.Fprintln(w, "No active displays found.")
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for i, rep := range reports {
		kind := "external"
		if rep.IsBuiltIn {
			kind = "built-in"
		}
		if rep.IsMain {
			kind += " *"
		}
		current := rep.CurrentMode.String()
		if rep.CurrentMode.IsZero() {
			current = "unknown"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", rep.ID),
			rep.Name,
			kind,
			current,
			fmt.Sprintf("%d", len(rep.SupportedModes)),
			string(rep.Capabilities.RecommendedMethod),
		})
	}

	tbl := ui.NewTable([]ui.TableColumn{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 6},
		{Title: "NAME", Width: 14},
		{Title: "TYPE", Width: 11},
		{Title: "CURRENT MODE", Width: 20},
		{Title: "MODES", Width: 6},
		{Title: "RECOMMENDED", Width: 12},
	}, ui.RenderRows(rows))

	fmt.Fprintln(w, tbl.View())
	return nil
}

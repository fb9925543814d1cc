package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/logger"
)

// Provider is the platform port that enumerates displays. The real
// implementation talks to the OS display subsystem; tests substitute fakes.
type Provider interface {
	ListDisplays() ([]Record, error)
}

// Inventory wraps a Provider with the contract the rest of the tool relies
// on: queries never fail upward, name resolution degrades gracefully, and
// every call re-reads the OS state from scratch.
type Inventory struct {
	provider Provider
	log      logger.Logger
}

// NewInventory creates an Inventory over the given provider.
func NewInventory(provider Provider, log logger.Logger) *Inventory {
	if log == nil {
		log = logger.Noop()
	}
	return &Inventory{provider: provider, log: log}
}

// ListDisplays returns all active displays. On any OS query failure it
// returns an empty slice; failure is silent and total, not partial.
func (inv *Inventory) ListDisplays() []Record {
	records, err := inv.provider.ListDisplays()
	if err != nil {
		inv.log.Error("display enumeration failed: %s", errors.Summary(err))
		return []Record{}
	}

	ddcNumber := 0
	for i := range records {
		if records[i].Name == "" {
			records[i].Name = genericName(records[i])
		}
		// The power-control utility addresses external displays by their
		// 1-based enumeration order.
		if !records[i].IsBuiltIn {
			ddcNumber++
			records[i].DDCNumber = ddcNumber
		}
	}
	return records
}

// Find resolves a user-supplied identifier to a display. It matches, in
// order: the platform display ID, the display name (case-insensitive), and
// the 1-based position in the listing. An unrecognized identifier is an
// input-validation error; no strategy runs after it.
func (inv *Inventory) Find(identifier string) (Record, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Record{}, errors.New(errors.ErrDisplay,
			"No display identifier given",
			"Run 'displayreset list' to see connected displays.")
	}

	records := inv.ListDisplays()
	if len(records) == 0 {
		return Record{}, errors.New(errors.ErrDisplay,
			"No active displays found",
			"Check that the display server is running and DISPLAY is set.")
	}

	if n, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		for _, rec := range records {
			if rec.ID == ID(n) {
				return rec, nil
			}
		}
	}

	for _, rec := range records {
		if strings.EqualFold(rec.Name, identifier) {
			return rec, nil
		}
	}

	if n, err := strconv.Atoi(identifier); err == nil && n >= 1 && n <= len(records) {
		return records[n-1], nil
	}

	return Record{}, errors.New(errors.ErrDisplay,
		fmt.Sprintf("Display '%s' not found", identifier),
		"Run 'displayreset list' to see connected displays.")
}

// genericName builds a fallback label when the device-info lookup yields
// nothing usable. A lookup failure weakens the name, never the inventory.
func genericName(rec Record) string {
	switch {
	case rec.IsBuiltIn:
		return "Built-in Display"
	case rec.IsMain:
		return "Main Display"
	default:
		return "External Display"
	}
}

// Package reinit implements the display reinitialization engine: four
// recovery strategies plus the auto-selector that orders them
// least-disruptive-first with fallback on failure.
package reinit

import (
	"fmt"
	"time"

	"github.com/JosNun/displayreset/internal/ddc"
	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
	"github.com/JosNun/displayreset/internal/logger"
)

// Engine applies reinitialization strategies to displays. It is stateless
// between calls; every operation takes the target display explicitly.
type Engine struct {
	inventory *display.Inventory
	config    display.Configurator
	power     ddc.PowerController
	log       logger.Logger
	delays    Delays
}

// NewEngine wires the engine's collaborators. A nil logger discards
// diagnostics.
func NewEngine(inv *display.Inventory, cfg display.Configurator, power ddc.PowerController, log logger.Logger, delays Delays) *Engine {
	if log == nil {
		log = logger.Noop()
	}
	return &Engine{
		inventory: inv,
		config:    cfg,
		power:     power,
		log:       log,
		delays:    delays,
	}
}

// Outcome is the result of one reinitialization operation.
type Outcome struct {
	Success bool           `json:"success"`
	Display string         `json:"display"`
	Method  display.Method `json:"method"`
	Message string         `json:"message"`
}

// Reinitialize resolves the identifier, validates it, and runs the requested
// method. Identifier problems are input errors reported before any strategy
// runs; strategy failures are an unsuccessful Outcome, not an error.
func (e *Engine) Reinitialize(identifier string, method display.Method) (Outcome, error) {
	rec, err := e.inventory.Find(identifier)
	if err != nil {
		return Outcome{}, err
	}

	var ok bool
	switch method {
	case display.MethodAuto:
		ok = e.Auto(rec)
	case display.MethodDDC:
		ok = e.PowerCycle(rec)
	case display.MethodRefresh:
		ok = e.ToggleRefreshRate(rec)
	case display.MethodResolution:
		ok = e.CycleResolution(rec)
	case display.MethodSoft:
		ok = e.SoftReset(rec)
	default:
		return Outcome{}, errors.New(errors.ErrDisplay,
			fmt.Sprintf("Unknown method '%s'", method),
			"Valid methods: auto, ddc, refresh, resolution, soft")
	}

	out := Outcome{
		Success: ok,
		Display: rec.Name,
		Method:  method,
	}
	if ok {
		out.Message = fmt.Sprintf("Reinitialized %s via %s", rec.Name, method)
	} else {
		out.Message = fmt.Sprintf("Failed to reinitialize %s via %s", rec.Name, method)
	}
	return out, nil
}

// PowerCycle recovers an external display by powering it off and on over
// DDC/CI. The off step is best-effort: an error there is logged as a warning
// and the on step still runs. Only the on step's outcome decides the result.
func (e *Engine) PowerCycle(rec display.Record) bool {
	if rec.IsBuiltIn {
		e.log.Error("DDC power-cycle: %s is a built-in display without a DDC channel", rec.Name)
		return false
	}

	if err := e.power.Available(); err != nil {
		// No partial attempt when the utility is missing; the error
		// explains how to obtain it.
		e.log.Error("DDC power-cycle: %s", err)
		return false
	}

	if err := e.power.PowerOff(rec); err != nil {
		e.log.Warn("DDC power-off reported an error, attempting power-on anyway: %s", errors.Summary(err))
	}

	time.Sleep(e.delays.DDCSettle)

	if err := e.power.PowerOn(rec); err != nil {
		e.log.Error("DDC power-on failed: %s", errors.Summary(err))
		return false
	}
	return true
}

// ToggleRefreshRate holds an alternate refresh rate at the current
// resolution briefly, then restores the original mode. Both steps run under
// session-scoped transactions. On a failed restoration the display may be
// left at the alternate rate; the diagnostic says so and the call fails.
func (e *Engine) ToggleRefreshRate(rec display.Record) bool {
	if rec.CurrentMode.IsZero() {
		e.log.Error("refresh-rate toggle: couldn't read the current mode of %s", rec.Name)
		return false
	}

	alt, ok := display.AlternateRefreshMode(rec)
	if !ok {
		e.log.Error("refresh-rate toggle: %s has no alternate refresh rate at %dx%d",
			rec.Name, rec.CurrentMode.Width, rec.CurrentMode.Height)
		return false
	}

	e.log.Debug("refresh-rate toggle: applying %s to %s for %s", alt, rec.Name, e.delays.RefreshSettle)
	if err := applyMode(e.config, rec.ID, display.ScopeSession, alt); err != nil {
		e.log.Error("refresh-rate toggle: couldn't apply %s: %s", alt, errors.Summary(err))
		return false
	}

	time.Sleep(e.delays.RefreshSettle)

	if err := applyMode(e.config, rec.ID, display.ScopeSession, rec.CurrentMode); err != nil {
		e.log.Error("refresh-rate toggle: restoration of %s failed, display may be left at %s: %s",
			rec.CurrentMode, alt, errors.Summary(err))
		return false
	}
	return true
}

// CycleResolution holds any alternate mode briefly, then restores the
// original. More visually disruptive than the refresh toggle, so the
// auto-selector only reaches it when no sibling refresh rate exists.
func (e *Engine) CycleResolution(rec display.Record) bool {
	if rec.CurrentMode.IsZero() {
		e.log.Error("resolution cycle: couldn't read the current mode of %s", rec.Name)
		return false
	}

	alt, ok := display.AlternateMode(rec)
	if !ok {
		e.log.Error("resolution cycle: %s has no alternate mode", rec.Name)
		return false
	}

	e.log.Debug("resolution cycle: applying %s to %s for %s", alt, rec.Name, e.delays.ResolutionSettle)
	if err := applyMode(e.config, rec.ID, display.ScopeSession, alt); err != nil {
		e.log.Error("resolution cycle: couldn't apply %s: %s", alt, errors.Summary(err))
		return false
	}

	time.Sleep(e.delays.ResolutionSettle)

	if err := applyMode(e.config, rec.ID, display.ScopeSession, rec.CurrentMode); err != nil {
		e.log.Error("resolution cycle: restoration of %s failed, display may be left at %s: %s",
			rec.CurrentMode, alt, errors.Summary(err))
		return false
	}
	return true
}

// SoftReset reapplies the display's own current mode through a permanent
// transaction, forcing the OS to re-run its attach negotiation without any
// visible mode change. Nothing changes, so nothing needs restoring.
func (e *Engine) SoftReset(rec display.Record) bool {
	if rec.CurrentMode.IsZero() {
		e.log.Error("soft reset: couldn't read the current mode of %s", rec.Name)
		return false
	}

	if err := applyMode(e.config, rec.ID, display.ScopePermanent, rec.CurrentMode); err != nil {
		e.log.Error("soft reset: couldn't reapply %s: %s", rec.CurrentMode, errors.Summary(err))
		return false
	}
	return true
}

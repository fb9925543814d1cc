package reinit

import (
	"github.com/JosNun/displayreset/internal/display"
	"github.com/JosNun/displayreset/internal/errors"
)

// runTxn opens a configuration transaction, runs fn against it, and commits.
// The cancel path runs on every non-success exit, so a transaction is never
// left open: a Begin failure aborts before touching display state, an fn or
// commit failure cancels the open transaction.
func runTxn(cfg display.Configurator, id display.ID, scope display.TxnScope, fn func(display.Txn) error) error {
	txn, err := cfg.Begin(id, scope)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTxn,
			"Couldn't open a display configuration transaction", "")
	}

	if err := fn(txn); err != nil {
		txn.Cancel()
		return err
	}

	if err := txn.Commit(); err != nil {
		txn.Cancel()
		return errors.WrapWithCode(err, errors.ErrTxn,
			"Couldn't commit the display configuration", "")
	}

	return nil
}

// applyMode drives one mode change through a guarded transaction.
func applyMode(cfg display.Configurator, id display.ID, scope display.TxnScope, mode display.Mode) error {
	return runTxn(cfg, id, scope, func(txn display.Txn) error {
		if err := txn.SetMode(mode); err != nil {
			return errors.WrapWithCode(err, errors.ErrTxn,
				"Couldn't stage the mode change", "")
		}
		return nil
	})
}

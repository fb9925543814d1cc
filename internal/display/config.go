package display

// TxnScope controls how long an applied configuration outlives the call.
type TxnScope int

const (
	// ScopeSession changes revert automatically when the login session
	// ends if not already reverted.
	ScopeSession TxnScope = iota
	// ScopePermanent changes survive until something else reconfigures
	// the display. Soft reset uses this to force renegotiation.
	ScopePermanent
)

// String returns the scope name for diagnostics.
func (s TxnScope) String() string {
	if s == ScopePermanent {
		return "permanent"
	}
	return "session"
}

// Txn is one open display configuration transaction. Exactly one of Commit
// or Cancel must be called on every opened transaction; the reinit package's
// transaction guard enforces that.
type Txn interface {
	// SetMode stages a mode change on the transaction's display.
	SetMode(mode Mode) error

	// Commit applies the staged configuration atomically.
	Commit() error

	// Cancel discards the staged configuration, leaving display state
	// untouched.
	Cancel() error
}

// Configurator is the platform port that opens configuration transactions.
type Configurator interface {
	Begin(id ID, scope TxnScope) (Txn, error)
}

//go:build !linux

package x11

import (
	"fmt"
	"runtime"

	"github.com/JosNun/displayreset/internal/display"
)

// Backend is a stub on platforms without X11/RandR support.
type Backend struct{}

// New reports that no display backend exists for this platform.
func New() (*Backend, error) {
	return nil, fmt.Errorf("display configuration is not supported on %s", runtime.GOOS)
}

// Close is a no-op on unsupported platforms.
func (b *Backend) Close() {}

// ListDisplays never succeeds on unsupported platforms.
func (b *Backend) ListDisplays() ([]display.Record, error) {
	return nil, fmt.Errorf("display enumeration is not supported on %s", runtime.GOOS)
}

// Begin never succeeds on unsupported platforms.
func (b *Backend) Begin(id display.ID, scope display.TxnScope) (display.Txn, error) {
	return nil, fmt.Errorf("display configuration is not supported on %s", runtime.GOOS)
}

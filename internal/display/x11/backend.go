//go:build linux

// Package x11 implements the display provider and configurator ports on top
// of the X11 RandR extension.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Backend holds the X11 connection shared by inventory queries and
// configuration transactions.
type Backend struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

// New connects to the X server and initializes the RandR extension.
func New() (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	return &Backend{
		xu:   xu,
		root: xu.RootWin(),
	}, nil
}

// Close disconnects from the X server.
func (b *Backend) Close() {
	b.xu.Conn().Close()
}

// resources fetches the current screen resources. They are re-read on every
// query; RandR invalidates cached timestamps on configuration changes.
func (b *Backend) resources() (*randr.GetScreenResourcesReply, error) {
	res, err := randr.GetScreenResources(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}
	return res, nil
}

//go:build linux

package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/JosNun/displayreset/internal/display"
)

// modeMatchEpsilon bounds the refresh-rate distance when resolving a staged
// mode back to a RandR mode line.
const modeMatchEpsilon = 0.1

// Begin opens a configuration transaction for the output. The X server is
// grabbed so no other client reconfigures displays between begin and
// commit/cancel; the grab is the OS-level atomicity boundary. Scope is
// advisory on X11: RandR configuration never outlives the session either
// way.
func (b *Backend) Begin(id display.ID, scope display.TxnScope) (display.Txn, error) {
	res, info, err := b.findOutput(id)
	if err != nil {
		return nil, err
	}

	crtc, err := randr.GetCrtcInfo(b.xu.Conn(), info.Crtc, res.ConfigTimestamp).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get crtc info: %w", err)
	}

	if err := xproto.GrabServerChecked(b.xu.Conn()).Check(); err != nil {
		return nil, fmt.Errorf("failed to grab the X server: %w", err)
	}

	return &txn{
		backend: b,
		res:     res,
		info:    info,
		crtc:    crtc,
		crtcID:  info.Crtc,
		staged:  crtc.Mode,
	}, nil
}

// txn is one open RandR configuration transaction.
type txn struct {
	backend *Backend
	res     *randr.GetScreenResourcesReply
	info    *randr.GetOutputInfoReply
	crtc    *randr.GetCrtcInfoReply
	crtcID  randr.Crtc
	staged  randr.Mode
	done    bool
}

// SetMode stages the supported mode line closest to the requested triple.
func (t *txn) SetMode(mode display.Mode) error {
	id, ok := t.matchMode(mode)
	if !ok {
		return fmt.Errorf("no supported mode matches %s", mode)
	}
	t.staged = id
	return nil
}

// Commit applies the staged mode and releases the server grab.
func (t *txn) Commit() error {
	if t.done {
		return fmt.Errorf("transaction already closed")
	}

	reply, err := randr.SetCrtcConfig(
		t.backend.xu.Conn(),
		t.crtcID,
		xproto.TimeCurrentTime,
		t.res.ConfigTimestamp,
		t.crtc.X,
		t.crtc.Y,
		t.staged,
		t.crtc.Rotation,
		t.crtc.Outputs,
	).Reply()

	t.release()

	if err != nil {
		return fmt.Errorf("failed to set crtc config: %w", err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return fmt.Errorf("crtc config rejected with status %d", reply.Status)
	}
	return nil
}

// Cancel releases the server grab without applying anything.
func (t *txn) Cancel() error {
	if t.done {
		return nil
	}
	t.release()
	return nil
}

func (t *txn) release() {
	t.done = true
	xproto.UngrabServer(t.backend.xu.Conn())
}

// matchMode resolves a (width, height, refresh) triple to a mode XID valid
// for this output, picking the nearest refresh rate within the epsilon.
func (t *txn) matchMode(mode display.Mode) (randr.Mode, bool) {
	infoByID := make(map[randr.Mode]randr.ModeInfo, len(t.res.Modes))
	for _, mi := range t.res.Modes {
		infoByID[randr.Mode(mi.Id)] = mi
	}

	var (
		best     randr.Mode
		bestDiff = math.MaxFloat64
	)
	for _, candidate := range t.info.Modes {
		mi, ok := infoByID[candidate]
		if !ok {
			continue
		}
		m := toMode(mi)
		if m.Width != mode.Width || m.Height != mode.Height {
			continue
		}
		diff := math.Abs(m.RefreshHz - mode.RefreshHz)
		if diff < bestDiff {
			best = candidate
			bestDiff = diff
		}
	}

	if bestDiff > modeMatchEpsilon {
		return 0, false
	}
	return best, true
}

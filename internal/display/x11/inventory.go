//go:build linux

package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/randr"

	"github.com/JosNun/displayreset/internal/display"
)

// builtInPrefixes are connector names the kernel assigns to internal panels.
var builtInPrefixes = []string{"eDP", "LVDS", "DSI"}

// ListDisplays enumerates connected RandR outputs with an active CRTC. The
// output XID serves as the display identifier; it is stable only for the
// current X session.
func (b *Backend) ListDisplays() ([]display.Record, error) {
	res, err := b.resources()
	if err != nil {
		return nil, err
	}

	primary, err := randr.GetOutputPrimary(b.xu.Conn(), b.root).Reply()
	if err != nil {
		// Primary is advisory; enumeration proceeds without it.
		primary = nil
	}

	modesByID := make(map[randr.Mode]display.Mode, len(res.Modes))
	for _, info := range res.Modes {
		modesByID[randr.Mode(info.Id)] = toMode(info)
	}

	var records []display.Record
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(b.xu.Conn(), output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}

		crtc, err := randr.GetCrtcInfo(b.xu.Conn(), info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil || crtc.Width == 0 || crtc.Height == 0 {
			continue
		}

		name := string(info.Name)
		rec := display.Record{
			ID:        display.ID(output),
			Name:      name,
			IsBuiltIn: isBuiltInName(name),
			IsMain:    primary != nil && primary.Output == output,
			Width:     int(crtc.Width),
			Height:    int(crtc.Height),
		}

		for _, modeID := range info.Modes {
			if m, ok := modesByID[modeID]; ok {
				rec.SupportedModes = append(rec.SupportedModes, m)
			}
		}
		if current, ok := modesByID[crtc.Mode]; ok {
			rec.CurrentMode = current
		}

		records = append(records, rec)
	}

	return records, nil
}

// toMode converts a RandR mode line to the inventory representation. The
// refresh rate derives from the pixel clock and total timings.
func toMode(info randr.ModeInfo) display.Mode {
	var refresh float64
	if info.Htotal > 0 && info.Vtotal > 0 {
		refresh = float64(info.DotClock) / (float64(info.Htotal) * float64(info.Vtotal))
	}
	return display.Mode{
		Width:     int(info.Width),
		Height:    int(info.Height),
		RefreshHz: refresh,
	}
}

func isBuiltInName(name string) bool {
	for _, prefix := range builtInPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// findOutput locates the CRTC serving the given output.
func (b *Backend) findOutput(id display.ID) (*randr.GetScreenResourcesReply, *randr.GetOutputInfoReply, error) {
	res, err := b.resources()
	if err != nil {
		return nil, nil, err
	}

	info, err := randr.GetOutputInfo(b.xu.Conn(), randr.Output(id), res.ConfigTimestamp).Reply()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get output info for %d: %w", id, err)
	}
	if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
		return nil, nil, fmt.Errorf("output %d is not driving a display", id)
	}
	return res, info, nil
}

package inspect

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenInfo summarizes the X server behind a display.
type ScreenInfo struct {
	Display string
	Vendor  string
	Screens int
	Root    uint32
	Width   uint16
	Height  uint16
}

// QueryScreen connects to display :n and reads the default screen.
// xgb authenticates with the XAUTHORITY of the current process, not with the
// authority file configured for xdotool.
func QueryScreen(n uint32) (*ScreenInfo, error) {
	display := fmt.Sprintf(":%d", n)
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %s: %w", display, err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	return &ScreenInfo{
		Display: display,
		Vendor:  setup.Vendor,
		Screens: len(setup.Roots),
		Root:    uint32(screen.Root),
		Width:   screen.WidthInPixels,
		Height:  screen.HeightInPixels,
	}, nil
}

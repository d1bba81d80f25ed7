package inspect

import (
	"os"
	"testing"
)

func TestQueryScreen(t *testing.T) {
	if DetectDisplayServer() != "x11" {
		t.Skip("X11 display not available on this system")
	}

	n, err := ParseDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		t.Skipf("DISPLAY not parseable: %v", err)
	}

	info, err := QueryScreen(n)
	if err != nil {
		t.Logf("QueryScreen() error (may be expected): %v", err)
		return
	}

	t.Logf("Vendor: %s, screens: %d, size: %dx%d", info.Vendor, info.Screens, info.Width, info.Height)
	if info.Width == 0 || info.Height == 0 {
		t.Errorf("QueryScreen() returned empty screen size %dx%d", info.Width, info.Height)
	}
}

func TestQueryScreenUnreachableDisplay(t *testing.T) {
	if _, err := QueryScreen(4242); err == nil {
		t.Error("QueryScreen(:4242) succeeded, expected connection error")
	}
}

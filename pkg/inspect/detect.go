// Package inspect reads X session state through xdotool and decodes the
// textual output the tool prints.
package inspect

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DetectDisplayServer returns "x11", "wayland" or "unknown" based on the
// session environment.
func DetectDisplayServer() string {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv("DISPLAY")

	if sessionType == "wayland" || waylandDisplay != "" {
		return "wayland"
	}

	if sessionType == "x11" || x11Display != "" {
		return "x11"
	}

	return "unknown"
}

// ParseDisplay extracts the display number from a DISPLAY value such as
// ":0", ":1.0" or "localhost:10.0".
func ParseDisplay(value string) (uint32, error) {
	idx := strings.LastIndex(value, ":")
	if idx == -1 {
		return 0, fmt.Errorf("invalid display %q: missing ':'", value)
	}

	number := value[idx+1:]
	if dot := strings.Index(number, "."); dot != -1 {
		number = number[:dot]
	}

	n, err := strconv.ParseUint(number, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid display %q: %w", value, err)
	}
	return uint32(n), nil
}

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/actionsum/xdotool/pkg/xdotool"
)

// WindowInfo describes a single X window.
type WindowInfo struct {
	ID        string
	Name      string
	ClassName string
	PID       int // 0 when the client does not publish _NET_WM_PID
}

// WindowSource is the subset of *xdotool.XServer used to describe windows.
type WindowSource interface {
	GetActiveWindow() *xdotool.Result
	GetWindowName(window string) *xdotool.Result
	GetWindowClassName(window string) *xdotool.Result
	GetWindowPID(window string) *xdotool.Result
}

// ActiveWindow returns information about the currently active window.
func ActiveWindow(src WindowSource) (*WindowInfo, error) {
	res := src.GetActiveWindow()
	if !res.Success() {
		return nil, fmt.Errorf("failed to get active window ID: %s", failure(res))
	}

	windowID := res.Text()
	if windowID == "" {
		return nil, fmt.Errorf("no active window")
	}

	return Describe(src, windowID)
}

// Describe collects name, class and PID of the window. The name is
// required; class and PID are left empty when xdotool cannot report them.
func Describe(src WindowSource, windowID string) (*WindowInfo, error) {
	nameRes := src.GetWindowName(windowID)
	if !nameRes.Success() {
		return nil, fmt.Errorf("failed to get window name: %s", failure(nameRes))
	}

	info := &WindowInfo{
		ID:   windowID,
		Name: strings.TrimRight(string(nameRes.Stdout), "\r\n"),
	}

	if classRes := src.GetWindowClassName(windowID); classRes.Success() {
		info.ClassName = classRes.Text()
	}

	if pidRes := src.GetWindowPID(windowID); pidRes.Success() {
		if pid, err := strconv.Atoi(pidRes.Text()); err == nil {
			info.PID = pid
		}
	}

	return info, nil
}

// WindowIDs splits search or stack output into window ids.
func WindowIDs(res *xdotool.Result) []string {
	return strings.Fields(string(res.Stdout))
}

func failure(res *xdotool.Result) string {
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return fmt.Sprintf("exit status %d: %s", res.ExitCode, msg)
	}
	return fmt.Sprintf("exit status %d", res.ExitCode)
}

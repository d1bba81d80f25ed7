package inspect

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const procRoot = "/proc"

// ProcessInfo describes the local process owning a window.
type ProcessInfo struct {
	PID     int
	Name    string
	Cmdline string
}

// Process reads name and command line of pid from /proc. It only works for
// clients running on this machine.
func Process(pid int) (*ProcessInfo, error) {
	return readProcess(procRoot, pid)
}

func readProcess(root string, pid int) (*ProcessInfo, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}
	dir := filepath.Join(root, strconv.Itoa(pid))

	stat, err := os.ReadFile(filepath.Join(dir, "stat"))
	if err != nil {
		return nil, fmt.Errorf("failed to read process %d: %w", pid, err)
	}

	// The name is parenthesized and may itself contain spaces or parens.
	s := string(stat)
	start := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("malformed stat for process %d", pid)
	}

	info := &ProcessInfo{PID: pid, Name: s[start+1 : end]}
	if cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
		info.Cmdline = strings.TrimSpace(strings.ReplaceAll(string(cmdline), "\x00", " "))
	}
	return info, nil
}

var screenLockers = []string{
	"gnome-screensaver-dialog",
	"kscreenlocker",
	"i3lock",
	"slock",
	"xscreensaver",
	"xsecurelock",
}

// ScreenLocker returns the name of a running screen locker, or "" if none
// is found. Synthetic input goes to the locker while one is active.
func ScreenLocker() string {
	for _, locker := range screenLockers {
		if err := exec.Command("pgrep", "-x", locker).Run(); err == nil {
			return locker
		}
	}
	return ""
}

package xdotool

import "fmt"

// ActivateWindow activates the window. Unlike FocusWindow, if the window is
// on another desktop xdotool switches to that desktop first.
//
// Sync waits until the window is actually activated.
func (x *XServer) ActivateWindow(window string, opts Options[SyncOption]) *Result {
	return x.Run(WindowActivateWith(opts), window)
}

// GetActiveWindow prints the active window id. This is often more reliable
// than GetWindowFocus.
func (x *XServer) GetActiveWindow() *Result {
	return x.Run(GetActiveWindow.Command(), "")
}

// SetNumDesktops changes the number of desktops or workspaces.
func (x *XServer) SetNumDesktops(n uint8) *Result {
	return x.Run(SetNumDesktops.Command(), fmt.Sprint(n))
}

// GetNumDesktops prints the current number of desktops.
func (x *XServer) GetNumDesktops() *Result {
	return x.Run(GetNumDesktops.Command(), "")
}

// SetDesktopViewport moves the viewport to the given position. Not all
// requests are obeyed by every window manager.
func (x *XServer) SetDesktopViewport(posX, posY uint16) *Result {
	return x.Run(SetDesktopViewport.Command(), fmt.Sprintf("%d %d", posX, posY))
}

// GetDesktopViewport reports the current viewport position. Viewports are
// used instead of virtual desktops by some window managers.
func (x *XServer) GetDesktopViewport(opts Options[ShellOption]) *Result {
	return x.Run(GetDesktopViewportWith(opts), "")
}

// SetDesktop switches to the given desktop. With DesktopRelative the number
// is an offset from the current desktop.
func (x *XServer) SetDesktop(n uint8, opts Options[SetDesktopOption]) *Result {
	return x.Run(SetDesktopWith(opts), fmt.Sprint(n))
}

// GetDesktop prints the desktop currently in view.
func (x *XServer) GetDesktop() *Result {
	return x.Run(GetDesktop.Command(), "")
}

// SetDesktopForWindow moves a window to another desktop.
func (x *XServer) SetDesktopForWindow(window string, n uint8) *Result {
	return x.Run(SetDesktopForWindow.Command(), fmt.Sprintf("%s %d", window, n))
}

// GetDesktopForWindow prints the desktop containing the window.
func (x *XServer) GetDesktopForWindow(window string) *Result {
	return x.Run(GetDesktopForWindow.Command(), window)
}

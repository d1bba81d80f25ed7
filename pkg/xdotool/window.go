package xdotool

// Search prints the ids of windows whose name, class or classname match the
// regular expression pattern. Which properties are matched is selected with
// SearchName, SearchClass, SearchClassName and SearchRole.
func (x *XServer) Search(pattern string, opts Options[SearchOption]) *Result {
	return x.Run(SearchWith(opts), Quote(pattern))
}

// SelectWindow waits for the user to click a window and prints its id.
func (x *XServer) SelectWindow() *Result {
	return x.Run(SelectWindow.Command(), "")
}

func (x *XServer) GetWindowFocus(opts Options[GetWindowFocusOption]) *Result {
	return x.Run(GetWindowFocusWith(opts), "")
}

// GetWindowPID prints the process id owning the window. Requires the
// _NET_WM_PID property, which not every client sets.
func (x *XServer) GetWindowPID(window string) *Result {
	return x.Run(GetWindowPID.Command(), window)
}

func (x *XServer) GetWindowName(window string) *Result {
	return x.Run(GetWindowName.Command(), window)
}

func (x *XServer) GetWindowClassName(window string) *Result {
	return x.Run(GetWindowClassName.Command(), window)
}

// GetWindowGeometry prints position, size and screen of the window.
func (x *XServer) GetWindowGeometry(window string, opts Options[ShellOption]) *Result {
	return x.Run(GetWindowGeometryWith(opts), window)
}

// SetWindowSize resizes the window. Width and height are strings so that
// percentages of the screen ("50%") and "x" (unchanged) can be passed.
func (x *XServer) SetWindowSize(window, width, height string, opts Options[WindowSizeOption]) *Result {
	return x.Run(WindowSizeWith(opts), window+" "+width+" "+height)
}

// MoveWindow moves the window. Coordinates accept percentages and "x".
func (x *XServer) MoveWindow(window, posX, posY string, opts Options[WindowMoveOption]) *Result {
	return x.Run(WindowMoveWith(opts), window+" "+posX+" "+posY)
}

func (x *XServer) FocusWindow(window string, opts Options[SyncOption]) *Result {
	return x.Run(WindowFocusWith(opts), window)
}

func (x *XServer) MapWindow(window string, opts Options[SyncOption]) *Result {
	return x.Run(WindowMapWith(opts), window)
}

func (x *XServer) UnmapWindow(window string, opts Options[SyncOption]) *Result {
	return x.Run(WindowUnmapWith(opts), window)
}

func (x *XServer) MinimizeWindow(window string, opts Options[SyncOption]) *Result {
	return x.Run(WindowMinimizeWith(opts), window)
}

func (x *XServer) RaiseWindow(window string) *Result {
	return x.Run(WindowRaise.Command(), window)
}

// ReparentWindow makes parent the new parent window of window.
func (x *XServer) ReparentWindow(window, parent string) *Result {
	return x.Run(WindowReparent.Command(), window+" "+parent)
}

// CloseWindow destroys the window without killing its client.
func (x *XServer) CloseWindow(window string) *Result {
	return x.Run(WindowClose.Command(), window)
}

// KillWindow kills the client owning the window.
func (x *XServer) KillWindow(window string) *Result {
	return x.Run(WindowKill.Command(), window)
}

// SetWindow changes window properties such as name, class or urgency.
func (x *XServer) SetWindow(window string, opts Options[SetWindowOption]) *Result {
	return x.Run(SetWindowWith(opts), window)
}

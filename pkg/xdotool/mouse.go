package xdotool

import "fmt"

// Mouse buttons as numbered by X11.
const (
	ButtonLeft      uint8 = 1
	ButtonMiddle    uint8 = 2
	ButtonRight     uint8 = 3
	ButtonWheelUp   uint8 = 4
	ButtonWheelDown uint8 = 5
)

// MoveMouse moves the pointer to x,y on the screen, or relative to a window
// when MouseWindow is given.
func (x *XServer) MoveMouse(posX, posY uint16, opts Options[MoveMouseOption]) *Result {
	return x.Run(MouseMoveWith(opts), fmt.Sprintf("%d %d", posX, posY))
}

// MoveMouseRelative moves the pointer by dx,dy from its current position.
func (x *XServer) MoveMouseRelative(dx, dy int32, opts Options[MoveMouseRelativeOption]) *Result {
	args := fmt.Sprintf("%d %d", dx, dy)
	if dx < 0 || dy < 0 {
		// keeps xdotool from reading a negative offset as a flag
		args = "-- " + args
	}
	return x.Run(MouseMoveRelativeWith(opts), args)
}

// Click clicks button once, or ClickRepeat times.
func (x *XServer) Click(button uint8, opts Options[ClickOption]) *Result {
	return x.Run(ClickWith(opts), fmt.Sprint(button))
}

func (x *XServer) MouseDown(button uint8, opts Options[ClickOption]) *Result {
	return x.Run(MouseDownWith(opts), fmt.Sprint(button))
}

func (x *XServer) MouseUp(button uint8, opts Options[ClickOption]) *Result {
	return x.Run(MouseUpWith(opts), fmt.Sprint(button))
}

// GetMouseLocation prints the pointer position, screen and the window under
// the pointer.
func (x *XServer) GetMouseLocation(opts Options[ShellOption]) *Result {
	return x.Run(GetMouseLocationWith(opts), "")
}

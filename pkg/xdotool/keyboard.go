package xdotool

// SendKey sends one or more space separated keystrokes such as
// "ctrl+l Return". Key names are X keysyms.
func (x *XServer) SendKey(keys string, opts Options[KeyboardOption]) *Result {
	return x.Run(KeyWith(opts), keys)
}

// SendKeyDown presses keys without releasing them.
func (x *XServer) SendKeyDown(keys string, opts Options[KeyboardOption]) *Result {
	return x.Run(KeyDownWith(opts), keys)
}

// SendKeyUp releases previously pressed keys.
func (x *XServer) SendKeyUp(keys string, opts Options[KeyboardOption]) *Result {
	return x.Run(KeyUpWith(opts), keys)
}

// TypeText types text as if entered on the keyboard. The text is passed as
// a single argument.
func (x *XServer) TypeText(text string, opts Options[TypeOption]) *Result {
	return x.Run(TypeWith(opts), Quote(text))
}

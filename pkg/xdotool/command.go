package xdotool

import (
	"fmt"
	"strings"
)

// Category groups xdotool subcommands.
type Category int

const (
	CategoryDesktop Category = iota
	CategoryWindow
	CategoryKeyboard
	CategoryMouse
	CategoryMisc
)

func (c Category) String() string {
	switch c {
	case CategoryDesktop:
		return "desktop"
	case CategoryWindow:
		return "window"
	case CategoryKeyboard:
		return "keyboard"
	case CategoryMouse:
		return "mouse"
	case CategoryMisc:
		return "misc"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Action is one concrete xdotool subcommand.
type Action int

const (
	WindowActivate Action = iota
	GetActiveWindow
	SetNumDesktops
	GetNumDesktops
	SetDesktopViewport
	GetDesktopViewport
	SetDesktop
	GetDesktop
	SetDesktopForWindow
	GetDesktopForWindow

	Search
	SelectWindow
	GetWindowFocus
	GetWindowPID
	GetWindowName
	GetWindowClassName
	GetWindowGeometry
	WindowSize
	WindowMove
	WindowFocus
	WindowMap
	WindowUnmap
	WindowMinimize
	WindowRaise
	WindowReparent
	WindowClose
	WindowKill
	SetWindow

	Key
	KeyDown
	KeyUp
	Type

	MouseMove
	MouseMoveRelative
	Click
	MouseDown
	MouseUp
	GetMouseLocation

	Exec
	Sleep
	Version

	actionCount
)

type actionSpec struct {
	category   Category
	subcommand string
}

var actionTable = [actionCount]actionSpec{
	WindowActivate:      {CategoryDesktop, "windowactivate"},
	GetActiveWindow:     {CategoryDesktop, "getactivewindow"},
	SetNumDesktops:      {CategoryDesktop, "set_num_desktops"},
	GetNumDesktops:      {CategoryDesktop, "get_num_desktops"},
	SetDesktopViewport:  {CategoryDesktop, "set_desktop_viewport"},
	GetDesktopViewport:  {CategoryDesktop, "get_desktop_viewport"},
	SetDesktop:          {CategoryDesktop, "set_desktop"},
	GetDesktop:          {CategoryDesktop, "get_desktop"},
	SetDesktopForWindow: {CategoryDesktop, "set_desktop_for_window"},
	GetDesktopForWindow: {CategoryDesktop, "get_desktop_for_window"},

	Search:             {CategoryWindow, "search"},
	SelectWindow:       {CategoryWindow, "selectwindow"},
	GetWindowFocus:     {CategoryWindow, "getwindowfocus"},
	GetWindowPID:       {CategoryWindow, "getwindowpid"},
	GetWindowName:      {CategoryWindow, "getwindowname"},
	GetWindowClassName: {CategoryWindow, "getwindowclassname"},
	GetWindowGeometry:  {CategoryWindow, "getwindowgeometry"},
	WindowSize:         {CategoryWindow, "windowsize"},
	WindowMove:         {CategoryWindow, "windowmove"},
	WindowFocus:        {CategoryWindow, "windowfocus"},
	WindowMap:          {CategoryWindow, "windowmap"},
	WindowUnmap:        {CategoryWindow, "windowunmap"},
	WindowMinimize:     {CategoryWindow, "windowminimize"},
	WindowRaise:        {CategoryWindow, "windowraise"},
	WindowReparent:     {CategoryWindow, "windowreparent"},
	WindowClose:        {CategoryWindow, "windowclose"},
	WindowKill:         {CategoryWindow, "windowkill"},
	SetWindow:          {CategoryWindow, "set_window"},

	Key:     {CategoryKeyboard, "key"},
	KeyDown: {CategoryKeyboard, "keydown"},
	KeyUp:   {CategoryKeyboard, "keyup"},
	Type:    {CategoryKeyboard, "type"},

	MouseMove:         {CategoryMouse, "mousemove"},
	MouseMoveRelative: {CategoryMouse, "mousemove_relative"},
	Click:             {CategoryMouse, "click"},
	MouseDown:         {CategoryMouse, "mousedown"},
	MouseUp:           {CategoryMouse, "mouseup"},
	GetMouseLocation:  {CategoryMouse, "getmouselocation"},

	Exec:    {CategoryMisc, "exec"},
	Sleep:   {CategoryMisc, "sleep"},
	Version: {CategoryMisc, "version"},
}

// Actions returns every known action in declaration order.
func Actions() []Action {
	actions := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		actions = append(actions, a)
	}
	return actions
}

// Valid reports whether a is one of the declared actions.
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// Category returns the category a belongs to.
func (a Action) Category() Category {
	if !a.Valid() {
		return Category(-1)
	}
	return actionTable[a].category
}

// String returns the subcommand literal expected by xdotool.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionTable[a].subcommand
}

// Command returns a with no option flags.
func (a Action) Command() Command {
	return Command{action: a}
}

// Command is a rendered-on-demand xdotool subcommand with its flags.
// The zero value is WindowActivate without options.
type Command struct {
	action Action
	flags  []string
}

func newCommand[T Option](a Action, opts Options[T]) Command {
	return Command{action: a, flags: opts.Tokens()}
}

func (c Command) Action() Action     { return c.action }
func (c Command) Category() Category { return c.action.Category() }

// Tokens returns the subcommand followed by its flags.
func (c Command) Tokens() []string {
	tokens := make([]string, 0, len(c.flags)+1)
	tokens = append(tokens, c.action.String())
	return append(tokens, c.flags...)
}

// String renders the command as "<subcommand> <flags...>".
func (c Command) String() string {
	return strings.Join(c.Tokens(), " ")
}

func WindowActivateWith(opts Options[SyncOption]) Command {
	return newCommand(WindowActivate, opts)
}

func GetDesktopViewportWith(opts Options[ShellOption]) Command {
	return newCommand(GetDesktopViewport, opts)
}

func SetDesktopWith(opts Options[SetDesktopOption]) Command {
	return newCommand(SetDesktop, opts)
}

func SearchWith(opts Options[SearchOption]) Command {
	return newCommand(Search, opts)
}

func GetWindowFocusWith(opts Options[GetWindowFocusOption]) Command {
	return newCommand(GetWindowFocus, opts)
}

func GetWindowGeometryWith(opts Options[ShellOption]) Command {
	return newCommand(GetWindowGeometry, opts)
}

func WindowSizeWith(opts Options[WindowSizeOption]) Command {
	return newCommand(WindowSize, opts)
}

func WindowMoveWith(opts Options[WindowMoveOption]) Command {
	return newCommand(WindowMove, opts)
}

func WindowFocusWith(opts Options[SyncOption]) Command {
	return newCommand(WindowFocus, opts)
}

func WindowMapWith(opts Options[SyncOption]) Command {
	return newCommand(WindowMap, opts)
}

func WindowUnmapWith(opts Options[SyncOption]) Command {
	return newCommand(WindowUnmap, opts)
}

func WindowMinimizeWith(opts Options[SyncOption]) Command {
	return newCommand(WindowMinimize, opts)
}

func SetWindowWith(opts Options[SetWindowOption]) Command {
	return newCommand(SetWindow, opts)
}

func KeyWith(opts Options[KeyboardOption]) Command {
	return newCommand(Key, opts)
}

func KeyDownWith(opts Options[KeyboardOption]) Command {
	return newCommand(KeyDown, opts)
}

func KeyUpWith(opts Options[KeyboardOption]) Command {
	return newCommand(KeyUp, opts)
}

func TypeWith(opts Options[TypeOption]) Command {
	return newCommand(Type, opts)
}

func MouseMoveWith(opts Options[MoveMouseOption]) Command {
	return newCommand(MouseMove, opts)
}

func MouseMoveRelativeWith(opts Options[MoveMouseRelativeOption]) Command {
	return newCommand(MouseMoveRelative, opts)
}

func ClickWith(opts Options[ClickOption]) Command {
	return newCommand(Click, opts)
}

func MouseDownWith(opts Options[ClickOption]) Command {
	return newCommand(MouseDown, opts)
}

func MouseUpWith(opts Options[ClickOption]) Command {
	return newCommand(MouseUp, opts)
}

func GetMouseLocationWith(opts Options[ShellOption]) Command {
	return newCommand(GetMouseLocation, opts)
}

func ExecWith(opts Options[ExecOption]) Command {
	return newCommand(Exec, opts)
}

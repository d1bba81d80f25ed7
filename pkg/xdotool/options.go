package xdotool

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// flag is a single rendered option: a literal token plus an optional value.
// rank fixes the position of the token within its option family.
type flag struct {
	rank   int
	token  string
	value  string
	valued bool
}

func (f flag) render() []string {
	if !f.valued {
		return []string{f.token}
	}
	return []string{f.token, f.value}
}

func unit(rank int, token string) flag {
	return flag{rank: rank, token: token}
}

func withNumber(rank int, token string, n uint64) flag {
	return flag{rank: rank, token: token, value: strconv.FormatUint(n, 10), valued: true}
}

func withText(rank int, token, s string) flag {
	return flag{rank: rank, token: token, value: Quote(s), valued: true}
}

// withMillis renders d in whole milliseconds. Negative durations become 0.
func withMillis(rank int, token string, d time.Duration) flag {
	if d < 0 {
		d = 0
	}
	return withNumber(rank, token, uint64(d.Milliseconds()))
}

// Option is implemented by every option family in this package.
// The set of families is closed.
type Option interface {
	option() flag
}

// Options is an immutable set of options of one family.
type Options[T Option] struct {
	items []T
}

// NewOptions builds an option set. Passing no arguments yields the empty set.
func NewOptions[T Option](opts ...T) Options[T] {
	return Options[T]{items: append([]T(nil), opts...)}
}

// With returns a copy of the set with opts added.
func (o Options[T]) With(opts ...T) Options[T] {
	items := make([]T, 0, len(o.items)+len(opts))
	items = append(items, o.items...)
	items = append(items, opts...)
	return Options[T]{items: items}
}

// Len reports the number of distinct variants in the set. Zero values of an
// option type are not variants and are ignored.
func (o Options[T]) Len() int {
	return len(o.flags())
}

// Tokens renders the set in the family's enumeration order.
// A variant added more than once contributes once, with its last value.
func (o Options[T]) Tokens() []string {
	var tokens []string
	for _, f := range o.flags() {
		tokens = append(tokens, f.render()...)
	}
	return tokens
}

// String renders the set as space separated tokens.
func (o Options[T]) String() string {
	return strings.Join(o.Tokens(), " ")
}

func (o Options[T]) flags() []flag {
	byRank := make(map[int]flag, len(o.items))
	for _, item := range o.items {
		f := item.option()
		if f.token == "" {
			continue
		}
		byRank[f.rank] = f
	}
	flags := make([]flag, 0, len(byRank))
	for _, f := range byRank {
		flags = append(flags, f)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].rank < flags[j].rank })
	return flags
}

// SyncOption applies to windowactivate, windowfocus, windowmap, windowunmap
// and windowminimize.
type SyncOption struct{ f flag }

func (o SyncOption) option() flag { return o.f }

// Sync waits until the window manager has processed the request.
var Sync = SyncOption{unit(0, "--sync")}

// SetDesktopOption applies to set_desktop.
type SetDesktopOption struct{ f flag }

func (o SetDesktopOption) option() flag { return o.f }

// DesktopRelative moves relative to the current desktop instead of absolutely.
var DesktopRelative = SetDesktopOption{unit(0, "--relative")}

// ShellOption applies to commands that can print shell variable assignments.
type ShellOption struct{ f flag }

func (o ShellOption) option() flag { return o.f }

// ShellOutput prints results as X=..., Y=... lines suitable for eval.
var ShellOutput = ShellOption{unit(0, "--shell")}

// GetWindowFocusOption applies to getwindowfocus.
type GetWindowFocusOption struct{ f flag }

func (o GetWindowFocusOption) option() flag { return o.f }

// FocusAny reports the focused window even if it is not a top-level window.
var FocusAny = GetWindowFocusOption{unit(0, "-f")}

// SearchOption applies to search.
type SearchOption struct{ f flag }

func (o SearchOption) option() flag { return o.f }

var (
	SearchClass       = SearchOption{unit(0, "--class")}
	SearchClassName   = SearchOption{unit(1, "--classname")}
	SearchName        = SearchOption{unit(3, "--name")}
	SearchOnlyVisible = SearchOption{unit(8, "--onlyvisible")}
	SearchRole        = SearchOption{unit(9, "--role")}
	SearchAll         = SearchOption{unit(10, "--all")}
	SearchAny         = SearchOption{unit(11, "--any")}
	SearchSync        = SearchOption{unit(12, "--sync")}
)

// SearchMaxDepth limits how deep the window tree is searched.
func SearchMaxDepth(n uint) SearchOption {
	return SearchOption{withNumber(2, "--maxdepth", uint64(n))}
}

// SearchPID matches windows owned by the given process.
func SearchPID(pid uint32) SearchOption {
	return SearchOption{withNumber(4, "--pid", uint64(pid))}
}

// SearchScreen restricts the search to one screen.
func SearchScreen(n uint) SearchOption {
	return SearchOption{withNumber(5, "--screen", uint64(n))}
}

// SearchDesktop restricts the search to one desktop.
func SearchDesktop(n uint) SearchOption {
	return SearchOption{withNumber(6, "--desktop", uint64(n))}
}

// SearchLimit stops after n matches.
func SearchLimit(n uint) SearchOption {
	return SearchOption{withNumber(7, "--limit", uint64(n))}
}

// WindowSizeOption applies to windowsize.
type WindowSizeOption struct{ f flag }

func (o WindowSizeOption) option() flag { return o.f }

var (
	// SizeUseHints interprets the size in window size hints (terminal cells).
	SizeUseHints = WindowSizeOption{unit(0, "--usehints")}
	SizeSync     = WindowSizeOption{unit(1, "--sync")}
)

// WindowMoveOption applies to windowmove.
type WindowMoveOption struct{ f flag }

func (o WindowMoveOption) option() flag { return o.f }

var (
	MoveSync     = WindowMoveOption{unit(0, "--sync")}
	MoveRelative = WindowMoveOption{unit(1, "--relative")}
)

// SetWindowOption applies to set_window.
type SetWindowOption struct{ f flag }

func (o SetWindowOption) option() flag { return o.f }

func SetName(v string) SetWindowOption      { return SetWindowOption{withText(0, "--name", v)} }
func SetIconName(v string) SetWindowOption  { return SetWindowOption{withText(1, "--icon-name", v)} }
func SetRole(v string) SetWindowOption      { return SetWindowOption{withText(2, "--role", v)} }
func SetClassName(v string) SetWindowOption { return SetWindowOption{withText(3, "--classname", v)} }
func SetClass(v string) SetWindowOption     { return SetWindowOption{withText(4, "--class", v)} }

// SetUrgency sets the urgency hint; 1 marks the window urgent.
func SetUrgency(v uint8) SetWindowOption {
	return SetWindowOption{withNumber(5, "--urgency", uint64(v))}
}

// SetOverrideRedirect sets override_redirect; takes effect on the next map.
func SetOverrideRedirect(v uint8) SetWindowOption {
	return SetWindowOption{withNumber(6, "--overrideredirect", uint64(v))}
}

// KeyboardOption applies to key, keydown and keyup.
type KeyboardOption struct{ f flag }

func (o KeyboardOption) option() flag { return o.f }

// KeyClearModifiers clears active modifiers while sending keys.
var KeyClearModifiers = KeyboardOption{unit(4, "--clearmodifiers")}

func KeyWindow(window string) KeyboardOption {
	return KeyboardOption{withText(0, "--window", window)}
}

func KeyDelay(d time.Duration) KeyboardOption {
	return KeyboardOption{withMillis(1, "--delay", d)}
}

func KeyRepeat(n uint) KeyboardOption {
	return KeyboardOption{withNumber(2, "--repeat", uint64(n))}
}

func KeyRepeatDelay(d time.Duration) KeyboardOption {
	return KeyboardOption{withMillis(3, "--repeat-delay", d)}
}

// TypeOption applies to type.
type TypeOption struct{ f flag }

func (o TypeOption) option() flag { return o.f }

var TypeClearModifiers = TypeOption{unit(2, "--clearmodifiers")}

func TypeWindow(window string) TypeOption {
	return TypeOption{withText(0, "--window", window)}
}

// TypeDelay sets the delay between keystrokes.
func TypeDelay(d time.Duration) TypeOption {
	return TypeOption{withMillis(1, "--delay", d)}
}

// MoveMouseOption applies to mousemove.
type MoveMouseOption struct{ f flag }

func (o MoveMouseOption) option() flag { return o.f }

var (
	// MousePolar treats x as an angle in degrees and y as a distance from the screen center.
	MousePolar          = MoveMouseOption{unit(2, "--polar")}
	MouseClearModifiers = MoveMouseOption{unit(3, "--clearmodifiers")}
	MouseSync           = MoveMouseOption{unit(4, "--sync")}
)

// MouseWindow makes coordinates relative to the given window.
func MouseWindow(window string) MoveMouseOption {
	return MoveMouseOption{withText(0, "--window", window)}
}

func MouseScreen(n uint) MoveMouseOption {
	return MoveMouseOption{withNumber(1, "--screen", uint64(n))}
}

// MoveMouseRelativeOption applies to mousemove_relative.
type MoveMouseRelativeOption struct{ f flag }

func (o MoveMouseRelativeOption) option() flag { return o.f }

var (
	RelativePolar          = MoveMouseRelativeOption{unit(0, "--polar")}
	RelativeClearModifiers = MoveMouseRelativeOption{unit(1, "--clearmodifiers")}
	RelativeSync           = MoveMouseRelativeOption{unit(2, "--sync")}
)

// ClickOption applies to click, mousedown and mouseup.
type ClickOption struct{ f flag }

func (o ClickOption) option() flag { return o.f }

var ClickClearModifiers = ClickOption{unit(0, "--clearmodifiers")}

func ClickRepeat(n uint) ClickOption {
	return ClickOption{withNumber(1, "--repeat", uint64(n))}
}

// ClickDelay sets the delay between repeated clicks.
func ClickDelay(d time.Duration) ClickOption {
	return ClickOption{withMillis(2, "--delay", d)}
}

func ClickWindow(window string) ClickOption {
	return ClickOption{withText(3, "--window", window)}
}

// ExecOption applies to exec.
type ExecOption struct{ f flag }

func (o ExecOption) option() flag { return o.f }

// ExecSync blocks until the child process exits.
var ExecSync = ExecOption{unit(0, "--sync")}

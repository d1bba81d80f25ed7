package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/pkg/inspect"
	"github.com/actionsum/xdotool/pkg/xdotool"
)

var buttonNames = map[string]uint8{
	"left":   xdotool.ButtonLeft,
	"middle": xdotool.ButtonMiddle,
	"right":  xdotool.ButtonRight,
	"up":     xdotool.ButtonWheelUp,
	"down":   xdotool.ButtonWheelDown,
}

func newKeyCmd(a *app) *cobra.Command {
	var (
		window      string
		delay       time.Duration
		repeat      uint
		repeatDelay time.Duration
		clearMods   bool
		down, up    bool
	)

	cmd := &cobra.Command{
		Use:   "key <keysym>...",
		Short: "Send keystrokes such as ctrl+c or Return",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if down && up {
				return fmt.Errorf("--down and --up are mutually exclusive")
			}
			if err := nonNegative(cmd, "delay", "repeat-delay"); err != nil {
				return err
			}

			flags := cmd.Flags()
			opts := xdotool.NewOptions[xdotool.KeyboardOption]()
			if flags.Changed("window") {
				opts = opts.With(xdotool.KeyWindow(window))
			}
			if flags.Changed("delay") {
				opts = opts.With(xdotool.KeyDelay(delay))
			}
			if flags.Changed("repeat") {
				opts = opts.With(xdotool.KeyRepeat(repeat))
			}
			if flags.Changed("repeat-delay") {
				opts = opts.With(xdotool.KeyRepeatDelay(repeatDelay))
			}
			if clearMods {
				opts = opts.With(xdotool.KeyClearModifiers)
			}

			keys := strings.Join(args, " ")
			switch {
			case down:
				return emit(cmd, a.srv.SendKeyDown(keys, opts))
			case up:
				return emit(cmd, a.srv.SendKeyUp(keys, opts))
			default:
				return emit(cmd, a.srv.SendKey(keys, opts))
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&window, "window", "", "send to this window instead of the focused one")
	f.DurationVar(&delay, "delay", 0, "delay between keystrokes")
	f.UintVar(&repeat, "repeat", 0, "number of times to repeat the sequence")
	f.DurationVar(&repeatDelay, "repeat-delay", 0, "delay between repetitions")
	f.BoolVar(&clearMods, "clearmodifiers", false, "clear active modifiers first")
	f.BoolVar(&down, "down", false, "press the keys without releasing them")
	f.BoolVar(&up, "up", false, "release the keys")
	return cmd
}

func newTypeCmd(a *app) *cobra.Command {
	var (
		window    string
		delay     time.Duration
		clearMods bool
	)

	cmd := &cobra.Command{
		Use:   "type <text>...",
		Short: "Type text as if entered on the keyboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := nonNegative(cmd, "delay"); err != nil {
				return err
			}

			flags := cmd.Flags()
			opts := xdotool.NewOptions[xdotool.TypeOption]()
			if flags.Changed("window") {
				opts = opts.With(xdotool.TypeWindow(window))
			}
			if flags.Changed("delay") {
				opts = opts.With(xdotool.TypeDelay(delay))
			}
			if clearMods {
				opts = opts.With(xdotool.TypeClearModifiers)
			}
			return emit(cmd, a.srv.TypeText(strings.Join(args, " "), opts))
		},
	}

	f := cmd.Flags()
	f.StringVar(&window, "window", "", "type into this window instead of the focused one")
	f.DurationVar(&delay, "delay", 0, "delay between keystrokes")
	f.BoolVar(&clearMods, "clearmodifiers", false, "clear active modifiers first")
	return cmd
}

func newMouseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mouse",
		Short: "Move the pointer and click",
	}
	cmd.AddCommand(newMouseMoveCmd(a), newClickCmd(a), newLocationCmd(a))
	return cmd
}

func newMouseMoveCmd(a *app) *cobra.Command {
	var (
		window    string
		screen    uint
		polar     bool
		clearMods bool
		sync      bool
		relative  bool
	)

	cmd := &cobra.Command{
		Use:   "move <x> <y>",
		Short: "Move the pointer",
		Long: `Move the pointer to x,y, or by x,y with --relative.
Negative relative offsets must follow "--", e.g. xdo mouse move --relative -- -10 5.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if relative {
				dx, err := parseInt32("x offset", args[0])
				if err != nil {
					return err
				}
				dy, err := parseInt32("y offset", args[1])
				if err != nil {
					return err
				}

				opts := xdotool.NewOptions[xdotool.MoveMouseRelativeOption]()
				if polar {
					opts = opts.With(xdotool.RelativePolar)
				}
				if clearMods {
					opts = opts.With(xdotool.RelativeClearModifiers)
				}
				if sync {
					opts = opts.With(xdotool.RelativeSync)
				}
				return emit(cmd, a.srv.MoveMouseRelative(dx, dy, opts))
			}

			x, err := parseUint16("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseUint16("y", args[1])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			opts := xdotool.NewOptions[xdotool.MoveMouseOption]()
			if flags.Changed("window") {
				opts = opts.With(xdotool.MouseWindow(window))
			}
			if flags.Changed("screen") {
				opts = opts.With(xdotool.MouseScreen(screen))
			}
			if polar {
				opts = opts.With(xdotool.MousePolar)
			}
			if clearMods {
				opts = opts.With(xdotool.MouseClearModifiers)
			}
			if sync {
				opts = opts.With(xdotool.MouseSync)
			}
			return emit(cmd, a.srv.MoveMouse(x, y, opts))
		},
	}

	f := cmd.Flags()
	f.StringVar(&window, "window", "", "coordinates are relative to this window")
	f.UintVar(&screen, "screen", 0, "move to this screen")
	f.BoolVar(&polar, "polar", false, "x is an angle in degrees, y a distance")
	f.BoolVar(&clearMods, "clearmodifiers", false, "clear active modifiers first")
	f.BoolVar(&sync, "sync", false, "wait until the pointer has moved")
	f.BoolVar(&relative, "relative", false, "move by x,y from the current position")
	return cmd
}

func newClickCmd(a *app) *cobra.Command {
	var (
		window    string
		repeat    uint
		delay     time.Duration
		clearMods bool
		down, up  bool
	)

	cmd := &cobra.Command{
		Use:   "click [button]",
		Short: "Click a mouse button",
		Long:  `Click a mouse button: 1-5 or left, middle, right, up, down. Defaults to left.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if down && up {
				return fmt.Errorf("--down and --up are mutually exclusive")
			}
			if err := nonNegative(cmd, "delay"); err != nil {
				return err
			}

			button := xdotool.ButtonLeft
			if len(args) == 1 {
				var err error
				if button, err = parseButton(args[0]); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			opts := xdotool.NewOptions[xdotool.ClickOption]()
			if clearMods {
				opts = opts.With(xdotool.ClickClearModifiers)
			}
			if flags.Changed("repeat") {
				opts = opts.With(xdotool.ClickRepeat(repeat))
			}
			if flags.Changed("delay") {
				opts = opts.With(xdotool.ClickDelay(delay))
			}
			if flags.Changed("window") {
				opts = opts.With(xdotool.ClickWindow(window))
			}

			switch {
			case down:
				return emit(cmd, a.srv.MouseDown(button, opts))
			case up:
				return emit(cmd, a.srv.MouseUp(button, opts))
			default:
				return emit(cmd, a.srv.Click(button, opts))
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&window, "window", "", "click in this window")
	f.UintVar(&repeat, "repeat", 0, "number of clicks")
	f.DurationVar(&delay, "delay", 0, "delay between repeated clicks")
	f.BoolVar(&clearMods, "clearmodifiers", false, "clear active modifiers first")
	f.BoolVar(&down, "down", false, "press the button without releasing it")
	f.BoolVar(&up, "up", false, "release the button")
	return cmd
}

// nonNegative rejects negative values for the named duration flags.
func nonNegative(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		d, err := cmd.Flags().GetDuration(name)
		if err != nil {
			return err
		}
		if d < 0 {
			return fmt.Errorf("--%s must not be negative, got %s", name, d)
		}
	}
	return nil
}

func parseButton(s string) (uint8, error) {
	if b, ok := buttonNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	b, err := parseUint8("button", s)
	if err != nil || b < xdotool.ButtonLeft || b > xdotool.ButtonWheelDown {
		return 0, fmt.Errorf("invalid button %q (valid: 1-5, left, middle, right, up, down)", s)
	}
	return b, nil
}

func newLocationCmd(a *app) *cobra.Command {
	var vars, asJSON bool

	cmd := &cobra.Command{
		Use:   "location",
		Short: "Print the pointer position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				opts := xdotool.NewOptions[xdotool.ShellOption]()
				if vars {
					opts = opts.With(xdotool.ShellOutput)
				}
				return emit(cmd, a.srv.GetMouseLocation(opts))
			}

			res := a.srv.GetMouseLocation(xdotool.NewOptions(xdotool.ShellOutput))
			if !res.Success() {
				return emit(cmd, res)
			}
			loc, err := inspect.ParseMouseLocation(string(res.Stdout))
			if err != nil {
				return err
			}
			return writeJSON(cmd, loc)
		},
	}

	cmd.Flags().BoolVar(&vars, "vars", false, "print X=, Y=, SCREEN=, WINDOW= shell assignments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the location as JSON")
	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

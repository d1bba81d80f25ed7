package cli

import (
	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/pkg/inspect"
	"github.com/actionsum/xdotool/pkg/xdotool"
)

func newWindowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Find, inspect and manipulate windows",
	}

	cmd.AddCommand(
		newSearchCmd(a),
		windowQuery("name", "Print a window's title", func(w string) *xdotool.Result {
			return a.srv.GetWindowName(w)
		}),
		windowQuery("pid", "Print the PID owning a window", func(w string) *xdotool.Result {
			return a.srv.GetWindowPID(w)
		}),
		windowQuery("class", "Print a window's class name", func(w string) *xdotool.Result {
			return a.srv.GetWindowClassName(w)
		}),
		newGeometryCmd(a),
		windowSync("focus", "Give a window input focus", func(w string, o xdotool.Options[xdotool.SyncOption]) *xdotool.Result {
			return a.srv.FocusWindow(w, o)
		}),
		windowQuery("raise", "Raise a window to the top of the stack", func(w string) *xdotool.Result {
			return a.srv.RaiseWindow(w)
		}),
		windowSync("map", "Map a window, making it visible", func(w string, o xdotool.Options[xdotool.SyncOption]) *xdotool.Result {
			return a.srv.MapWindow(w, o)
		}),
		windowSync("unmap", "Unmap a window, hiding it", func(w string, o xdotool.Options[xdotool.SyncOption]) *xdotool.Result {
			return a.srv.UnmapWindow(w, o)
		}),
		windowSync("minimize", "Minimize a window", func(w string, o xdotool.Options[xdotool.SyncOption]) *xdotool.Result {
			return a.srv.MinimizeWindow(w, o)
		}),
		windowQuery("close", "Ask a window to close", func(w string) *xdotool.Result {
			return a.srv.CloseWindow(w)
		}),
		windowQuery("kill", "Kill the client owning a window", func(w string) *xdotool.Result {
			return a.srv.KillWindow(w)
		}),
		newWindowMoveCmd(a),
		newWindowSizeCmd(a),
		newWindowSetCmd(a),
	)
	return cmd
}

// a.srv is built in PersistentPreRunE, so the run funcs must read it at call time.
func windowQuery(use, short string, run func(window string) *xdotool.Result) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <window>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, run(args[0]))
		},
	}
}

func windowSync(use, short string, run func(string, xdotool.Options[xdotool.SyncOption]) *xdotool.Result) *cobra.Command {
	var sync bool
	cmd := &cobra.Command{
		Use:   use + " <window>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := xdotool.NewOptions[xdotool.SyncOption]()
			if sync {
				opts = opts.With(xdotool.Sync)
			}
			return emit(cmd, run(args[0], opts))
		},
	}
	cmd.Flags().BoolVar(&sync, "sync", false, "wait until the window manager has applied the change")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var class, className, name, role, onlyVisible, matchAll, matchAny, sync, asJSON bool
	var maxDepth, screen, desktop, limit uint
	var pid uint32

	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Print IDs of windows matching a regular expression",
		Long: `Print IDs of windows whose name, class or class name matches pattern.
Without --class, --classname, --name or --role all three are matched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := xdotool.NewOptions[xdotool.SearchOption]()
			for on, opt := range map[*bool]xdotool.SearchOption{
				&class:       xdotool.SearchClass,
				&className:   xdotool.SearchClassName,
				&name:        xdotool.SearchName,
				&role:        xdotool.SearchRole,
				&onlyVisible: xdotool.SearchOnlyVisible,
				&matchAll:    xdotool.SearchAll,
				&matchAny:    xdotool.SearchAny,
				&sync:        xdotool.SearchSync,
			} {
				if *on {
					opts = opts.With(opt)
				}
			}

			flags := cmd.Flags()
			if flags.Changed("maxdepth") {
				opts = opts.With(xdotool.SearchMaxDepth(maxDepth))
			}
			if flags.Changed("pid") {
				opts = opts.With(xdotool.SearchPID(pid))
			}
			if flags.Changed("screen") {
				opts = opts.With(xdotool.SearchScreen(screen))
			}
			if flags.Changed("desktop") {
				opts = opts.With(xdotool.SearchDesktop(desktop))
			}
			if flags.Changed("limit") {
				opts = opts.With(xdotool.SearchLimit(limit))
			}

			res := a.srv.Search(args[0], opts)
			if !asJSON || !res.Success() {
				return emit(cmd, res)
			}
			ids := inspect.WindowIDs(res)
			if ids == nil {
				ids = []string{}
			}
			return writeJSON(cmd, ids)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&class, "class", false, "match the window class")
	f.BoolVar(&className, "classname", false, "match the window class name")
	f.BoolVar(&name, "name", false, "match the window title")
	f.BoolVar(&role, "role", false, "match the window role")
	f.BoolVar(&onlyVisible, "onlyvisible", false, "only visible windows")
	f.BoolVar(&matchAll, "all", false, "require all conditions to match")
	f.BoolVar(&matchAny, "any", false, "require any condition to match")
	f.BoolVar(&sync, "sync", false, "block until at least one window matches")
	f.UintVar(&maxDepth, "maxdepth", 0, "maximum window tree depth")
	f.Uint32Var(&pid, "pid", 0, "only windows owned by this process")
	f.UintVar(&screen, "screen", 0, "only windows on this screen")
	f.UintVar(&desktop, "desktop", 0, "only windows on this desktop")
	f.UintVar(&limit, "limit", 0, "stop after this many matches")
	f.BoolVar(&asJSON, "json", false, "print the matching IDs as a JSON array")
	return cmd
}

func newGeometryCmd(a *app) *cobra.Command {
	var vars, asJSON bool
	cmd := &cobra.Command{
		Use:   "geometry <window>",
		Short: "Print a window's position and size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				opts := xdotool.NewOptions[xdotool.ShellOption]()
				if vars {
					opts = opts.With(xdotool.ShellOutput)
				}
				return emit(cmd, a.srv.GetWindowGeometry(args[0], opts))
			}

			res := a.srv.GetWindowGeometry(args[0], xdotool.NewOptions(xdotool.ShellOutput))
			if !res.Success() {
				return emit(cmd, res)
			}
			geo, err := inspect.ParseGeometry(string(res.Stdout))
			if err != nil {
				return err
			}
			return writeJSON(cmd, geo)
		},
	}
	cmd.Flags().BoolVar(&vars, "vars", false, "print WINDOW=, X=, Y=, WIDTH=, HEIGHT= shell assignments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the geometry as JSON")
	return cmd
}

func newWindowMoveCmd(a *app) *cobra.Command {
	var sync, relative bool
	cmd := &cobra.Command{
		Use:   "move <window> <x> <y>",
		Short: "Move a window",
		Long:  `Move a window to x,y. Either coordinate may be "x" or "y" to keep the current value.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := xdotool.NewOptions[xdotool.WindowMoveOption]()
			if sync {
				opts = opts.With(xdotool.MoveSync)
			}
			if relative {
				opts = opts.With(xdotool.MoveRelative)
			}
			return emit(cmd, a.srv.MoveWindow(args[0], args[1], args[2], opts))
		},
	}
	cmd.Flags().BoolVar(&sync, "sync", false, "wait until the window has moved")
	cmd.Flags().BoolVar(&relative, "relative", false, "move relative to the current position")
	return cmd
}

func newWindowSizeCmd(a *app) *cobra.Command {
	var sync, useHints bool
	cmd := &cobra.Command{
		Use:   "size <window> <width> <height>",
		Short: "Resize a window",
		Long:  `Resize a window. Sizes may be pixels or percentages such as 50%.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := xdotool.NewOptions[xdotool.WindowSizeOption]()
			if useHints {
				opts = opts.With(xdotool.SizeUseHints)
			}
			if sync {
				opts = opts.With(xdotool.SizeSync)
			}
			return emit(cmd, a.srv.SetWindowSize(args[0], args[1], args[2], opts))
		},
	}
	cmd.Flags().BoolVar(&useHints, "usehints", false, "size in window hint units such as terminal cells")
	cmd.Flags().BoolVar(&sync, "sync", false, "wait until the window has been resized")
	return cmd
}

func newWindowSetCmd(a *app) *cobra.Command {
	var name, iconName, role, className, class string
	var urgency, overrideRedirect uint8

	cmd := &cobra.Command{
		Use:   "set <window>",
		Short: "Set window properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts := xdotool.NewOptions[xdotool.SetWindowOption]()
			if flags.Changed("name") {
				opts = opts.With(xdotool.SetName(name))
			}
			if flags.Changed("icon-name") {
				opts = opts.With(xdotool.SetIconName(iconName))
			}
			if flags.Changed("role") {
				opts = opts.With(xdotool.SetRole(role))
			}
			if flags.Changed("classname") {
				opts = opts.With(xdotool.SetClassName(className))
			}
			if flags.Changed("class") {
				opts = opts.With(xdotool.SetClass(class))
			}
			if flags.Changed("urgency") {
				opts = opts.With(xdotool.SetUrgency(urgency))
			}
			if flags.Changed("overrideredirect") {
				opts = opts.With(xdotool.SetOverrideRedirect(overrideRedirect))
			}
			return emit(cmd, a.srv.SetWindow(args[0], opts))
		},
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "window title")
	f.StringVar(&iconName, "icon-name", "", "window icon title")
	f.StringVar(&role, "role", "", "window role")
	f.StringVar(&className, "classname", "", "window class name")
	f.StringVar(&class, "class", "", "window class")
	f.Uint8Var(&urgency, "urgency", 0, "urgency hint, 1 marks the window urgent")
	f.Uint8Var(&overrideRedirect, "overrideredirect", 0, "override_redirect, applied on next map")
	return cmd
}

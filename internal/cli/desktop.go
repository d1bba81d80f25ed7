package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/pkg/xdotool"
)

func newDesktopCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "desktop",
		Short: "Query and switch virtual desktops",
	}

	var activateSync bool
	activate := &cobra.Command{
		Use:   "activate <window>",
		Short: "Activate a window, switching to its desktop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := xdotool.NewOptions[xdotool.SyncOption]()
			if activateSync {
				opts = opts.With(xdotool.Sync)
			}
			return emit(cmd, a.srv.ActivateWindow(args[0], opts))
		},
	}
	activate.Flags().BoolVar(&activateSync, "sync", false, "wait until the window is active")

	active := &cobra.Command{
		Use:   "active",
		Short: "Print the active window ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, a.srv.GetActiveWindow())
		},
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current desktop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, a.srv.GetDesktop())
		},
	}

	var relative bool
	set := &cobra.Command{
		Use:   "set <n>",
		Short: "Switch to desktop n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint8("desktop", args[0])
			if err != nil {
				return err
			}
			opts := xdotool.NewOptions[xdotool.SetDesktopOption]()
			if relative {
				opts = opts.With(xdotool.DesktopRelative)
			}
			return emit(cmd, a.srv.SetDesktop(n, opts))
		},
	}
	set.Flags().BoolVar(&relative, "relative", false, "move relative to the current desktop")

	count := &cobra.Command{
		Use:   "count",
		Short: "Print the number of desktops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, a.srv.GetNumDesktops())
		},
	}

	setCount := &cobra.Command{
		Use:   "set-count <n>",
		Short: "Change the number of desktops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint8("desktop count", args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.srv.SetNumDesktops(n))
		},
	}

	var viewportShell bool
	viewport := &cobra.Command{
		Use:   "viewport [x y]",
		Short: "Print the desktop viewport, or move it to x,y",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				opts := xdotool.NewOptions[xdotool.ShellOption]()
				if viewportShell {
					opts = opts.With(xdotool.ShellOutput)
				}
				return emit(cmd, a.srv.GetDesktopViewport(opts))
			}

			x, err := parseUint16("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseUint16("y", args[1])
			if err != nil {
				return err
			}
			return emit(cmd, a.srv.SetDesktopViewport(x, y))
		},
	}
	viewport.Flags().BoolVar(&viewportShell, "vars", false, "print X=, Y= shell assignments")

	moveWindow := &cobra.Command{
		Use:   "move-window <window> <n>",
		Short: "Move a window to desktop n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint8("desktop", args[1])
			if err != nil {
				return err
			}
			return emit(cmd, a.srv.SetDesktopForWindow(args[0], n))
		},
	}

	ofWindow := &cobra.Command{
		Use:   "of-window <window>",
		Short: "Print the desktop a window is on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, a.srv.GetDesktopForWindow(args[0]))
		},
	}

	cmd.AddCommand(activate, active, get, set, count, setCount, viewport, moveWindow, ofWindow)
	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/pkg/inspect"
	"github.com/actionsum/xdotool/pkg/xdotool"
)

func newActiveCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Describe the active window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := inspect.ActiveWindow(a.srv)
			if err != nil {
				return err
			}

			var proc *inspect.ProcessInfo
			if info.PID != 0 {
				// The client may live on another host; its PID is then meaningless here.
				proc, _ = inspect.Process(info.PID)
			}

			if asJSON {
				return writeJSON(cmd, struct {
					*inspect.WindowInfo
					Process *inspect.ProcessInfo `json:",omitempty"`
				}{info, proc})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Window: %s\n", info.ID)
			fmt.Fprintf(out, "Name:   %s\n", info.Name)
			if info.ClassName != "" {
				fmt.Fprintf(out, "Class:  %s\n", info.ClassName)
			}
			if info.PID != 0 {
				fmt.Fprintf(out, "PID:    %d\n", info.PID)
			}
			if proc != nil {
				fmt.Fprintf(out, "Process: %s\n", proc.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the window as JSON")
	return cmd
}

// check is one line of the doctor report.
type check struct {
	name   string
	ok     bool
	detail string
}

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the X session and tools are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := a.diagnose()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			failed := 0
			for _, c := range checks {
				status := "ok"
				if !c.ok {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.name, status, c.detail)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

func (a *app) diagnose() []check {
	cfg := a.cfg
	var checks []check

	session := inspect.DetectDisplayServer()
	checks = append(checks, check{"session", session == "x11", session})

	auth := cfg.X.XAuthority
	if _, err := os.Stat(auth); err != nil {
		checks = append(checks, check{"xauthority", false, auth + ": not readable"})
	} else {
		checks = append(checks, check{"xauthority", true, auth})
	}

	for _, tool := range []string{cfg.Exec.Xdotool, cfg.Exec.Xwd} {
		if inspect.CommandExists(tool) {
			checks = append(checks, check{tool, true, "found"})
		} else {
			checks = append(checks, check{tool, false, "not found in PATH"})
		}
	}

	res, err := a.srv.Exec(xdotool.Version.Command(), "")
	var spawnErr *xdotool.SpawnError
	switch {
	case errors.As(err, &spawnErr):
		checks = append(checks, check{"xdotool version", false, spawnErr.Err.Error()})
	case err != nil:
		checks = append(checks, check{"xdotool version", false, err.Error()})
	case !res.Success():
		checks = append(checks, check{"xdotool version", false, strings.TrimSpace(string(res.Stderr))})
	default:
		checks = append(checks, check{"xdotool version", true, res.Text()})
	}

	if locker := inspect.ScreenLocker(); locker != "" {
		checks = append(checks, check{"screen lock", false, locker + " is running"})
	} else {
		checks = append(checks, check{"screen lock", true, "unlocked"})
	}

	name := "display " + cfg.DisplayString()
	note := authorityNote(auth, os.Getenv("XAUTHORITY"))
	if screen, err := inspect.QueryScreen(cfg.X.Display); err != nil {
		checks = append(checks, check{name, false, err.Error() + note})
	} else {
		checks = append(checks, check{name, true,
			fmt.Sprintf("%dx%d, %d screen(s), %s", screen.Width, screen.Height, screen.Screens, screen.Vendor) + note})
	}

	return checks
}

// authorityNote flags a display check that authenticated with a different
// Xauthority file than the one handed to the tools.
func authorityNote(configured, process string) string {
	if configured == process {
		return ""
	}
	if process == "" {
		process = "~/.Xauthority"
	}
	return fmt.Sprintf(" (checked with %s, not %s)", process, configured)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/pkg/xdotool"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show xdo and xdotool versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "xdo version %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", Commit)

			res, err := a.srv.Exec(xdotool.Version.Command(), "")
			switch {
			case err != nil:
				fmt.Fprintf(out, "  xdotool: unavailable (%v)\n", err)
			case !res.Success():
				fmt.Fprintf(out, "  xdotool: exited with status %d\n", res.ExitCode)
			default:
				fmt.Fprintf(out, "  xdotool: %s\n", res.Text())
			}
			return nil
		},
	}
}

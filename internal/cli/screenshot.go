package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/internal/logger"
)

func newScreenshotCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture the root window as an XWD image",
		Long: `Capture the whole screen with xwd -root. The raw XWD image is written to
the file given by --output, or to stdout when it is "-".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.srv.Screenshot()
			if !res.Success() || output == "-" {
				return emit(cmd, res)
			}

			if err := os.WriteFile(output, res.Stdout, 0644); err != nil {
				return fmt.Errorf("failed to write screenshot: %w", err)
			}
			logger.Info("screenshot saved", "path", output, "bytes", len(res.Stdout))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

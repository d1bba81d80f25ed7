package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/internal/history"
	"github.com/actionsum/xdotool/internal/models"
)

func newHistoryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history [period]",
		Short: "Report recorded invocations",
		Long: fmt.Sprintf(`Report recorded invocations per subcommand for a period (%s).
Invocations are recorded when history.enabled is set in xdo.toml or XDO_HISTORY=true.`,
			strings.Join(history.Periods, ", ")),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: history.Periods,
		RunE: func(cmd *cobra.Command, args []string) error {
			period := "day"
			if len(args) == 1 {
				period = args[0]
			}

			repo, err := a.journal()
			if err != nil {
				return err
			}

			reporter := history.NewReporter(repo)
			report, err := reporter.GenerateReport(period)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := reporter.FormatReportJSON(report)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), reporter.FormatReportText(report))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	var olderThan time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete invocations older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			retention := a.cfg.History.Retention
			if cmd.Flags().Changed("older-than") {
				retention = olderThan
			}

			repo, err := a.journal()
			if err != nil {
				return err
			}

			deleted, err := repo.DeleteOlderThan(time.Now().Add(-retention))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d invocation(s) older than %s\n", deleted, retention)
			return nil
		},
	}
	prune.Flags().DurationVar(&olderThan, "older-than", 0, "override history.retention")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded invocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.journal()
			if err != nil {
				return err
			}
			if err := repo.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}

	var since time.Duration
	var logJSON bool
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "List recorded invocations, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if since < 0 {
				return fmt.Errorf("--since must not be negative, got %s", since)
			}

			repo, err := a.journal()
			if err != nil {
				return err
			}

			reporter := history.NewReporter(repo)
			invocations, err := reporter.Log(since)
			if err != nil {
				return err
			}
			if logJSON {
				if invocations == nil {
					invocations = []*models.Invocation{}
				}
				return writeJSON(cmd, invocations)
			}
			fmt.Fprint(cmd.OutOrStdout(), reporter.FormatLogText(invocations))
			return nil
		},
	}
	logCmd.Flags().DurationVar(&since, "since", 0, "only invocations newer than this (default: all)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "print the invocations as JSON")

	cmd.AddCommand(prune, clearCmd, logCmd)
	return cmd
}

package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/actionsum/xdotool/internal/database"
	"github.com/actionsum/xdotool/internal/models"
	"github.com/actionsum/xdotool/pkg/utils"
)

// Periods lists the accepted report periods.
var Periods = []string{"day", "week", "month", "all"}

// Reporter handles report generation
type Reporter struct {
	repo *database.Repository
	now  func() time.Time
}

// NewReporter creates a new reporter
func NewReporter(repo *database.Repository) *Reporter {
	return &Reporter{repo: repo, now: time.Now}
}

// GenerateReport generates a report for the specified period
func (r *Reporter) GenerateReport(periodType string) (*models.Report, error) {
	period, err := r.getPeriod(periodType)
	if err != nil {
		return nil, err
	}

	summaries, err := r.repo.GetSummarySince(period.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to get subcommand summary: %w", err)
	}

	spawnFailures, err := r.repo.CountErrorLogsSince(period.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to count spawn failures: %w", err)
	}

	last, err := r.repo.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to get last invocation: %w", err)
	}

	report := &models.Report{
		Period:        *period,
		Subcommands:   summaries,
		SpawnFailures: spawnFailures,
		Last:          last,
		GeneratedAt:   r.now(),
	}

	for i := range summaries {
		s := &summaries[i]
		if s.Calls > 0 {
			s.MeanMs = float64(s.TotalMs) / float64(s.Calls)
			s.SuccessRate = float64(s.Calls-s.Failures) / float64(s.Calls) * 100.0
		}
		report.TotalCalls += s.Calls
		report.TotalFailures += s.Failures
		report.TotalMs += s.TotalMs
	}

	return report, nil
}

// getPeriod calculates the time range for the report
func (r *Reporter) getPeriod(periodType string) (*models.ReportPeriod, error) {
	now := r.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start, end time.Time

	switch periodType {
	case "day", "today":
		start = midnight
		end = start.AddDate(0, 0, 1)

	case "week":
		// Weeks start on Monday
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = midnight.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 7)

	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)

	case "all":
		end = now

	default:
		return nil, fmt.Errorf("invalid period type: %s (valid: %s)", periodType, strings.Join(Periods, ", "))
	}

	return &models.ReportPeriod{
		Start: start,
		End:   end,
		Type:  periodType,
	}, nil
}

// FormatReportText formats the report as human-readable text
func (r *Reporter) FormatReportText(report *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Invocation Report - %s\n", report.Period.Type)
	if report.Period.Start.IsZero() {
		fmt.Fprintf(&b, "Period: all recorded history\n")
	} else {
		fmt.Fprintf(&b, "Period: %s to %s\n",
			report.Period.Start.Format("2006-01-02 15:04"),
			report.Period.End.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "Calls: %d  Failures: %d  Spawn failures: %d  Time: %s\n",
		report.TotalCalls,
		report.TotalFailures,
		report.SpawnFailures,
		utils.FormatElapsed(time.Duration(report.TotalMs)*time.Millisecond))
	if report.Last != nil {
		fmt.Fprintf(&b, "Last: %s (exit %d, %s)\n",
			report.Last.Line,
			report.Last.ExitCode,
			report.Last.Timestamp.Local().Format("2006-01-02 15:04:05"))
	}
	b.WriteString("\n")

	if len(report.Subcommands) == 0 {
		b.WriteString("No invocations recorded for this period.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-24s %8s %8s %10s %9s\n", "Subcommand", "Calls", "Failed", "Mean", "Success")
	b.WriteString(strings.Repeat("-", 63) + "\n")

	for _, s := range report.Subcommands {
		fmt.Fprintf(&b, "%-24s %8d %8d %10s %8.1f%%\n",
			utils.Truncate(s.Subcommand, 24),
			s.Calls,
			s.Failures,
			utils.FormatElapsed(time.Duration(s.MeanMs*float64(time.Millisecond))),
			s.SuccessRate)
	}

	return b.String()
}

// Log returns the invocations recorded since the given time, oldest first.
func (r *Reporter) Log(since time.Duration) ([]*models.Invocation, error) {
	var start time.Time
	if since > 0 {
		start = r.now().Add(-since)
	}
	invocations, err := r.repo.GetSince(start)
	if err != nil {
		return nil, fmt.Errorf("failed to get invocations: %w", err)
	}
	return invocations, nil
}

// FormatLogText renders one line per invocation.
func (r *Reporter) FormatLogText(invocations []*models.Invocation) string {
	if len(invocations) == 0 {
		return "No invocations recorded.\n"
	}

	var b strings.Builder
	for _, inv := range invocations {
		fmt.Fprintf(&b, "%s  %4d  %7s  %s\n",
			inv.Timestamp.Local().Format("2006-01-02 15:04:05"),
			inv.ExitCode,
			utils.FormatElapsed(time.Duration(inv.DurationMs)*time.Millisecond),
			inv.Line)
	}
	return b.String()
}

// FormatReportJSON formats the report as JSON
func (r *Reporter) FormatReportJSON(report *models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

package history

import (
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/actionsum/xdotool/internal/database"
	"github.com/actionsum/xdotool/internal/models"
	"github.com/actionsum/xdotool/pkg/xdotool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Initialize())
	return database.NewRepository(db)
}

type failingStore struct{ calls int }

func (f *failingStore) Create(*models.Invocation) error {
	f.calls++
	return errors.New("disk full")
}

func (f *failingStore) CreateErrorLog(*models.ErrorLog) error {
	f.calls++
	return errors.New("disk full")
}

func TestRecorder(t *testing.T) {
	repo := newRepo(t)
	observe := Recorder(repo, 3)

	inv := xdotool.Invocation{Tool: "/usr/bin/xdotool", Command: "search --name", Args: "'my term'"}
	observe(inv, &xdotool.Result{Stdout: []byte("123\n"), Stderr: []byte("warn"), ExitCode: 1}, 40*time.Millisecond)
	observe(xdotool.Invocation{Tool: "xwd", Command: "-root"}, &xdotool.Result{Stdout: make([]byte, 10)}, time.Millisecond)

	invs, err := repo.GetSince(time.Time{})
	require.NoError(t, err)
	require.Len(t, invs, 2)

	byTool := map[string]*models.Invocation{}
	for _, i := range invs {
		byTool[i.Tool] = i
	}

	got := byTool["xdotool"]
	require.NotNil(t, got)
	assert.Equal(t, "search", got.Subcommand)
	assert.Equal(t, "/usr/bin/xdotool search --name 'my term'", got.Line)
	assert.Equal(t, uint32(3), got.Display)
	assert.Equal(t, 1, got.ExitCode)
	assert.Equal(t, 4, got.StdoutBytes)
	assert.Equal(t, "warn", got.Stderr)
	assert.Equal(t, int64(40), got.DurationMs)

	shot := byTool["xwd"]
	require.NotNil(t, shot)
	assert.Equal(t, "xwd", shot.Subcommand)
	assert.Equal(t, 10, shot.StdoutBytes)
}

func TestRecorderStorageFailure(t *testing.T) {
	store := &failingStore{}
	observe := Recorder(store, 0)

	assert.NotPanics(t, func() {
		observe(xdotool.Invocation{Tool: "xdotool", Command: "version"}, &xdotool.Result{}, 0)
	})
	assert.Equal(t, 1, store.calls)
}

func TestRecorderClipsStderr(t *testing.T) {
	tests := []struct {
		name    string
		stderr  string
		wantLen int
	}{
		{"ascii", strings.Repeat("e", 5000), maxStderr},
		{"two byte runes", strings.Repeat("é", 600), maxStderr},
		{"three byte runes", strings.Repeat("€", 500), maxStderr - 1},
		{"short", "BadWindow", len("BadWindow")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo(t)
			observe := Recorder(repo, 0)

			observe(xdotool.Invocation{Tool: "xdotool", Command: "key"}, &xdotool.Result{Stderr: []byte(tt.stderr)}, 0)

			latest, err := repo.GetLatest()
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.Len(t, latest.Stderr, tt.wantLen)
			assert.True(t, utf8.ValidString(latest.Stderr))
			assert.True(t, strings.HasPrefix(tt.stderr, latest.Stderr))
		})
	}
}

func TestRecordFailure(t *testing.T) {
	repo := newRepo(t)

	assert.False(t, RecordFailure(repo, errors.New("other")))

	spawnErr := &xdotool.SpawnError{Line: "nope version", Err: exec.ErrNotFound}
	assert.True(t, RecordFailure(repo, spawnErr))

	count, err := repo.CountErrorLogsSince(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.True(t, RecordFailure(&failingStore{}, spawnErr))
}

func TestGetPeriod(t *testing.T) {
	// Wednesday
	fixed := time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
	r := &Reporter{now: func() time.Time { return fixed }}

	tests := []struct {
		period string
		start  time.Time
		end    time.Time
	}{
		{"day", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"today", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"all", time.Time{}, fixed},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			p, err := r.getPeriod(tt.period)
			require.NoError(t, err)
			assert.True(t, tt.start.Equal(p.Start), "start = %v", p.Start)
			assert.True(t, tt.end.Equal(p.End), "end = %v", p.End)
		})
	}

	_, err := r.getPeriod("year")
	assert.Error(t, err)
}

func TestWeekStartsOnMonday(t *testing.T) {
	sunday := time.Date(2024, time.March, 17, 9, 0, 0, 0, time.UTC)
	r := &Reporter{now: func() time.Time { return sunday }}

	p, err := r.getPeriod("week")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, p.Start.Weekday())
	assert.Equal(t, 11, p.Start.Day())
}

func TestGenerateReport(t *testing.T) {
	repo := newRepo(t)
	observe := Recorder(repo, 0)

	for i := 0; i < 3; i++ {
		observe(xdotool.Invocation{Tool: "xdotool", Command: "key"}, &xdotool.Result{}, 10*time.Millisecond)
	}
	observe(xdotool.Invocation{Tool: "xdotool", Command: "key"}, &xdotool.Result{ExitCode: 1}, 30*time.Millisecond)
	observe(xdotool.Invocation{Tool: "xdotool", Command: "getactivewindow"}, &xdotool.Result{}, 5*time.Millisecond)
	RecordFailure(repo, &xdotool.SpawnError{Line: "x", Err: exec.ErrNotFound})

	reporter := NewReporter(repo)
	report, err := reporter.GenerateReport("all")
	require.NoError(t, err)

	assert.Equal(t, int64(5), report.TotalCalls)
	assert.Equal(t, int64(1), report.TotalFailures)
	assert.Equal(t, int64(65), report.TotalMs)
	assert.Equal(t, int64(1), report.SpawnFailures)
	require.Len(t, report.Subcommands, 2)

	key := report.Subcommands[0]
	assert.Equal(t, "key", key.Subcommand)
	assert.Equal(t, int64(4), key.Calls)
	assert.InDelta(t, 15.0, key.MeanMs, 0.001)
	assert.InDelta(t, 75.0, key.SuccessRate, 0.001)

	text := reporter.FormatReportText(report)
	assert.Contains(t, text, "Invocation Report - all")
	assert.Contains(t, text, "all recorded history")
	assert.Contains(t, text, "getactivewindow")
	assert.Contains(t, text, "75.0%")
	assert.Contains(t, text, "Last: xdotool getactivewindow (exit 0, ")

	require.NotNil(t, report.Last)
	assert.Equal(t, "getactivewindow", report.Last.Subcommand)

	out, err := reporter.FormatReportJSON(report)
	require.NoError(t, err)
	var decoded models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, int64(5), decoded.TotalCalls)
}

func TestGenerateReportEmpty(t *testing.T) {
	reporter := NewReporter(newRepo(t))

	report, err := reporter.GenerateReport("day")
	require.NoError(t, err)
	assert.Zero(t, report.TotalCalls)
	assert.Nil(t, report.Last)
	assert.Contains(t, reporter.FormatReportText(report), "No invocations recorded")
	assert.NotContains(t, reporter.FormatReportText(report), "Last:")

	_, err = reporter.GenerateReport("decade")
	assert.Error(t, err)
}

func TestLog(t *testing.T) {
	repo := newRepo(t)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local)
	for _, inv := range []*models.Invocation{
		{Timestamp: now.Add(-48 * time.Hour), Tool: "xdotool", Subcommand: "key", Line: "xdotool key a", DurationMs: 4},
		{Timestamp: now.Add(-30 * time.Minute), Tool: "xdotool", Subcommand: "type", Line: "xdotool type hi", DurationMs: 850},
		{Timestamp: now.Add(-time.Minute), Tool: "xdotool", Subcommand: "search", Line: "xdotool search x", ExitCode: 1, DurationMs: 4260},
	} {
		require.NoError(t, repo.Create(inv))
	}

	reporter := NewReporter(repo)
	reporter.now = func() time.Time { return now }

	tests := []struct {
		name  string
		since time.Duration
		want  []string
	}{
		{"everything", 0, []string{"xdotool key a", "xdotool type hi", "xdotool search x"}},
		{"last hour", time.Hour, []string{"xdotool type hi", "xdotool search x"}},
		{"last ten minutes", 10 * time.Minute, []string{"xdotool search x"}},
		{"nothing", time.Second, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invs, err := reporter.Log(tt.since)
			require.NoError(t, err)

			var got []string
			for _, inv := range invs {
				got = append(got, inv.Line)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	invs, err := reporter.Log(time.Hour)
	require.NoError(t, err)
	assert.Equal(t,
		"2026-03-04 11:30:00     0    850ms  xdotool type hi\n"+
			"2026-03-04 11:59:00     1     4.2s  xdotool search x\n",
		reporter.FormatLogText(invs))
	assert.Equal(t, "No invocations recorded.\n", reporter.FormatLogText(nil))
}

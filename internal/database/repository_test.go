package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/actionsum/xdotool/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Initialize())
	return NewRepository(db)
}

func invocation(sub string, code int, ms int64, at time.Time) *models.Invocation {
	return &models.Invocation{
		Timestamp:  at,
		Tool:       "xdotool",
		Subcommand: sub,
		Line:       "xdotool " + sub,
		ExitCode:   code,
		DurationMs: ms,
	}
}

func TestGetDefaultDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetDefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "xdo", "history.db"), path)
}

func TestCreateAndGetLatest(t *testing.T) {
	repo := newTestRepo(t)

	latest, err := repo.GetLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	now := time.Now()
	require.NoError(t, repo.Create(invocation("key", 0, 5, now.Add(-time.Minute))))
	require.NoError(t, repo.Create(invocation("search", 1, 7, now)))

	latest, err = repo.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "search", latest.Subcommand)
	assert.Equal(t, 1, latest.ExitCode)
}

func TestGetSince(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.Create(invocation("old", 0, 1, now.Add(-48*time.Hour))))
	require.NoError(t, repo.Create(invocation("b", 0, 1, now.Add(-time.Minute))))
	require.NoError(t, repo.Create(invocation("a", 0, 1, now.Add(-2*time.Minute))))

	invs, err := repo.GetSince(now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, invs, 2)
	assert.Equal(t, "a", invs[0].Subcommand)
	assert.Equal(t, "b", invs[1].Subcommand)
}

func TestGetSummarySince(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.Create(invocation("key", 0, 10, now)))
	require.NoError(t, repo.Create(invocation("key", 0, 20, now)))
	require.NoError(t, repo.Create(invocation("key", 1, 30, now)))
	require.NoError(t, repo.Create(invocation("search", 1, 100, now)))
	require.NoError(t, repo.Create(invocation("type", 0, 1, now.Add(-72*time.Hour))))

	summaries, err := repo.GetSummarySince(now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "key", summaries[0].Subcommand)
	assert.Equal(t, int64(3), summaries[0].Calls)
	assert.Equal(t, int64(1), summaries[0].Failures)
	assert.Equal(t, int64(60), summaries[0].TotalMs)

	assert.Equal(t, "search", summaries[1].Subcommand)
	assert.Equal(t, int64(1), summaries[1].Failures)
}

func TestDeleteOlderThan(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.Create(invocation("old", 0, 1, now.Add(-48*time.Hour))))
	require.NoError(t, repo.Create(invocation("new", 0, 1, now)))
	require.NoError(t, repo.CreateErrorLog(&models.ErrorLog{
		Timestamp: now.Add(-48 * time.Hour),
		Line:      "xdotool version",
		ErrorMsg:  "exec: not found",
	}))

	deleted, err := repo.DeleteOlderThan(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	invs, err := repo.GetSince(time.Time{})
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, "new", invs[0].Subcommand)

	count, err := repo.CountErrorLogsSince(time.Time{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestErrorLogsAndClear(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.CreateErrorLog(&models.ErrorLog{Timestamp: now, Line: "xwd -root", ErrorMsg: "not found"}))
	require.NoError(t, repo.Create(invocation("key", 0, 1, now)))

	count, err := repo.CountErrorLogsSince(now.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Clear())

	invs, err := repo.GetSince(time.Time{})
	require.NoError(t, err)
	assert.Empty(t, invs)

	count, err = repo.CountErrorLogsSince(time.Time{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

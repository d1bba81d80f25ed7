// Package history journals xdotool invocations and reports on them.
package history

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/actionsum/xdotool/internal/logger"
	"github.com/actionsum/xdotool/internal/models"
	"github.com/actionsum/xdotool/pkg/utils"
	"github.com/actionsum/xdotool/pkg/xdotool"
)

// maxStderr bounds the stderr kept per journal row.
const maxStderr = 1024

// Store is the part of the repository the recorder writes to.
type Store interface {
	Create(inv *models.Invocation) error
	CreateErrorLog(errorLog *models.ErrorLog) error
}

// Recorder returns an observer that journals every completed invocation
// made against display. Storage failures are logged and never reach the
// caller of the library.
func Recorder(store Store, display uint32) xdotool.Observer {
	return func(inv xdotool.Invocation, res *xdotool.Result, elapsed time.Duration) {
		entry := &models.Invocation{
			Timestamp:   time.Now().Add(-elapsed),
			Tool:        filepath.Base(inv.Tool),
			Subcommand:  subcommand(inv),
			Line:        inv.Line(),
			Display:     display,
			ExitCode:    res.ExitCode,
			StdoutBytes: len(res.Stdout),
			Stderr:      utils.Clip(string(res.Stderr), maxStderr),
			DurationMs:  elapsed.Milliseconds(),
		}
		if err := store.Create(entry); err != nil {
			logger.Warn("failed to journal invocation", "line", entry.Line, "err", err)
		}
	}
}

// RecordFailure journals err when it is a spawn failure and reports whether
// it was one.
func RecordFailure(store Store, err error) bool {
	var spawnErr *xdotool.SpawnError
	if !errors.As(err, &spawnErr) {
		return false
	}

	entry := &models.ErrorLog{
		Timestamp: time.Now(),
		Line:      spawnErr.Line,
		ErrorMsg:  spawnErr.Err.Error(),
	}
	if err := store.CreateErrorLog(entry); err != nil {
		logger.Warn("failed to journal spawn failure", "line", entry.Line, "err", err)
	}
	return true
}

// subcommand names the journal bucket: the xdotool subcommand, or the tool
// itself for flag-only invocations such as "xwd -root".
func subcommand(inv xdotool.Invocation) string {
	sub := inv.Subcommand()
	if sub == "" || strings.HasPrefix(sub, "-") {
		return filepath.Base(inv.Tool)
	}
	return sub
}

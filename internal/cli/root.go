// Package cli implements the xdo command line.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/actionsum/xdotool/internal/config"
	"github.com/actionsum/xdotool/internal/database"
	"github.com/actionsum/xdotool/internal/history"
	"github.com/actionsum/xdotool/internal/logger"
	"github.com/actionsum/xdotool/pkg/utils"
	"github.com/actionsum/xdotool/pkg/xdotool"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// ExitError carries the exit code of a tool that ran and failed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app is the state shared by the commands of one execution.
type app struct {
	configPath string
	display    string
	xauthority string
	shell      bool
	logLevel   string

	cfg  *config.Config
	srv  *xdotool.XServer
	db   *database.DB
	repo *database.Repository
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "xdo",
		Short: "xdo - X11 automation through xdotool",
		Long: `xdo drives an X11 session with xdotool and xwd.
Every command addresses one display and Xauthority file, taken from flags,
XDO_* environment variables, xdo.toml or the current session, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.Version = Version
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: xdo.toml in ~/.config/xdo)")
	pf.StringVar(&a.display, "display", "", "X display to address, e.g. 1 or :1")
	pf.StringVar(&a.xauthority, "xauthority", "", "Xauthority file handed to the tools")
	pf.BoolVar(&a.shell, "shell", false, "run xdotool through sh -c instead of directly")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error, fatal)")

	root.AddCommand(
		newDesktopCmd(a),
		newWindowCmd(a),
		newKeyCmd(a),
		newTypeCmd(a),
		newMouseCmd(a),
		newScreenshotCmd(a),
		newActiveCmd(a),
		newDoctorCmd(a),
		newHistoryCmd(a),
		newVersionCmd(a),
	)

	return root, a
}

// Execute runs the xdo command line with args. A tool that could not be
// started is returned as *xdotool.SpawnError, a tool that failed as
// *ExitError.
func Execute(args []string, stdout, stderr io.Writer) (err error) {
	root, a := newRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer a.close()
	defer func() {
		if r := recover(); r != nil {
			spawnErr, ok := r.(*xdotool.SpawnError)
			if !ok {
				panic(r)
			}
			if a.repo != nil {
				history.RecordFailure(a.repo, spawnErr)
			}
			err = spawnErr
		}
	}()

	return root.Execute()
}

// setup resolves the configuration and builds the server used by every command.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("display") {
		if err := cfg.SetDisplay(a.display); err != nil {
			return err
		}
	}
	if flags.Changed("xauthority") {
		cfg.X.XAuthority = a.xauthority
	}
	if flags.Changed("shell") {
		cfg.Exec.Shell = a.shell
	}
	if flags.Changed("log-level") {
		if err := cfg.SetLogLevel(a.logLevel); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	a.cfg = cfg

	opts := []xdotool.ServerOption{
		xdotool.WithXdotoolPath(cfg.Exec.Xdotool),
		xdotool.WithXwdPath(cfg.Exec.Xwd),
		xdotool.WithObserver(logInvocation),
	}
	if cfg.Exec.Shell {
		opts = append(opts, xdotool.WithShell())
	}
	if cfg.History.Enabled {
		repo, err := a.journal()
		if err != nil {
			logger.Warn("history disabled", "err", err)
		} else {
			opts = append(opts, xdotool.WithObserver(history.Recorder(repo, cfg.X.Display)))
		}
	}

	a.srv = xdotool.New(cfg.X.Display, cfg.X.XAuthority, opts...)
	logger.Debug("session", "display", cfg.DisplayString(), "xauthority", cfg.X.XAuthority, "shell", cfg.Exec.Shell)
	return nil
}

// journal opens the invocation journal on first use.
func (a *app) journal() (*database.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	db, err := database.Connect(a.cfg.History.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Initialize(); err != nil {
		db.Close()
		return nil, err
	}

	a.db = db
	a.repo = database.NewRepository(db)
	return a.repo, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		logger.Warn("failed to close history database", "err", err)
	}
	a.db, a.repo = nil, nil
}

func logInvocation(inv xdotool.Invocation, res *xdotool.Result, elapsed time.Duration) {
	logger.Debug("invocation", "line", inv.Line(), "exit", res.ExitCode, "elapsed", utils.FormatElapsed(elapsed))
}

// emit copies the tool's output through and turns a non-zero exit into an
// *ExitError.
func emit(cmd *cobra.Command, res *xdotool.Result) error {
	if _, err := cmd.OutOrStdout().Write(res.Stdout); err != nil {
		return err
	}
	if _, err := cmd.ErrOrStderr().Write(res.Stderr); err != nil {
		return err
	}
	if !res.Success() {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

func parseUint8(name, s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be 0-255", name, s)
	}
	return uint8(n), nil
}

func parseUint16(name, s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be 0-65535", name, s)
	}
	return uint16(n), nil
}

func parseInt32(name, s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return int32(n), nil
}
